// Package config provides API key hashing and verification functionality.
package config

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// APIKeyConfig holds the bcrypt-hashed service API key. Storing only the
// hash keeps the plaintext key out of config files and process environments
// on the serving side.
type APIKeyConfig struct {
	KeyHash    string
	BcryptCost int
}

// NewAPIKeyConfig creates an API key configuration from environment
// variables. It reads API_KEY_HASH (empty disables key auth) and
// BCRYPT_COST (default: 12, used only when hashing new keys).
func NewAPIKeyConfig() (*APIKeyConfig, error) {
	costStr := os.Getenv("BCRYPT_COST")
	if costStr == "" {
		costStr = "12" // default
	}

	cost, err := strconv.Atoi(costStr)
	if err != nil {
		return nil, fmt.Errorf("invalid BCRYPT_COST: %v", err)
	}
	if cost < 10 || cost > 14 {
		return nil, fmt.Errorf("bcrypt cost out of range: %d (must be 10-14)", cost)
	}

	return &APIKeyConfig{
		KeyHash:    os.Getenv("API_KEY_HASH"),
		BcryptCost: cost,
	}, nil
}

// Enabled reports whether API key verification is configured
func (c *APIKeyConfig) Enabled() bool {
	return c.KeyHash != ""
}

// HashKey hashes a plaintext API key for storage in API_KEY_HASH
func (c *APIKeyConfig) HashKey(key string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(key), c.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash API key: %w", err)
	}
	return string(hash), nil
}

// VerifyKey verifies a presented key against the stored hash. Always false
// when no hash is configured.
func (c *APIKeyConfig) VerifyKey(key string) bool {
	if !c.Enabled() {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(c.KeyHash), []byte(key)) == nil
}
