package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAPIKeyConfig(t *testing.T) {
	t.Setenv("API_KEY_HASH", "")
	t.Setenv("BCRYPT_COST", "")

	cfg, err := NewAPIKeyConfig()
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.False(t, cfg.Enabled())
}

func TestNewAPIKeyConfigBadCost(t *testing.T) {
	t.Setenv("BCRYPT_COST", "9")
	_, err := NewAPIKeyConfig()
	require.Error(t, err)

	t.Setenv("BCRYPT_COST", "lots")
	_, err = NewAPIKeyConfig()
	require.Error(t, err)
}

func TestHashAndVerifyKey(t *testing.T) {
	cfg := &APIKeyConfig{BcryptCost: 10}

	hash, err := cfg.HashKey("sk-guide-test-key")
	require.NoError(t, err)

	cfg.KeyHash = hash
	assert.True(t, cfg.Enabled())
	assert.True(t, cfg.VerifyKey("sk-guide-test-key"))
	assert.False(t, cfg.VerifyKey("wrong-key"))
}

func TestVerifyKeyDisabled(t *testing.T) {
	cfg := &APIKeyConfig{BcryptCost: 10}
	assert.False(t, cfg.VerifyKey("anything"))
}
