package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plantrx/guide-engine/internal/config"
)

func testJWTService() *JWTService {
	return NewJWTService(&config.JWTConfig{
		Secret:          "a-secret-long-enough-for-signing",
		ExpirationHours: 1,
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := testJWTService()
	clientID := uuid.New()

	token, err := svc.GenerateToken(clientID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, clientID, claims.ClientID)
	assert.NotNil(t, claims.ExpiresAt)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := testJWTService().GenerateToken(uuid.New())
	require.NoError(t, err)

	other := NewJWTService(&config.JWTConfig{
		Secret:          "a-different-secret-of-valid-size",
		ExpirationHours: 1,
	})
	_, err = other.ValidateToken(token)
	require.Error(t, err)
}

func TestValidateToken_Empty(t *testing.T) {
	_, err := testJWTService().ValidateToken("")
	require.Error(t, err)
}

func TestValidateToken_Malformed(t *testing.T) {
	_, err := testJWTService().ValidateToken("not.a.token")
	require.Error(t, err)
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"missing", "", "", true},
		{"well formed", "Bearer abc123", "abc123", false},
		{"lowercase scheme", "bearer abc123", "abc123", false},
		{"wrong scheme", "Basic abc123", "", true},
		{"no token", "Bearer", "", true},
		{"extra parts", "Bearer one two", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/guides", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			token, err := bearerToken(req)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, token)
		})
	}
}
