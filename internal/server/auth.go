package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
)

// TokenRequest is the body for POST /auth/token
type TokenRequest struct {
	APIKey string `json:"api_key"`
}

// TokenResponse carries a freshly issued bearer token
type TokenResponse struct {
	Token    string `json:"token"`
	ClientID string `json:"client_id"`
}

// handleToken exchanges a valid API key for a short-lived bearer token.
// When auth is disabled the endpoint reports that instead of issuing
// tokens nobody needs.
func (s *Server) handleToken(w http.ResponseWriter, r *http.Request) {
	if s.jwtService == nil {
		s.errorResponse(w, http.StatusNotFound, "Authentication is not enabled on this server")
		return
	}

	var req TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body: "+err.Error())
		return
	}

	if s.apiKeys == nil || !s.apiKeys.VerifyKey(req.APIKey) {
		invalid := &ErrInvalidAPIKey{}
		s.errorResponse(w, HTTPStatus(invalid), invalid.Error())
		return
	}

	clientID := uuid.New()
	token, err := s.jwtService.GenerateToken(clientID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to issue token: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, TokenResponse{
		Token:    token,
		ClientID: clientID.String(),
	})
}
