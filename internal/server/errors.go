package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrGuideNotFound indicates a guide record was not found
type ErrGuideNotFound struct {
	ID uuid.UUID
}

func (e *ErrGuideNotFound) Error() string {
	return fmt.Sprintf("guide not found: %s", e.ID)
}

// ErrUnknownPlan indicates the requested plan type is not supported
type ErrUnknownPlan struct {
	Plan string
}

func (e *ErrUnknownPlan) Error() string {
	return fmt.Sprintf("unknown plan type: %s", e.Plan)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrStorageDisabled indicates the server is running without a database
type ErrStorageDisabled struct{}

func (e *ErrStorageDisabled) Error() string {
	return "guide storage is disabled: no database configured"
}

// ErrInvalidAPIKey indicates token issuance was refused
type ErrInvalidAPIKey struct{}

func (e *ErrInvalidAPIKey) Error() string {
	return "invalid API key"
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrGuideNotFound:
		return http.StatusNotFound
	case *ErrUnknownPlan, *ErrValidation:
		return http.StatusBadRequest
	case *ErrStorageDisabled:
		return http.StatusServiceUnavailable
	case *ErrInvalidAPIKey:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
