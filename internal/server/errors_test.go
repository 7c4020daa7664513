package server

import (
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"guide not found", &ErrGuideNotFound{ID: uuid.New()}, http.StatusNotFound},
		{"unknown plan", &ErrUnknownPlan{Plan: "cardio"}, http.StatusBadRequest},
		{"validation", &ErrValidation{Field: "plan", Message: "required"}, http.StatusBadRequest},
		{"storage disabled", &ErrStorageDisabled{}, http.StatusServiceUnavailable},
		{"invalid api key", &ErrInvalidAPIKey{}, http.StatusUnauthorized},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	id := uuid.New()
	assert.Contains(t, (&ErrGuideNotFound{ID: id}).Error(), id.String())
	assert.Contains(t, (&ErrUnknownPlan{Plan: "cardio"}).Error(), "cardio")
	assert.Contains(t, (&ErrValidation{Field: "plan", Message: "required"}).Error(), "plan")
	assert.Contains(t, (&ErrStorageDisabled{}).Error(), "no database")
}
