package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/plantrx/guide-engine/internal/guide"
	"github.com/plantrx/guide-engine/internal/types"
	"github.com/plantrx/guide-engine/internal/validation"
)

// GenerateGuideRequest is the body for POST /guides. Answers stays raw JSON
// so it can be schema-checked before decoding.
type GenerateGuideRequest struct {
	Plan    string             `json:"plan"`
	Profile *types.UserProfile `json:"profile,omitempty"`
	Answers json.RawMessage    `json:"answers,omitempty"`
	Save    bool               `json:"save,omitempty"`
}

// handleGenerateGuide composes a guide and streams the PDF back. With
// save=true and a database configured, the guide is also stored and its
// record ID returned in the X-Guide-ID header.
func (s *Server) handleGenerateGuide(w http.ResponseWriter, r *http.Request) {
	var req GenerateGuideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body: "+err.Error())
		return
	}

	plan, err := types.ParsePlanType(req.Plan)
	if err != nil {
		s.errorResponse(w, HTTPStatus(&ErrUnknownPlan{Plan: req.Plan}), err.Error())
		return
	}

	if req.Profile != nil {
		if err := validation.ValidateProfile(req.Profile); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid profile: "+err.Error())
			return
		}
	}

	var answers types.Answers
	if len(req.Answers) > 0 {
		if err := validation.ValidateAnswersJSON(req.Answers); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid answers: "+err.Error())
			return
		}
		if err := json.Unmarshal(req.Answers, &answers); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid answers: "+err.Error())
			return
		}
	}

	res, err := s.gen.Generate(r.Context(), guide.Request{
		Plan:    plan,
		Profile: req.Profile,
		Answers: answers,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Generation failed: "+err.Error())
		return
	}

	if req.Save && s.db != nil {
		profile := req.Profile
		if profile == nil {
			profile = &types.UserProfile{}
		}
		id, err := s.db.SaveGuide(r.Context(), plan.String(), profile.DisplayName(), profile.DurationDays(), res.Pages, res.PDF)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Failed to store guide: "+err.Error())
			return
		}
		w.Header().Set("X-Guide-ID", id.String())
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", plan.String()+"-guide.pdf"))
	w.Header().Set("X-Guide-Pages", fmt.Sprintf("%d", res.Pages))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(res.PDF); err != nil {
		// Response already committed, nothing to do but log
		logWriteError(err)
	}
}

// handleListGuides lists stored guide records, newest first
func (s *Server) handleListGuides(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		err := &ErrStorageDisabled{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	limit := parseQueryInt(r, "limit", 20, 100)
	records, err := s.db.ListGuides(r.Context(), limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"guides": records,
		"count":  len(records),
	})
}

// handleGetGuide retrieves a stored guide record by ID
func (s *Server) handleGetGuide(w http.ResponseWriter, r *http.Request) {
	id, ok := s.guideID(w, r)
	if !ok {
		return
	}

	rec, err := s.db.GetGuide(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if rec == nil {
		notFound := &ErrGuideNotFound{ID: id}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, rec)
}

// handleDownloadGuide streams a stored guide PDF by ID
func (s *Server) handleDownloadGuide(w http.ResponseWriter, r *http.Request) {
	id, ok := s.guideID(w, r)
	if !ok {
		return
	}

	rec, err := s.db.GetGuide(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if rec == nil {
		notFound := &ErrGuideNotFound{ID: id}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	pdf, err := s.db.GetGuidePDF(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", rec.Plan+"-guide.pdf"))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdf); err != nil {
		logWriteError(err)
	}
}

// handleDeleteGuide removes a stored guide record
func (s *Server) handleDeleteGuide(w http.ResponseWriter, r *http.Request) {
	id, ok := s.guideID(w, r)
	if !ok {
		return
	}

	deleted, err := s.db.DeleteGuide(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if !deleted {
		notFound := &ErrGuideNotFound{ID: id}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// guideID parses the {id} path value and checks storage is available. On
// failure it writes the error response and reports false.
func (s *Server) guideID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	if s.db == nil {
		err := &ErrStorageDisabled{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return uuid.Nil, false
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid guide ID")
		return uuid.Nil, false
	}
	return id, true
}

// parseQueryInt reads an integer query parameter with a default and an
// optional cap (0 means uncapped).
func parseQueryInt(r *http.Request, key string, def, max int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}
	var n int
	if _, err := fmt.Sscanf(raw, "%d", &n); err != nil || n < 0 {
		return def
	}
	if max > 0 && n > max {
		return max
	}
	return n
}
