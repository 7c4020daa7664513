// Package guide contains the top-level document assembler: it opens a canvas
// with guide metadata, runs the section renderers in canonical order,
// computes the table of contents from the pages sections actually landed on,
// runs the page-numbering pass, and resolves the finished byte buffer.
package guide

import (
	"context"
	"fmt"
	"time"

	"github.com/plantrx/guide-engine/internal/layout"
	"github.com/plantrx/guide-engine/internal/sections"
	"github.com/plantrx/guide-engine/internal/types"
)

// author is the fixed platform name embedded in document metadata
const author = "PlantRx"

// tocPage is where the table of contents always lives
const tocPage = 2

// Request carries everything one generation needs. Profile and Answers are
// read-only for the duration of the call.
type Request struct {
	Plan    types.PlanType
	Profile *types.UserProfile
	Answers types.Answers
	// PersonalNote is optional pre-computed intro copy; the assembler never
	// produces it itself so generation stays deterministic in its inputs.
	PersonalNote string
}

// SectionPage records where a section's header actually rendered
type SectionPage struct {
	Title string `json:"title"`
	Page  int    `json:"page"`
}

// Result is a finalized guide. PDF is immutable once returned.
type Result struct {
	PDF      []byte
	Pages    int
	Sections []SectionPage
	Trace    *layout.Trace
}

// Generator assembles guides. The zero value is ready to use; Now is
// injectable for reproducible output in tests.
type Generator struct {
	Now func() time.Time
}

// Generate runs one single-attempt composition pass. The only failure modes
// are an invalid plan type, canvas construction failure, and buffer
// emission; everything else degrades inside the pipeline. There are no
// retries — that is the caller's concern.
func (g *Generator) Generate(ctx context.Context, req Request) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !req.Plan.Valid() {
		return nil, fmt.Errorf("generate guide: invalid plan type %q", req.Plan)
	}

	profile := req.Profile
	if profile == nil {
		profile = &types.UserProfile{}
	}

	now := time.Now
	if g.Now != nil {
		now = g.Now
	}
	createdAt := now()
	asOf := createdAt.Format("January 2, 2006")

	c, err := layout.NewCanvas(layout.Metadata{
		Title:     fmt.Sprintf("%s's %s Guide", profile.DisplayName(), req.Plan.Title()),
		Author:    author,
		Subject:   fmt.Sprintf("%s transformation program, %s", req.Plan.Title(), profile.DurationLabel()),
		Keywords:  fmt.Sprintf("natural health, %s, %s", req.Plan, profile.DurationLabel()),
		PlanLabel: req.Plan.Title(),
		AsOf:      asOf,
		CreatedAt: createdAt,
	})
	if err != nil {
		return nil, err
	}

	in := sections.Inputs{
		Plan:         req.Plan,
		Profile:      profile,
		Answers:      req.Answers,
		AsOf:         asOf,
		DurationDays: profile.DurationDays(),
		PersonalNote: req.PersonalNote,
	}

	sections.RenderCover(c, in)
	sections.RenderTOCPlaceholder(c)

	body := sections.BodySections()
	starts := make([]SectionPage, 0, len(body))
	entries := make([]layout.TOCEntry, 0, len(body))
	for _, renderer := range body {
		// Renderers open their own fresh page, so the section starts on the
		// page after everything buffered so far.
		start := c.PageCount() + 1
		renderer.Render(c, in)
		starts = append(starts, SectionPage{Title: renderer.Title, Page: start})
		entries = append(entries, layout.TOCEntry{Title: renderer.Title, Page: start})
	}

	c.WriteTOCEntries(tocPage, entries)
	c.StampPageNumbers()

	pdf, err := c.Close()
	if err != nil {
		return nil, err
	}

	return &Result{
		PDF:      pdf,
		Pages:    c.PageCount(),
		Sections: starts,
		Trace:    c.Trace(),
	}, nil
}

// Generate is the plain function boundary: plan, profile, answers in, byte
// buffer out. Callers needing section positions or the text trace use a
// Generator directly.
func Generate(ctx context.Context, plan types.PlanType, profile *types.UserProfile, answers types.Answers) ([]byte, error) {
	res, err := (&Generator{}).Generate(ctx, Request{Plan: plan, Profile: profile, Answers: answers})
	if err != nil {
		return nil, err
	}
	return res.PDF, nil
}
