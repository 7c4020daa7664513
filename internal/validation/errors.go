// Package validation checks guide inputs before generation and guide
// documents after generation. Input checks cover the request profile
// (struct rules) and the raw answers JSON (schema); document checks verify
// layout invariants against the recorded text trace.
package validation

import "fmt"

// Error represents an error that occurs during validation
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Violation is one failed check with enough context to act on
type Violation struct {
	Rule    string `json:"rule"`
	Detail  string `json:"detail"`
	Page    int    `json:"page,omitempty"`
	Section string `json:"section,omitempty"`
}

func (v Violation) String() string {
	if v.Page > 0 {
		return fmt.Sprintf("%s (page %d): %s", v.Rule, v.Page, v.Detail)
	}
	return fmt.Sprintf("%s: %s", v.Rule, v.Detail)
}
