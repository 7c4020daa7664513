package validation

import (
	"github.com/go-playground/validator/v10"

	"github.com/plantrx/guide-engine/internal/types"
)

// validate is shared; validator instances cache struct metadata and are safe
// for concurrent use
var validate = validator.New()

// ValidateProfile applies the struct rules on UserProfile (name presence and
// bounded lengths). Optional fields are deliberately unchecked — missing
// data is the selectors' job to default, not a request error.
func ValidateProfile(profile *types.UserProfile) error {
	if profile == nil {
		return &Error{Message: "profile is required"}
	}
	if err := validate.Struct(profile); err != nil {
		return &Error{Message: "invalid profile", Cause: err}
	}
	return nil
}
