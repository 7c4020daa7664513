package validation

import (
	_ "embed"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed answers_schema.json
var answersSchema string

// ValidateAnswersJSON checks a raw answers document against the
// questionnaire schema before it ever reaches the selectors. The selectors
// themselves tolerate anything, so this is a boundary check for callers that
// accept untrusted JSON: it bounds value sizes and rejects non-object input.
func ValidateAnswersJSON(raw []byte) error {
	if len(raw) == 0 {
		return nil // an absent answer bag is valid; selectors default everything
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(answersSchema),
		gojsonschema.NewBytesLoader(raw),
	)
	if err != nil {
		return &Error{Message: "failed to validate answers", Cause: err}
	}

	if !result.Valid() {
		detail := ""
		for i, desc := range result.Errors() {
			if i > 0 {
				detail += "; "
			}
			detail += desc.String()
		}
		return &Error{Message: fmt.Sprintf("answers do not match schema: %s", detail)}
	}
	return nil
}
