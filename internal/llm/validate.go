package llm

import (
	"encoding/json"

	"github.com/jpsleep/sleepcheck/internal/schema"
)

var responseSchemas = schema.NewRegistry("sleepcheck/llm")

// validateResponse checks raw model output against the requested schema.
// A nil schema accepts anything. Failures are *ErrInvalidResponse so the
// retry decorator can give the model one more try.
func validateResponse(s *Schema, raw json.RawMessage) error {
	if s == nil {
		return nil
	}
	if err := responseSchemas.ValidateJSON(s.Name, s.Definition, raw); err != nil {
		return &ErrInvalidResponse{Content: raw, Err: err}
	}
	return nil
}
