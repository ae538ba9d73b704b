package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func adviceTestSchema() *Schema {
	return &Schema{
		Name:        "advice-test",
		Description: "Sleep advice",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"summary": map[string]any{"type": "string", "minLength": 1},
				"suggestions": map[string]any{
					"type":     "array",
					"items":    map[string]any{"type": "string"},
					"maxItems": 3,
				},
				"hours": map[string]any{"type": "number", "minimum": 0, "maximum": 24},
			},
			"required":             []any{"summary", "suggestions"},
			"additionalProperties": false,
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"summary":"Go to bed earlier","suggestions":["No screens after 10pm"]}`, false},
		{"valid with optional", `{"summary":"ok","suggestions":[],"hours":7.5}`, false},
		{"missing required", `{"summary":"ok"}`, true},
		{"wrong item type", `{"summary":"ok","suggestions":[1]}`, true},
		{"too many suggestions", `{"summary":"ok","suggestions":["a","b","c","d"]}`, true},
		{"out of range", `{"summary":"ok","suggestions":[],"hours":30}`, true},
		{"extra property", `{"summary":"ok","suggestions":[],"mood":"tired"}`, true},
		{"empty summary", `{"summary":"","suggestions":[]}`, true},
		{"not json", `not json`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := json.RawMessage(tt.raw)
			err := validateResponse(adviceTestSchema(), raw)
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("expected no error, got: %v", err)
				}
				return
			}
			var invErr *ErrInvalidResponse
			if !errors.As(err, &invErr) {
				t.Fatalf("expected ErrInvalidResponse, got: %T (%v)", err, err)
			}
			if string(invErr.Content) != tt.raw {
				t.Errorf("content = %s, want the raw response", invErr.Content)
			}
		})
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`anything`)); err != nil {
		t.Fatalf("nil schema should accept anything, got: %v", err)
	}
}
