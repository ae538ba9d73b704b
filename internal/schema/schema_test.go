package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var adviceDef = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"summary":     map[string]any{"type": "string", "minLength": 1},
		"suggestions": map[string]any{"type": "array", "items": map[string]any{"type": "string"}, "maxItems": 2},
	},
	"required": []any{"summary"},
}

func TestValidateJSON(t *testing.T) {
	r := NewRegistry("test")
	tests := []struct {
		name    string
		raw     string
		wantErr string
	}{
		{"valid", `{"summary":"sleep more","suggestions":["a"]}`, ""},
		{"missing required", `{"suggestions":[]}`, "summary"},
		{"wrong type", `{"summary":3}`, "schema advice"},
		{"too many items", `{"summary":"x","suggestions":["a","b","c"]}`, "schema advice"},
		{"not json", `{"summary":`, "invalid JSON"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := r.ValidateJSON("advice", adviceDef, []byte(tt.raw))
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCompileCaches(t *testing.T) {
	r := NewRegistry("test")
	a, err := r.Compile("advice", adviceDef)
	require.NoError(t, err)
	b, err := r.Compile("advice", map[string]any{"type": "string"})
	require.NoError(t, err)
	assert.Same(t, a, b)
}

func TestCompileRejectsBadSchema(t *testing.T) {
	r := NewRegistry("test")
	_, err := r.Compile("bad", map[string]any{"type": 42})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "compile schema bad")
}

func TestValidateDecodedDoc(t *testing.T) {
	r := NewRegistry("test")
	doc := map[string]any{"summary": "ok"}
	assert.NoError(t, r.Validate("advice", adviceDef, doc))
}
