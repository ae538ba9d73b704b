package model

import (
	"fmt"

	"github.com/jpsleep/sleepcheck/internal/features"
	"github.com/jpsleep/sleepcheck/internal/schema"
)

// Artifact kinds.
const (
	KindStandardScaler     = "standard_scaler"
	KindMinMaxScaler       = "min_max_scaler"
	KindLogisticRegression = "logistic_regression"
)

func vectorSchema() map[string]any {
	return map[string]any{
		"type":     "array",
		"items":    map[string]any{"type": "number"},
		"minItems": features.VectorLen,
		"maxItems": features.VectorLen,
	}
}

var envelopeSchema = map[string]any{
	"type":     "object",
	"required": []any{"format_version", "kind"},
	"properties": map[string]any{
		"format_version": map[string]any{"type": "string", "minLength": 1},
		"kind":           map[string]any{"type": "string", "minLength": 1},
	},
}

var standardScalerSchema = map[string]any{
	"type":     "object",
	"required": []any{"mean", "scale"},
	"properties": map[string]any{
		"feature_names": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"mean":          vectorSchema(),
		"scale":         vectorSchema(),
	},
}

var minMaxScalerSchema = map[string]any{
	"type":     "object",
	"required": []any{"min", "scale"},
	"properties": map[string]any{
		"feature_names": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"min":           vectorSchema(),
		"scale":         vectorSchema(),
	},
}

var logisticSchema = map[string]any{
	"type":     "object",
	"required": []any{"coef", "intercept"},
	"properties": map[string]any{
		"coef":      vectorSchema(),
		"intercept": map[string]any{"type": "number"},
		"threshold": map[string]any{"type": "number", "exclusiveMinimum": 0, "exclusiveMaximum": 1},
	},
}

var schemaDefs = map[string]map[string]any{
	"envelope":             envelopeSchema,
	KindStandardScaler:     standardScalerSchema,
	KindMinMaxScaler:       minMaxScalerSchema,
	KindLogisticRegression: logisticSchema,
}

var registry = schema.NewRegistry("sleepcheck/model")

// validateRaw checks an artifact document against the schema for its kind.
func validateRaw(name string, raw []byte) error {
	def, ok := schemaDefs[name]
	if !ok {
		return fmt.Errorf("no schema named %q", name)
	}
	return registry.ValidateJSON(name, def, raw)
}
