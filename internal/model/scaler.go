package model

import (
	"errors"
	"fmt"
	"math"

	"github.com/jpsleep/sleepcheck/internal/features"
)

// ErrNonFinite is returned when a vector contains NaN or Inf.
var ErrNonFinite = errors.New("vector contains non-finite values")

// StandardScaler applies (x - mean) / scale per feature.
type StandardScaler struct {
	Mean  features.Vector
	Scale features.Vector
}

// Transform implements Scaler.
func (s *StandardScaler) Transform(v features.Vector) (features.Vector, error) {
	var out features.Vector
	for i, x := range v {
		out[i] = (x - s.Mean[i]) / s.Scale[i]
	}
	if err := checkFinite(out); err != nil {
		return features.Vector{}, &PredictionError{Stage: "transform", Err: err}
	}
	return out, nil
}

// MinMaxScaler applies x*scale + min per feature.
type MinMaxScaler struct {
	Min   features.Vector
	Scale features.Vector
}

// Transform implements Scaler.
func (s *MinMaxScaler) Transform(v features.Vector) (features.Vector, error) {
	var out features.Vector
	for i, x := range v {
		out[i] = x*s.Scale[i] + s.Min[i]
	}
	if err := checkFinite(out); err != nil {
		return features.Vector{}, &PredictionError{Stage: "transform", Err: err}
	}
	return out, nil
}

func checkFinite(v features.Vector) error {
	for i, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%w: %s", ErrNonFinite, features.FeatureNames[i])
		}
	}
	return nil
}

func toVector(xs []float64) (features.Vector, error) {
	var v features.Vector
	if len(xs) != features.VectorLen {
		return v, fmt.Errorf("expected %d values, got %d", features.VectorLen, len(xs))
	}
	copy(v[:], xs)
	return v, nil
}
