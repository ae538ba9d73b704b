package model

import (
	"math"

	"github.com/jpsleep/sleepcheck/internal/features"
)

// DefaultThreshold is the positive-class probability cut-off used when an
// artifact does not set one.
const DefaultThreshold = 0.5

// LogisticClassifier is a binary logistic regression over the scaled vector.
type LogisticClassifier struct {
	Coef      features.Vector
	Intercept float64
	Threshold float64
}

// Probability returns sigmoid(coef·v + intercept).
func (c *LogisticClassifier) Probability(v features.Vector) (float64, error) {
	if err := checkFinite(v); err != nil {
		return 0, &PredictionError{Stage: "predict", Err: err}
	}
	z := c.Intercept
	for i, x := range v {
		z += c.Coef[i] * x
	}
	p := 1 / (1 + math.Exp(-z))
	if math.IsNaN(p) {
		return 0, &PredictionError{Stage: "predict", Err: ErrNonFinite}
	}
	return p, nil
}

// Predict implements Classifier. Probabilities strictly above the threshold
// are positive.
func (c *LogisticClassifier) Predict(v features.Vector) (Prediction, error) {
	p, err := c.Probability(v)
	if err != nil {
		return LowRisk, err
	}
	threshold := c.Threshold
	if threshold == 0 {
		threshold = DefaultThreshold
	}
	if p > threshold {
		return HighRisk, nil
	}
	return LowRisk, nil
}
