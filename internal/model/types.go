package model

import "github.com/jpsleep/sleepcheck/internal/features"

// Prediction is the classifier's binary risk output.
type Prediction int

const (
	LowRisk  Prediction = 0
	HighRisk Prediction = 1
)

// Positive reports whether the prediction flags a sleep disorder risk.
func (p Prediction) Positive() bool { return p == HighRisk }

func (p Prediction) String() string {
	if p.Positive() {
		return "high risk"
	}
	return "low risk"
}

// Scaler rescales a raw feature vector to the distribution the classifier
// was trained on.
type Scaler interface {
	Transform(v features.Vector) (features.Vector, error)
}

// Classifier maps a scaled vector to a risk prediction.
type Classifier interface {
	Predict(v features.Vector) (Prediction, error)
}

// Scorer is implemented by classifiers that can also report the positive
// class probability.
type Scorer interface {
	Probability(v features.Vector) (float64, error)
}
