// Package assess runs the screening pipeline: inputs → feature vector →
// scaler → classifier → disorder rules → knowledge base.
package assess

import (
	"time"

	"github.com/jpsleep/sleepcheck/internal/disorder"
	"github.com/jpsleep/sleepcheck/internal/features"
	"github.com/jpsleep/sleepcheck/internal/model"
)

// Assessment is the result of one evaluation.
type Assessment struct {
	ID          string               `json:"id"`
	CreatedAt   time.Time            `json:"created_at"`
	Inputs      features.RawInputs   `json:"inputs"`
	BMI         float64              `json:"bmi"`
	BMICategory features.BMICategory `json:"-"`
	Vector      features.Vector      `json:"vector"`
	Scaled      features.Vector      `json:"scaled_vector"`
	Prediction  model.Prediction     `json:"prediction"`
	// Probability is set when the classifier can score.
	Probability *float64         `json:"probability,omitempty"`
	Labels      []disorder.Label `json:"labels"`
	Entries     []disorder.Entry `json:"-"`
}

// Positive reports whether the classifier flagged a risk.
func (a *Assessment) Positive() bool { return a.Prediction.Positive() }

// LabelStrings returns the labels as plain strings.
func (a *Assessment) LabelStrings() []string {
	out := make([]string, len(a.Labels))
	for i, l := range a.Labels {
		out[i] = string(l)
	}
	return out
}

const (
	highRiskHeadline = "High risk of sleep disorder detected! Consult a doctor."
	lowRiskHeadline  = "No disorder detected. Low risk of sleep disorder. Keep maintaining good habits!"
)

// Headline is the one-line verdict shown to the user.
func (a *Assessment) Headline() string {
	if a.Positive() {
		return highRiskHeadline
	}
	return lowRiskHeadline
}
