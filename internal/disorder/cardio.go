package disorder

import "github.com/jpsleep/sleepcheck/internal/features"

// ApneaMinHeartRate is the resting heart rate (exclusive) that, together with
// an obese BMI, suggests obstructive sleep apnea.
const ApneaMinHeartRate = 90

// ApneaRule flags obesity combined with a raised heart rate.
type ApneaRule struct{}

func (r *ApneaRule) Label() Label { return LabelObstructiveApnea }

func (r *ApneaRule) Matches(in *Input) bool {
	return in.BMICategory == features.BMIObese && in.HeartRate > ApneaMinHeartRate
}

// Blood pressure thresholds in mmHg (exclusive).
const (
	HypertensionMinSystolic  = 140
	HypertensionMinDiastolic = 90
)

// HypertensionRule flags high systolic or diastolic pressure.
type HypertensionRule struct{}

func (r *HypertensionRule) Label() Label { return LabelHypertensionRelated }

func (r *HypertensionRule) Matches(in *Input) bool {
	return in.Systolic > HypertensionMinSystolic || in.Diastolic > HypertensionMinDiastolic
}

// Restless leg thresholds (exclusive). Both must hold.
const (
	RestlessLegMaxSteps    = 3000
	RestlessLegMaxActivity = 20
)

// RestlessLegRule flags a sedentary day.
type RestlessLegRule struct{}

func (r *RestlessLegRule) Label() Label { return LabelRestlessLeg }

func (r *RestlessLegRule) Matches(in *Input) bool {
	return in.DailySteps < RestlessLegMaxSteps && in.PhysicalActivity < RestlessLegMaxActivity
}
