package disorder

import "github.com/jpsleep/sleepcheck/internal/features"

// Label names a candidate sleep disorder.
type Label string

const (
	LabelInsomnia             Label = "Insomnia"
	LabelSleepAnxiety         Label = "Sleep Anxiety"
	LabelObstructiveApnea     Label = "Obstructive Sleep Apnea"
	LabelHypertensionRelated  Label = "Hypertension-related Sleep Issues"
	LabelRestlessLeg          Label = "Restless Leg Syndrome"
	LabelNarcolepsy           Label = "Narcolepsy"
	LabelGeneralSleepDisorder Label = "General Sleep Disorder"
)

// Input is the unscaled view of a submission the rules look at.
type Input struct {
	SleepDuration    float64
	QualityOfSleep   int
	StressLevel      int
	BMICategory      features.BMICategory
	HeartRate        int
	Systolic         int
	Diastolic        int
	DailySteps       int
	PhysicalActivity int
}

// NewInput projects raw form inputs and their derived BMI category.
func NewInput(in features.RawInputs, bmi features.BMICategory) *Input {
	return &Input{
		SleepDuration:    in.SleepDuration,
		QualityOfSleep:   in.QualityOfSleep,
		StressLevel:      in.StressLevel,
		BMICategory:      bmi,
		HeartRate:        in.HeartRate,
		Systolic:         in.Systolic,
		Diastolic:        in.Diastolic,
		DailySteps:       in.DailySteps,
		PhysicalActivity: in.PhysicalActivity,
	}
}
