package disorder

// Insomnia thresholds (exclusive).
const (
	InsomniaMaxSleepHours = 5.0
	InsomniaMaxQuality    = 3
)

// InsomniaRule flags short or very poor sleep.
type InsomniaRule struct{}

func (r *InsomniaRule) Label() Label { return LabelInsomnia }

func (r *InsomniaRule) Matches(in *Input) bool {
	return in.SleepDuration < InsomniaMaxSleepHours || in.QualityOfSleep < InsomniaMaxQuality
}
