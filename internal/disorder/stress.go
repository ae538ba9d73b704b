package disorder

// SleepAnxietyMinStress is the stress level above which sleep anxiety is
// suggested.
const SleepAnxietyMinStress = 5

// SleepAnxietyRule flags elevated stress.
type SleepAnxietyRule struct{}

func (r *SleepAnxietyRule) Label() Label { return LabelSleepAnxiety }

func (r *SleepAnxietyRule) Matches(in *Input) bool {
	return in.StressLevel > SleepAnxietyMinStress
}

// Narcolepsy thresholds (exclusive). The stress trigger is lower than the
// sleep anxiety one, so any case that suggests anxiety also suggests
// narcolepsy.
const (
	NarcolepsyMinSleepHours = 9.0
	NarcolepsyMinStress     = 3
)

// NarcolepsyRule flags long sleep or more than low stress.
type NarcolepsyRule struct{}

func (r *NarcolepsyRule) Label() Label { return LabelNarcolepsy }

func (r *NarcolepsyRule) Matches(in *Input) bool {
	return in.SleepDuration > NarcolepsyMinSleepHours || in.StressLevel > NarcolepsyMinStress
}
