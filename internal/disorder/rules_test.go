package disorder

import (
	"reflect"
	"testing"

	"github.com/jpsleep/sleepcheck/internal/features"
)

// quietInput matches no rule.
func quietInput() *Input {
	return &Input{
		SleepDuration:    7,
		QualityOfSleep:   7,
		StressLevel:      2,
		BMICategory:      features.BMINormal,
		HeartRate:        70,
		Systolic:         110,
		Diastolic:        70,
		DailySteps:       8000,
		PhysicalActivity: 50,
	}
}

func TestEvaluate_AllRulesFireInOrder(t *testing.T) {
	in := &Input{
		SleepDuration:    4,
		QualityOfSleep:   8,
		StressLevel:      7,
		BMICategory:      features.BMIObese,
		HeartRate:        95,
		Systolic:         150,
		Diastolic:        95,
		DailySteps:       1000,
		PhysicalActivity: 10,
	}

	got := Evaluate(DefaultRules(), in)
	want := []Label{
		LabelInsomnia,
		LabelSleepAnxiety,
		LabelObstructiveApnea,
		LabelHypertensionRelated,
		LabelRestlessLeg,
		LabelNarcolepsy,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestEvaluate_NoMatchFallsBack(t *testing.T) {
	got := Evaluate(DefaultRules(), quietInput())
	want := []Label{LabelGeneralSleepDisorder}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestEvaluate_StressOverlap(t *testing.T) {
	in := quietInput()
	in.StressLevel = 6

	got := Evaluate(DefaultRules(), in)
	want := []Label{LabelSleepAnxiety, LabelNarcolepsy}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestEvaluate_ModerateStressOnlyNarcolepsy(t *testing.T) {
	in := quietInput()
	in.StressLevel = 4

	got := Evaluate(DefaultRules(), in)
	want := []Label{LabelNarcolepsy}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestEvaluate_EmptyRuleSet(t *testing.T) {
	got := Evaluate(nil, quietInput())
	if len(got) != 1 || got[0] != LabelGeneralSleepDisorder {
		t.Errorf("got %v, want fallback only", got)
	}
}

func TestRules_Thresholds(t *testing.T) {
	tests := []struct {
		name string
		rule Rule
		mut  func(*Input)
		want bool
	}{
		{"insomnia sleep at threshold", &InsomniaRule{}, func(in *Input) { in.SleepDuration = 5 }, false},
		{"insomnia sleep below", &InsomniaRule{}, func(in *Input) { in.SleepDuration = 4.9 }, true},
		{"insomnia quality at threshold", &InsomniaRule{}, func(in *Input) { in.QualityOfSleep = 3 }, false},
		{"insomnia quality below", &InsomniaRule{}, func(in *Input) { in.QualityOfSleep = 2 }, true},
		{"anxiety at threshold", &SleepAnxietyRule{}, func(in *Input) { in.StressLevel = 5 }, false},
		{"anxiety above", &SleepAnxietyRule{}, func(in *Input) { in.StressLevel = 6 }, true},
		{"apnea obese fast", &ApneaRule{}, func(in *Input) { in.BMICategory = features.BMIObese; in.HeartRate = 91 }, true},
		{"apnea obese at threshold", &ApneaRule{}, func(in *Input) { in.BMICategory = features.BMIObese; in.HeartRate = 90 }, false},
		{"apnea overweight fast", &ApneaRule{}, func(in *Input) { in.BMICategory = features.BMIOverweight; in.HeartRate = 110 }, false},
		{"hypertension systolic at", &HypertensionRule{}, func(in *Input) { in.Systolic = 140 }, false},
		{"hypertension systolic above", &HypertensionRule{}, func(in *Input) { in.Systolic = 141 }, true},
		{"hypertension diastolic above", &HypertensionRule{}, func(in *Input) { in.Diastolic = 91 }, true},
		{"restless both low", &RestlessLegRule{}, func(in *Input) { in.DailySteps = 2900; in.PhysicalActivity = 10 }, true},
		{"restless steps only", &RestlessLegRule{}, func(in *Input) { in.DailySteps = 2900 }, false},
		{"restless activity at threshold", &RestlessLegRule{}, func(in *Input) { in.DailySteps = 100; in.PhysicalActivity = 20 }, false},
		{"narcolepsy long sleep", &NarcolepsyRule{}, func(in *Input) { in.SleepDuration = 9.5 }, true},
		{"narcolepsy sleep at threshold", &NarcolepsyRule{}, func(in *Input) { in.SleepDuration = 9 }, false},
		{"narcolepsy stress at threshold", &NarcolepsyRule{}, func(in *Input) { in.StressLevel = 3 }, false},
	}

	for _, tt := range tests {
		in := quietInput()
		tt.mut(in)
		if got := tt.rule.Matches(in); got != tt.want {
			t.Errorf("%s: Matches = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestDefaultRules_Order(t *testing.T) {
	want := []Label{
		LabelInsomnia,
		LabelSleepAnxiety,
		LabelObstructiveApnea,
		LabelHypertensionRelated,
		LabelRestlessLeg,
		LabelNarcolepsy,
	}
	rules := DefaultRules()
	if len(rules) != len(want) {
		t.Fatalf("got %d rules, want %d", len(rules), len(want))
	}
	for i, r := range rules {
		if r.Label() != want[i] {
			t.Errorf("rule %d is %q, want %q", i, r.Label(), want[i])
		}
	}
}

func TestNewInput_Projection(t *testing.T) {
	raw := features.DefaultInputs()
	in := NewInput(raw, features.BMIOverweight)
	if in.SleepDuration != raw.SleepDuration || in.DailySteps != raw.DailySteps {
		t.Errorf("projection lost values: %+v", in)
	}
	if in.BMICategory != features.BMIOverweight {
		t.Errorf("BMICategory = %v, want Overweight", in.BMICategory)
	}
}
