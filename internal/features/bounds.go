package features

// Field identifies a numeric input on the form.
type Field string

const (
	FieldAge              Field = "age"
	FieldHeight           Field = "height_cm"
	FieldWeight           Field = "weight_kg"
	FieldSleepDuration    Field = "sleep_duration_hours"
	FieldQualityOfSleep   Field = "quality_of_sleep"
	FieldPhysicalActivity Field = "physical_activity_level"
	FieldStressLevel      Field = "stress_level"
	FieldHeartRate        Field = "heart_rate_bpm"
	FieldDailySteps       Field = "daily_steps"
	FieldSystolic         Field = "systolic_mmhg"
	FieldDiastolic        Field = "diastolic_mmhg"
)

// Bound describes the accepted range of a numeric field.
type Bound struct {
	Field    Field   `json:"field"`
	Label    string  `json:"label"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Step     float64 `json:"step"`
	Default  float64 `json:"default"`
	Decimals int     `json:"decimals"`
}

// Contains reports whether v lies within [Min, Max].
func (b Bound) Contains(v float64) bool {
	return v >= b.Min && v <= b.Max
}

// bounds is ordered the way the form presents the numeric fields.
var bounds = []Bound{
	{Field: FieldAge, Label: "Age", Min: 10, Max: 100, Step: 1, Default: 25},
	{Field: FieldHeight, Label: "Height (cm)", Min: 100, Max: 250, Step: 1, Default: 170},
	{Field: FieldWeight, Label: "Weight (kg)", Min: 30, Max: 200, Step: 1, Default: 70},
	{Field: FieldSleepDuration, Label: "Sleep Duration (hours)", Min: 1.0, Max: 12.0, Step: 0.1, Default: 7.0, Decimals: 1},
	{Field: FieldQualityOfSleep, Label: "Quality of Sleep (1-10)", Min: 1, Max: 10, Step: 1, Default: 5},
	{Field: FieldPhysicalActivity, Label: "Physical Activity Level", Min: 0, Max: 100, Step: 10, Default: 30},
	{Field: FieldStressLevel, Label: "Stress Level (1-10)", Min: 1, Max: 10, Step: 1, Default: 5},
	{Field: FieldHeartRate, Label: "Heart Rate (bpm)", Min: 40, Max: 120, Step: 1, Default: 70},
	{Field: FieldDailySteps, Label: "Daily Steps (0-10000)", Min: 0, Max: 10000, Step: 100, Default: 5000},
	{Field: FieldSystolic, Label: "Systolic Blood Pressure", Min: 80, Max: 200, Step: 1, Default: 120},
	{Field: FieldDiastolic, Label: "Diastolic Blood Pressure", Min: 50, Max: 130, Step: 1, Default: 80},
}

// Bounds returns the numeric field bounds in form order.
func Bounds() []Bound {
	out := make([]Bound, len(bounds))
	copy(out, bounds)
	return out
}

// BoundFor returns the bound of a single field.
func BoundFor(f Field) (Bound, bool) {
	for _, b := range bounds {
		if b.Field == f {
			return b, true
		}
	}
	return Bound{}, false
}

// Get returns the value of a numeric field.
func (in RawInputs) Get(f Field) float64 {
	switch f {
	case FieldAge:
		return float64(in.Age)
	case FieldHeight:
		return float64(in.HeightCm)
	case FieldWeight:
		return float64(in.WeightKg)
	case FieldSleepDuration:
		return in.SleepDuration
	case FieldQualityOfSleep:
		return float64(in.QualityOfSleep)
	case FieldPhysicalActivity:
		return float64(in.PhysicalActivity)
	case FieldStressLevel:
		return float64(in.StressLevel)
	case FieldHeartRate:
		return float64(in.HeartRate)
	case FieldDailySteps:
		return float64(in.DailySteps)
	case FieldSystolic:
		return float64(in.Systolic)
	case FieldDiastolic:
		return float64(in.Diastolic)
	}
	return 0
}

// Set assigns a numeric field. Integer fields are truncated.
func (in *RawInputs) Set(f Field, v float64) {
	switch f {
	case FieldAge:
		in.Age = int(v)
	case FieldHeight:
		in.HeightCm = int(v)
	case FieldWeight:
		in.WeightKg = int(v)
	case FieldSleepDuration:
		in.SleepDuration = v
	case FieldQualityOfSleep:
		in.QualityOfSleep = int(v)
	case FieldPhysicalActivity:
		in.PhysicalActivity = int(v)
	case FieldStressLevel:
		in.StressLevel = int(v)
	case FieldHeartRate:
		in.HeartRate = int(v)
	case FieldDailySteps:
		in.DailySteps = int(v)
	case FieldSystolic:
		in.Systolic = int(v)
	case FieldDiastolic:
		in.Diastolic = int(v)
	}
}

// Validate checks every numeric field against its bound and returns the
// first violation in form order.
func (in RawInputs) Validate() error {
	for _, b := range bounds {
		v := in.Get(b.Field)
		if !b.Contains(v) {
			return &ValidationError{Field: b.Field, Value: v, Min: b.Min, Max: b.Max}
		}
	}
	return nil
}
