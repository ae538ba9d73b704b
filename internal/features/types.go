package features

// Gender is the closed set of gender choices offered by the form.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// Genders returns every gender in code order.
func Genders() []Gender {
	return []Gender{GenderMale, GenderFemale, GenderOther}
}

// Occupation is the closed set of occupations offered by the form.
type Occupation string

const (
	OccupationNurse       Occupation = "Nurse"
	OccupationDoctor      Occupation = "Doctor"
	OccupationEngineer    Occupation = "Engineer"
	OccupationLawyer      Occupation = "Lawyer"
	OccupationTeacher     Occupation = "Teacher"
	OccupationAccountant  Occupation = "Accountant"
	OccupationSalesperson Occupation = "Salesperson"
	OccupationStudent     Occupation = "Student"
	OccupationOthers      Occupation = "Others"
)

// Occupations returns every occupation in code order.
func Occupations() []Occupation {
	return []Occupation{
		OccupationNurse,
		OccupationDoctor,
		OccupationEngineer,
		OccupationLawyer,
		OccupationTeacher,
		OccupationAccountant,
		OccupationSalesperson,
		OccupationStudent,
		OccupationOthers,
	}
}

// BMICategory is the bucket derived from weight / height².
type BMICategory int

const (
	BMIUnderweight BMICategory = iota
	BMINormal
	BMIOverweight
	BMIObese
)

func (c BMICategory) String() string {
	switch c {
	case BMIUnderweight:
		return "Underweight"
	case BMINormal:
		return "Normal"
	case BMIOverweight:
		return "Overweight"
	case BMIObese:
		return "Obese"
	default:
		return "Unknown"
	}
}

// RawInputs holds one form submission exactly as entered.
type RawInputs struct {
	Age              int        `json:"age"`
	Gender           Gender     `json:"gender"`
	Occupation       Occupation `json:"occupation"`
	HeightCm         int        `json:"height_cm"`
	WeightKg         int        `json:"weight_kg"`
	SleepDuration    float64    `json:"sleep_duration_hours"`
	QualityOfSleep   int        `json:"quality_of_sleep"`
	PhysicalActivity int        `json:"physical_activity_level"`
	StressLevel      int        `json:"stress_level"`
	HeartRate        int        `json:"heart_rate_bpm"`
	DailySteps       int        `json:"daily_steps"`
	Systolic         int        `json:"systolic_mmhg"`
	Diastolic        int        `json:"diastolic_mmhg"`
}

// DefaultInputs returns the values the form starts with.
func DefaultInputs() RawInputs {
	return RawInputs{
		Age:              25,
		Gender:           GenderMale,
		Occupation:       OccupationNurse,
		HeightCm:         170,
		WeightKg:         70,
		SleepDuration:    7.0,
		QualityOfSleep:   5,
		PhysicalActivity: 30,
		StressLevel:      5,
		HeartRate:        70,
		DailySteps:       5000,
		Systolic:         120,
		Diastolic:        80,
	}
}

// VectorLen is the number of features the scaler and classifier expect.
const VectorLen = 12

// Vector is the fixed-order numeric input to the scaler and classifier:
// age, gender, occupation, sleep duration, quality of sleep, physical
// activity, stress, BMI category, heart rate, daily steps, systolic,
// diastolic.
type Vector [VectorLen]float64

// FeatureNames lists the vector positions by name, in order.
var FeatureNames = [VectorLen]string{
	"age",
	"gender",
	"occupation",
	"sleep_duration",
	"quality_of_sleep",
	"physical_activity_level",
	"stress_level",
	"bmi_category",
	"heart_rate",
	"daily_steps",
	"systolic",
	"diastolic",
}
