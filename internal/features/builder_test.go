package features

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBMI_NormalExample(t *testing.T) {
	bmi := BMI(170, 70)
	assert.InDelta(t, 24.22, bmi, 0.01)
	assert.Equal(t, BMINormal, CategorizeBMI(bmi))
}

func TestBMI_ObeseExample(t *testing.T) {
	bmi := BMI(170, 90)
	assert.InDelta(t, 31.1, bmi, 0.05)
	assert.Equal(t, BMIObese, CategorizeBMI(bmi))
}

func TestCategorizeBMI_Boundaries(t *testing.T) {
	tests := []struct {
		bmi  float64
		want BMICategory
	}{
		{18.49, BMIUnderweight},
		{18.5, BMINormal},
		{24.89, BMINormal},
		// The [24.9, 25) gap falls through to the last branch.
		{24.9, BMIObese},
		{24.95, BMIObese},
		{25.0, BMIOverweight},
		{29.89, BMIOverweight},
		{29.9, BMIObese},
		{40, BMIObese},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CategorizeBMI(tt.bmi), "bmi=%v", tt.bmi)
	}
}

func TestBuild_Order(t *testing.T) {
	in := RawInputs{
		Age:              41,
		Gender:           GenderFemale,
		Occupation:       OccupationLawyer,
		HeightCm:         170,
		WeightKg:         90,
		SleepDuration:    6.5,
		QualityOfSleep:   4,
		PhysicalActivity: 20,
		StressLevel:      8,
		HeartRate:        88,
		DailySteps:       4200,
		Systolic:         135,
		Diastolic:        88,
	}

	v, cat, err := Build(in)
	require.NoError(t, err)
	assert.Equal(t, BMIObese, cat)
	assert.Equal(t, Vector{41, 1, 3, 6.5, 4, 20, 8, 3, 88, 4200, 135, 88}, v)
}

func TestBuild_Deterministic(t *testing.T) {
	in := DefaultInputs()
	v1, c1, err := Build(in)
	require.NoError(t, err)
	v2, c2, err := Build(in)
	require.NoError(t, err)
	assert.Equal(t, v1, v2)
	assert.Equal(t, c1, c2)
}

func TestBuild_DefaultsAreValid(t *testing.T) {
	v, cat, err := Build(DefaultInputs())
	require.NoError(t, err)
	assert.Equal(t, BMINormal, cat)
	assert.Equal(t, 25.0, v[0])
}

func TestBuild_ZeroHeightRejected(t *testing.T) {
	in := DefaultInputs()
	in.HeightCm = 0

	_, _, err := Build(in)
	var ve *ValidationError
	require.True(t, errors.As(err, &ve), "want ValidationError, got %T", err)
	assert.Equal(t, FieldHeight, ve.Field)
	assert.Equal(t, 100.0, ve.Min)
	assert.Equal(t, 250.0, ve.Max)
}

func TestBuild_BoundViolations(t *testing.T) {
	tests := []struct {
		name  string
		mut   func(*RawInputs)
		field Field
	}{
		{"age low", func(in *RawInputs) { in.Age = 9 }, "age"},
		{"age high", func(in *RawInputs) { in.Age = 101 }, "age"},
		{"weight", func(in *RawInputs) { in.WeightKg = 201 }, "weight_kg"},
		{"sleep", func(in *RawInputs) { in.SleepDuration = 12.5 }, "sleep_duration_hours"},
		{"quality", func(in *RawInputs) { in.QualityOfSleep = 0 }, "quality_of_sleep"},
		{"activity", func(in *RawInputs) { in.PhysicalActivity = 110 }, "physical_activity_level"},
		{"stress", func(in *RawInputs) { in.StressLevel = 11 }, "stress_level"},
		{"heart rate", func(in *RawInputs) { in.HeartRate = 39 }, "heart_rate_bpm"},
		{"steps", func(in *RawInputs) { in.DailySteps = -1 }, "daily_steps"},
		{"systolic", func(in *RawInputs) { in.Systolic = 201 }, "systolic_mmhg"},
		{"diastolic", func(in *RawInputs) { in.Diastolic = 49 }, "diastolic_mmhg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := DefaultInputs()
			tt.mut(&in)
			_, _, err := Build(in)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestBuild_UnmappedCategory(t *testing.T) {
	in := DefaultInputs()
	in.Occupation = "Astronaut"

	_, _, err := Build(in)
	var ue *UnmappedCategoryError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, Field("occupation"), ue.Field)
}

func TestCodes_CoverEnums(t *testing.T) {
	for i, g := range Genders() {
		code, err := g.Code()
		require.NoError(t, err)
		assert.Equal(t, i, code)
	}
	for i, o := range Occupations() {
		code, err := o.Code()
		require.NoError(t, err)
		assert.Equal(t, i, code)
	}
}

func TestParse(t *testing.T) {
	g, err := ParseGender("female")
	require.NoError(t, err)
	assert.Equal(t, GenderFemale, g)

	o, err := ParseOccupation(" SALESPERSON ")
	require.NoError(t, err)
	assert.Equal(t, OccupationSalesperson, o)

	_, err = ParseGender("robot")
	assert.Error(t, err)
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Field: "sleep_duration_hours", Value: 0.5, Min: 1, Max: 12}
	assert.Equal(t, "sleep_duration_hours must be between 1 and 12, got 0.5", err.Error())
}

func TestSetGet_RoundTrip(t *testing.T) {
	in := DefaultInputs()
	for _, b := range Bounds() {
		in.Set(b.Field, b.Max)
		assert.Equal(t, b.Max, in.Get(b.Field), "field %s", b.Field)
	}
	assert.NoError(t, in.Validate())
}

func TestHints(t *testing.T) {
	in := DefaultInputs()
	in.QualityOfSleep = 2
	in.StressLevel = 9
	in.PhysicalActivity = 70
	assert.Contains(t, Hint(FieldQualityOfSleep, in), "Poor")
	assert.Contains(t, Hint(FieldStressLevel, in), "Extreme")
	assert.Contains(t, Hint(FieldPhysicalActivity, in), "High activity")
	assert.Empty(t, Hint(FieldAge, in))
}
