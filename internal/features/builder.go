package features

// Build validates in and assembles the model input vector. It returns the
// derived BMI category alongside so callers do not recompute it.
func Build(in RawInputs) (Vector, BMICategory, error) {
	// Bounds first: height is the BMI divisor.
	if err := in.Validate(); err != nil {
		return Vector{}, 0, err
	}

	gender, err := in.Gender.Code()
	if err != nil {
		return Vector{}, 0, err
	}
	occupation, err := in.Occupation.Code()
	if err != nil {
		return Vector{}, 0, err
	}

	cat := CategorizeBMI(BMI(in.HeightCm, in.WeightKg))

	v := Vector{
		float64(in.Age),
		float64(gender),
		float64(occupation),
		in.SleepDuration,
		float64(in.QualityOfSleep),
		float64(in.PhysicalActivity),
		float64(in.StressLevel),
		float64(cat),
		float64(in.HeartRate),
		float64(in.DailySteps),
		float64(in.Systolic),
		float64(in.Diastolic),
	}
	return v, cat, nil
}
