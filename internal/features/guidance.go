package features

// SleepQualityBand describes a quality-of-sleep score.
func SleepQualityBand(q int) string {
	switch {
	case q <= 3:
		return "Poor (frequent disturbances)"
	case q <= 6:
		return "Fair (light sleep, not refreshing)"
	case q <= 8:
		return "Good (mostly uninterrupted, refreshing)"
	default:
		return "Excellent (deep, restorative sleep)"
	}
}

// ActivityBand describes a physical activity level.
func ActivityBand(level int) string {
	switch {
	case level <= 0:
		return "No physical activity"
	case level <= 30:
		return "Low activity (sedentary)"
	case level <= 60:
		return "Moderate activity (light exercise)"
	case level <= 80:
		return "High activity (regular exercise)"
	default:
		return "Very high activity (intense daily exercise)"
	}
}

// StressBand describes a stress level.
func StressBand(level int) string {
	switch {
	case level <= 0:
		return "No stress"
	case level <= 3:
		return "Low stress"
	case level <= 6:
		return "Moderate stress"
	case level <= 8:
		return "High stress"
	default:
		return "Extreme stress"
	}
}

// Hint returns guidance for the current value of f, or "" when the field has
// no guidance text.
func Hint(f Field, in RawInputs) string {
	switch f {
	case FieldQualityOfSleep:
		return SleepQualityBand(in.QualityOfSleep)
	case FieldPhysicalActivity:
		return ActivityBand(in.PhysicalActivity)
	case FieldStressLevel:
		return StressBand(in.StressLevel)
	case FieldDailySteps:
		return "Average number of steps per day"
	case FieldSystolic:
		return "Systolic blood pressure in mmHg"
	case FieldDiastolic:
		return "Diastolic blood pressure in mmHg"
	}
	return ""
}
