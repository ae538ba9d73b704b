package features

// BMI breakpoints. The Normal/Overweight split keeps the historical
// 24.9 / 25 pair: values in [24.9, 25) match neither bucket and fall
// through to Obese, the same as the last-resort branch.
const (
	bmiUnderweightBelow = 18.5
	bmiNormalBelow      = 24.9
	bmiOverweightFrom   = 25.0
	bmiOverweightBelow  = 29.9
)

// BMI returns weight_kg / (height_cm/100)².
func BMI(heightCm, weightKg int) float64 {
	m := float64(heightCm) / 100
	return float64(weightKg) / (m * m)
}

// CategorizeBMI buckets a BMI value. Branch order is significant.
func CategorizeBMI(bmi float64) BMICategory {
	switch {
	case bmi < bmiUnderweightBelow:
		return BMIUnderweight
	case bmi >= bmiUnderweightBelow && bmi < bmiNormalBelow:
		return BMINormal
	case bmi >= bmiOverweightFrom && bmi < bmiOverweightBelow:
		return BMIOverweight
	default:
		return BMIObese
	}
}
