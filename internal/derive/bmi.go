package derive

import "math"

// BMI categories, labeled the way the app displays them.
const (
	BMIUnderweight = "Abaixo do peso"
	BMINormal      = "Peso normal"
	BMIOverweight  = "Sobrepeso"
	BMIObesity1    = "Obesidade grau I"
	BMIObesity2    = "Obesidade grau II"
	BMIObesity3    = "Obesidade grau III"
)

// BMI computes weight / height² with height in centimeters. Returns 0 for a
// non-positive height.
func BMI(heightCm, weightKg float64) float64 {
	if heightCm <= 0 {
		return 0
	}
	m := heightCm / 100
	return weightKg / (m * m)
}

// BMICategory buckets a BMI value into the six standard categories.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return BMIUnderweight
	case bmi < 25:
		return BMINormal
	case bmi < 30:
		return BMIOverweight
	case bmi < 35:
		return BMIObesity1
	case bmi < 40:
		return BMIObesity2
	default:
		return BMIObesity3
	}
}

// RecommendedWaterGoalML is the weight-based intake recommendation: 30 ml
// per kilogram.
func RecommendedWaterGoalML(weightKg float64) int {
	return int(math.Round(weightKg * 30))
}
