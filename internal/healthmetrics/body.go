package healthmetrics

// IdealWeight applies the Devine formula and rounds to one decimal.
func IdealWeight(heightCm float64, gender Gender) float64 {
	heightIn := heightCm / 2.54
	var base float64
	switch gender {
	case GenderMale:
		base = 50
	case GenderFemale:
		base = 45.5
	default:
		// Anything other than Male takes the female constant.
		base = 45.5
	}
	return round1(base + 2.3*(heightIn-60))
}

// BMICategory is the outcome of InterpretBMI.
type BMICategory struct {
	Category string   `json:"category"`
	Severity Severity `json:"severity"`
}

// InterpretBMI buckets a BMI value at 18.5, 25 and 30.
func InterpretBMI(bmi float64) BMICategory {
	switch {
	case bmi < 18.5:
		return BMICategory{"Underweight", SeverityWarning}
	case bmi < 25:
		return BMICategory{"Normal", SeveritySuccess}
	case bmi < 30:
		return BMICategory{"Overweight", SeverityWarning}
	}
	return BMICategory{"Obese", SeverityDanger}
}

// BodyFat estimates body-fat percentage from BMI, age and gender.
// weight is part of the signature but does not enter the formula.
func BodyFat(weight float64, age int, gender Gender, bmi float64) float64 {
	_ = weight
	offset := 5.4
	switch gender {
	case GenderMale:
		offset = 16.2
	case GenderFemale:
	}
	return round1(1.20*bmi + 0.23*float64(age) - offset)
}

// WaterRequirement returns daily litres of water, one decimal.
func WaterRequirement(weightKg float64) float64 {
	return round1(weightKg * 0.033)
}

// BMIFromMeasurements computes BMI from weight in kg and height in cm, rounded
// to one decimal. It returns 0 for a non-positive height.
func BMIFromMeasurements(weightKg, heightCm float64) float64 {
	if heightCm <= 0 {
		return 0
	}
	m := heightCm / 100
	return round1(weightKg / (m * m))
}
