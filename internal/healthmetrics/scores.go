package healthmetrics

import "math"

// RiskScore sums independent hypertension risk factors and clamps the total
// to 100.
func RiskScore(r HealthRecord) int {
	score := 0

	switch Classify(r.Systolic, r.Diastolic).Stage {
	case StageOne:
		score += 20
	case StageTwo:
		score += 35
	case StageCrisis:
		score += 50
	case StageNormal, StageElevated, StageUnknown:
	}

	switch {
	case r.BMI > 30:
		score += 10
	case r.BMI > 25:
		score += 5
	}
	switch {
	case r.Cholesterol > 240:
		score += 10
	case r.Cholesterol > 200:
		score += 5
	}
	switch {
	case r.BloodSugar > 126:
		score += 10
	case r.BloodSugar > 100:
		score += 5
	}
	if r.SleepHours < 6 {
		score += 8
	}

	switch r.StressLevel {
	case LevelHigh:
		score += 10
	case LevelMedium:
		score += 5
	case LevelLow:
	}
	switch r.SaltIntake {
	case LevelHigh:
		score += 8
	case LevelMedium:
		score += 4
	case LevelLow:
	}

	if !r.PhysicalActivity {
		score += 8
	}
	if r.FamilyHistory {
		score += 12
	}
	switch {
	case r.Age > 60:
		score += 8
	case r.Age > 45:
		score += 5
	}
	return clampScore(score)
}

// Stability starts from 100 and subtracts a penalty for each metric outside
// its healthy range.
func Stability(r HealthRecord) int {
	score := 100
	if Classify(r.Systolic, r.Diastolic).Stage != StageNormal {
		score -= 20
	}
	switch {
	case r.BMI < 18.5 || r.BMI > 30:
		score -= 15
	case r.BMI > 25:
		score -= 8
	}
	if r.SleepHours < 6 || r.SleepHours > 9 {
		score -= 10
	}
	switch r.StressLevel {
	case LevelHigh:
		score -= 15
	case LevelLow, LevelMedium:
	}
	if !r.PhysicalActivity {
		score -= 10
	}
	if r.Cholesterol > 240 {
		score -= 10
	}
	if r.BloodSugar > 126 {
		score -= 10
	}
	return clampScore(score)
}

// SleepScore is 100 inside the 7-9 hour band and loses 20 points per hour of
// distance from 8 hours outside it.
func SleepScore(hours float64) float64 {
	if hours >= 7 && hours <= 9 {
		return 100
	}
	return math.Max(0, 100-math.Abs(hours-8)*20)
}

// Readiness blends stability, inverted risk and sleep quality at 40/40/20.
func Readiness(r HealthRecord) int {
	stability := float64(Stability(r))
	risk := float64(RiskScore(r))
	return roundInt(stability*0.4 + (100-risk)*0.4 + SleepScore(r.SleepHours)*0.2)
}

// GeneticRisk scores inherited and age-related predisposition.
func GeneticRisk(familyHistory bool, age int, bmi float64) int {
	risk := 0
	if familyHistory {
		risk += 35
	}
	switch {
	case age > 55:
		risk += 20
	case age > 40:
		risk += 10
	}
	switch {
	case bmi > 30:
		risk += 15
	case bmi > 25:
		risk += 8
	}
	return clampScore(risk)
}

// MetabolicRisk scores weight, lipid and glucose markers.
func MetabolicRisk(bmi, cholesterol, bloodSugar float64) int {
	risk := 0
	switch {
	case bmi > 30:
		risk += 30
	case bmi > 25:
		risk += 15
	}
	switch {
	case cholesterol > 240:
		risk += 25
	case cholesterol > 200:
		risk += 12
	}
	switch {
	case bloodSugar > 126:
		risk += 30
	case bloodSugar > 100:
		risk += 15
	}
	return clampScore(risk)
}

// RiskColor maps a 0-100 risk score onto a display severity.
func RiskColor(score int) Severity {
	switch {
	case score <= 30:
		return SeveritySuccess
	case score <= 60:
		return SeverityWarning
	}
	return SeverityDanger
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
