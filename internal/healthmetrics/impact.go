package healthmetrics

import "fmt"

// SleepImpactPoint is the projected systolic pressure for one nightly sleep duration.
type SleepImpactPoint struct {
	Sleep    string `json:"sleep"`
	Systolic int    `json:"systolic"`
}

// StressImpactPoint is the expected pressure at one stress level.
type StressImpactPoint struct {
	Level     Level `json:"level"`
	Systolic  int   `json:"systolic"`
	Diastolic int   `json:"diastolic"`
}

// SleepImpact projects systolic pressure for 4 to 10 hours of sleep. Each
// hour below 7 adds 3 mmHg, plus up to 4 mmHg of noise.
func SleepImpact(systolic int, rng RandomSource) []SleepImpactPoint {
	if rng == nil {
		rng = DefaultRandom
	}
	points := make([]SleepImpactPoint, 0, 7)
	for h := 4; h <= 10; h++ {
		points = append(points, SleepImpactPoint{
			Sleep:    fmt.Sprintf("%dh", h),
			Systolic: roundInt(float64(systolic) + float64((7-h)*3) + uniform(rng, 0, 4)),
		})
	}
	return points
}

// StressImpact shifts the given pressure for each stress level, Low to High.
func StressImpact(systolic, diastolic int) []StressImpactPoint {
	return []StressImpactPoint{
		{Level: LevelLow, Systolic: systolic - 8, Diastolic: diastolic - 5},
		{Level: LevelMedium, Systolic: systolic, Diastolic: diastolic},
		{Level: LevelHigh, Systolic: systolic + 12, Diastolic: diastolic + 8},
	}
}
