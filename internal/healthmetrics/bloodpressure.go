package healthmetrics

import (
	"fmt"
	"math"
	"math/rand"
)

// Classification is the outcome of Classify.
type Classification struct {
	Stage       Stage    `json:"stage"`
	Severity    Severity `json:"severity"`
	Description string   `json:"description"`
}

// Classify maps a reading onto the blood-pressure ladder. The first matching
// rung wins. The crisis rung sits below stage 2 and is never reached for
// finite input.
func Classify(systolic, diastolic int) Classification {
	switch {
	case systolic < 120 && diastolic < 80:
		return Classification{StageNormal, SeveritySuccess, "Your blood pressure is within the healthy range."}
	case systolic < 130 && diastolic < 80:
		return Classification{StageElevated, SeverityWarning, "Elevated BP. Lifestyle changes recommended."}
	case systolic < 140 || diastolic < 90:
		return Classification{StageOne, SeverityWarning, "Stage 1 hypertension. Consult a healthcare provider."}
	case systolic >= 140 || diastolic >= 90:
		return Classification{StageTwo, SeverityDanger, "Stage 2 hypertension. Seek medical attention."}
	case systolic > 180 || diastolic > 120:
		return Classification{StageCrisis, SeverityDanger, "EMERGENCY: Seek immediate medical attention!"}
	}
	return Classification{Stage: StageUnknown, Severity: SeverityMuted}
}

// IsEmergency reports whether the stage calls for an urgent banner.
func IsEmergency(stage Stage) bool {
	switch stage {
	case StageTwo, StageCrisis:
		return true
	case StageNormal, StageElevated, StageOne, StageUnknown:
		return false
	}
	return false
}

// NoPatterns is the sole entry returned when no pattern matches.
const NoPatterns = "No concerning patterns detected"

// DetectPatterns returns every matching pattern label in a fixed order, or
// the single NoPatterns sentinel.
func DetectPatterns(systolic, diastolic int) []string {
	patterns := make([]string, 0, 4)
	if systolic > 135 && diastolic < 85 {
		patterns = append(patterns, "Isolated Systolic Hypertension")
	}
	if systolic > 140 {
		patterns = append(patterns, "Morning Surge Risk")
	}
	if diastolic > 90 {
		patterns = append(patterns, "Nocturnal Hypertension Risk")
	}
	if systolic-diastolic > 60 {
		patterns = append(patterns, "Wide Pulse Pressure")
	}
	if len(patterns) == 0 {
		patterns = append(patterns, NoPatterns)
	}
	return patterns
}

// SodiumLimit returns the recommended daily sodium ceiling in mg.
func SodiumLimit(systolic int) int {
	switch {
	case systolic >= 140:
		return 1500
	case systolic >= 130:
		return 1800
	}
	return 2300
}

// RandomSource yields uniform values in [0, 1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

// DefaultRandom draws from the auto-seeded math/rand global generator.
var DefaultRandom RandomSource = globalRand{}

// TrendPoint is one projected day.
type TrendPoint struct {
	Day       string `json:"day"`
	Systolic  int    `json:"systolic"`
	Diastolic int    `json:"diastolic"`
}

const trendDays = 7

// ProjectTrend produces an illustrative seven-day series: the current reading
// with uniform noise (±5 systolic, ±3 diastolic) and a downward drift of 0.5
// and 0.3 mmHg per day. A nil rng uses DefaultRandom.
func ProjectTrend(systolic, diastolic int, rng RandomSource) []TrendPoint {
	if rng == nil {
		rng = DefaultRandom
	}
	points := make([]TrendPoint, 0, trendDays)
	for i := 0; i < trendDays; i++ {
		sysNoise := uniform(rng, -5, 5)
		diaNoise := uniform(rng, -3, 3)
		points = append(points, TrendPoint{
			Day:       fmt.Sprintf("Day %d", i+1),
			Systolic:  roundInt(float64(systolic) + sysNoise - float64(i)*0.5),
			Diastolic: roundInt(float64(diastolic) + diaNoise - float64(i)*0.3),
		})
	}
	return points
}

func uniform(rng RandomSource, lo, hi float64) float64 {
	return lo + (hi-lo)*rng.Float64()
}

// roundInt rounds half up, so -2.5 becomes -2 and 2.5 becomes 3.
func roundInt(v float64) int {
	return int(math.Floor(v + 0.5))
}

func round1(v float64) float64 {
	return math.Floor(v*10+0.5) / 10
}
