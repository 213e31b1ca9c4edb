package healthmetrics

import (
	"fmt"
	"strconv"
)

// Insight is one lifestyle recommendation.
type Insight struct {
	Category string   `json:"category"`
	Icon     string   `json:"icon"`
	Message  string   `json:"message"`
	Priority Priority `json:"priority"`
}

type insightRule func(HealthRecord) (Insight, bool)

var insightRules = []insightRule{
	func(r HealthRecord) (Insight, bool) {
		msg := fmt.Sprintf("Aim for 7-9 hours of sleep. You're getting %sh.", formatNumber(r.SleepHours))
		return Insight{"Sleep", "🌙", msg, PriorityMedium}, r.SleepHours < 7
	},
	func(r HealthRecord) (Insight, bool) {
		return Insight{"Weight", "⚖️", "Consider a balanced diet to reach a healthy BMI range (18.5-24.9).", PriorityMedium}, r.BMI > 25
	},
	func(r HealthRecord) (Insight, bool) {
		return Insight{"Exercise", "🏃", "Aim for 150 minutes of moderate aerobic activity per week.", PriorityHigh}, !r.PhysicalActivity
	},
	func(r HealthRecord) (Insight, bool) {
		return Insight{"Stress", "🧘", "Practice relaxation techniques like meditation or deep breathing.", PriorityHigh}, isHigh(r.StressLevel)
	},
	func(r HealthRecord) (Insight, bool) {
		return Insight{"Diet", "🧂", "Reduce sodium intake to less than 2,300mg per day.", PriorityHigh}, isHigh(r.SaltIntake)
	},
	func(r HealthRecord) (Insight, bool) {
		return Insight{"Cholesterol", "🫀", "Include more fiber-rich foods and omega-3 fatty acids.", PriorityMedium}, r.Cholesterol > 200
	},
	func(r HealthRecord) (Insight, bool) {
		return Insight{"Blood Sugar", "🩸", "Monitor blood sugar levels and reduce refined carbohydrates.", PriorityMedium}, r.BloodSugar > 100
	},
	func(r HealthRecord) (Insight, bool) {
		msg := fmt.Sprintf("Drink at least %sL of water daily.", formatNumber(WaterRequirement(r.Weight)))
		return Insight{"Hydration", "💧", msg, PriorityLow}, true
	},
}

// Insights runs every rule in order and returns the ones that apply. The
// hydration entry is always last.
func Insights(r HealthRecord) []Insight {
	out := make([]Insight, 0, len(insightRules))
	for _, rule := range insightRules {
		if insight, ok := rule(r); ok {
			out = append(out, insight)
		}
	}
	return out
}

func isHigh(l Level) bool {
	switch l {
	case LevelHigh:
		return true
	case LevelLow, LevelMedium:
		return false
	}
	return false
}

// formatNumber prints v without trailing zeros: 6 -> "6", 2.3 -> "2.3".
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
