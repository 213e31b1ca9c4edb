package reports

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"pulseguard-backend/internal/healthmetrics"
)

const (
	Title      = "PulseGuard AI - Health Report"
	Disclaimer = "This report is for informational purposes only. Consult a healthcare professional."

	bodySize    = 10
	sectionSize = 12
)

// Line is one line of report text. SpaceAfter adds vertical gap (mm)
// after the line's normal advance.
type Line struct {
	Text       string
	Size       float64
	Bold       bool
	SpaceAfter float64
}

// Layout builds the report text for hr.
func Layout(hr healthmetrics.HealthRecord, generatedAt time.Time) []Line {
	bp := healthmetrics.Classify(hr.Systolic, hr.Diastolic)
	bmi := healthmetrics.InterpretBMI(hr.BMI)
	p1, p2 := hr.ParentGroups()

	groups := healthmetrics.OffspringBloodGroups(p1, p2)
	groupNames := make([]string, len(groups))
	for i, g := range groups {
		groupNames[i] = string(g)
	}

	lines := []Line{
		{Text: Title, Size: 18, Bold: true},
		{Text: "Generated: " + generatedAt.Format("2006-01-02"), Size: 9, SpaceAfter: 5},

		section("PATIENT DATA"),
		body("Age: %d | Gender: %s | Height: %scm | Weight: %skg", hr.Age, hr.Gender, num(hr.Height), num(hr.Weight)),
		body("BMI: %s (%s) | Heart Rate: %d bpm", num(hr.BMI), bmi.Category, hr.HeartRate),
		gap(),

		section("BLOOD PRESSURE ANALYSIS"),
		body("BP: %d/%d mmHg - %s", hr.Systolic, hr.Diastolic, bp.Stage),
		body("Risk Score: %d/100 | Stability: %d%% | Readiness: %d%%",
			healthmetrics.RiskScore(hr), healthmetrics.Stability(hr), healthmetrics.Readiness(hr)),
		body("Patterns: %s", strings.Join(healthmetrics.DetectPatterns(hr.Systolic, hr.Diastolic), ", ")),
		gap(),

		section("HEALTH METRICS"),
		body("Body Fat: %s%% | Ideal Weight: %skg",
			num(healthmetrics.BodyFat(hr.Weight, hr.Age, hr.Gender, hr.BMI)), num(healthmetrics.IdealWeight(hr.Height, hr.Gender))),
		body("Cholesterol: %s mg/dL | Blood Sugar: %s mg/dL", num(hr.Cholesterol), num(hr.BloodSugar)),
		body("Daily Water: %sL | Sodium Limit: %dmg", num(healthmetrics.WaterRequirement(hr.Weight)), healthmetrics.SodiumLimit(hr.Systolic)),
		body("Genetic Risk: %d%% | Metabolic Risk: %d%%",
			healthmetrics.GeneticRisk(hr.FamilyHistory, hr.Age, hr.BMI), healthmetrics.MetabolicRisk(hr.BMI, hr.Cholesterol, hr.BloodSugar)),
		body("Sleep: %sh | Stress: %s | Salt: %s", num(hr.SleepHours), hr.StressLevel, hr.SaltIntake),
		body("Physical Activity: %s | Family History: %s", yesNo(hr.PhysicalActivity), yesNo(hr.FamilyHistory)),
		body("Blood Group (offspring): %s", strings.Join(groupNames, ", ")),
		gap(),

		section("RECOMMENDATIONS"),
	}
	for _, in := range healthmetrics.Insights(hr) {
		lines = append(lines, body("%s: %s", in.Category, in.Message))
	}
	return append(lines,
		Line{Text: "", Size: bodySize},
		Line{Text: Disclaimer, Size: 8},
	)
}

func section(title string) Line {
	return Line{Text: title, Size: sectionSize, Bold: true}
}

func body(format string, args ...any) Line {
	return Line{Text: fmt.Sprintf(format, args...), Size: bodySize}
}

// gap marks the end of a section. It renders nothing.
func gap() Line {
	return Line{SpaceAfter: 3}
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
