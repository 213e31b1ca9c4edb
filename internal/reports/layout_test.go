package reports

import (
	"strings"
	"testing"
	"time"

	"pulseguard-backend/internal/records"
)

func TestLayoutDefaults(t *testing.T) {
	generatedAt := time.Date(2026, time.March, 4, 15, 0, 0, 0, time.UTC)
	lines := Layout(records.Defaults(), generatedAt)

	if lines[0].Text != Title || lines[0].Size != 18 || !lines[0].Bold {
		t.Fatalf("unexpected title line %+v", lines[0])
	}
	if lines[1].Text != "Generated: 2026-03-04" || lines[1].Size != 9 || lines[1].SpaceAfter != 5 {
		t.Fatalf("unexpected generated line %+v", lines[1])
	}
	last := lines[len(lines)-1]
	if last.Text != Disclaimer || last.Size != 8 {
		t.Fatalf("unexpected disclaimer %+v", last)
	}
	if lines[len(lines)-2].Text != "" {
		t.Fatalf("expected blank line before disclaimer")
	}

	text := joinText(lines)
	for _, want := range []string{
		"Age: 30 | Gender: Male | Height: 170cm | Weight: 70kg",
		"BMI: 24 (Normal) | Heart Rate: 72 bpm",
		"BP: 120/80 mmHg - Stage 1 Hypertension",
		"Risk Score: 29/100 | Stability: 80% | Readiness: 80%",
		"Body Fat: 19.5% | Ideal Weight: 65.9kg",
		"Cholesterol: 190 mg/dL | Blood Sugar: 95 mg/dL",
		"Daily Water: 2.3L | Sodium Limit: 2300mg",
		"Genetic Risk: 0% | Metabolic Risk: 0%",
		"Sleep: 7h | Stress: Medium | Salt: Medium",
		"Physical Activity: Yes | Family History: No",
		"Blood Group (offspring): A, B, AB, O",
	} {
		if !strings.Contains(text, want+"\n") {
			t.Fatalf("layout missing %q:\n%s", want, text)
		}
	}
}

func TestLayoutSectionOrder(t *testing.T) {
	lines := Layout(records.Defaults(), time.Now())
	var sections []string
	for _, l := range lines {
		if l.Bold && l.Size == 12 {
			sections = append(sections, l.Text)
		}
	}
	want := []string{"PATIENT DATA", "BLOOD PRESSURE ANALYSIS", "HEALTH METRICS", "RECOMMENDATIONS"}
	if strings.Join(sections, ",") != strings.Join(want, ",") {
		t.Fatalf("sections = %v, want %v", sections, want)
	}
}

func TestLayoutRecommendationsFollowInsights(t *testing.T) {
	hr := records.Defaults()
	hr.SleepHours = 5
	lines := Layout(hr, time.Now())
	text := joinText(lines)
	if !strings.Contains(text, "Sleep: Aim for 7-9 hours of sleep. You're getting 5h.\n") {
		t.Fatalf("expected sleep recommendation:\n%s", text)
	}
}

func joinText(lines []Line) string {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l.Text)
		b.WriteString("\n")
	}
	return b.String()
}
