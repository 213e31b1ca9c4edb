package healthmetrics

import "testing"

func categories(items []Insight) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Category)
	}
	return out
}

func TestInsightsHealthyOnlyHydration(t *testing.T) {
	got := Insights(healthyRecord())
	if len(got) != 1 {
		t.Fatalf("expected only hydration, got %v", categories(got))
	}
	if got[0].Category != "Hydration" || got[0].Priority != PriorityLow {
		t.Fatalf("unexpected insight %+v", got[0])
	}
	// 68 * 0.033 = 2.244
	if got[0].Message != "Drink at least 2.2L of water daily." {
		t.Fatalf("unexpected hydration message %q", got[0].Message)
	}
}

func TestInsightsOrderAndPriority(t *testing.T) {
	r := worstRecord()
	r.Weight = 70
	got := Insights(r)

	want := []struct {
		category string
		priority Priority
	}{
		{"Sleep", PriorityMedium},
		{"Weight", PriorityMedium},
		{"Exercise", PriorityHigh},
		{"Stress", PriorityHigh},
		{"Diet", PriorityHigh},
		{"Cholesterol", PriorityMedium},
		{"Blood Sugar", PriorityMedium},
		{"Hydration", PriorityLow},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d insights, got %v", len(want), categories(got))
	}
	for i, w := range want {
		if got[i].Category != w.category || got[i].Priority != w.priority {
			t.Fatalf("insight %d = %s/%s, want %s/%s", i, got[i].Category, got[i].Priority, w.category, w.priority)
		}
		if got[i].Icon == "" || got[i].Message == "" {
			t.Fatalf("insight %d missing icon or message", i)
		}
	}
	if got[0].Message != "Aim for 7-9 hours of sleep. You're getting 3h." {
		t.Fatalf("unexpected sleep message %q", got[0].Message)
	}
	if got[7].Message != "Drink at least 2.3L of water daily." {
		t.Fatalf("unexpected hydration message %q", got[7].Message)
	}
}

func TestInsightsFractionalSleep(t *testing.T) {
	r := healthyRecord()
	r.SleepHours = 6.5
	got := Insights(r)
	if got[0].Message != "Aim for 7-9 hours of sleep. You're getting 6.5h." {
		t.Fatalf("unexpected sleep message %q", got[0].Message)
	}
}
