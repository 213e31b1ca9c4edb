package healthmetrics

import "testing"

func TestSleepImpact(t *testing.T) {
	points := SleepImpact(130, &sequenceRand{values: []float64{0}})
	want := []struct {
		label    string
		systolic int
	}{
		{"4h", 139}, {"5h", 136}, {"6h", 133}, {"7h", 130}, {"8h", 127}, {"9h", 124}, {"10h", 121},
	}
	if len(points) != len(want) {
		t.Fatalf("expected %d points, got %d", len(want), len(points))
	}
	for i, w := range want {
		if points[i].Sleep != w.label || points[i].Systolic != w.systolic {
			t.Fatalf("point %d = %+v, want %s/%d", i, points[i], w.label, w.systolic)
		}
	}

	// 130 + 0 + 0.5*4 = 132 at 7h
	mid := SleepImpact(130, &sequenceRand{values: []float64{0.5}})
	if mid[3].Systolic != 132 {
		t.Fatalf("expected 132 with mid noise, got %d", mid[3].Systolic)
	}
}

func TestStressImpact(t *testing.T) {
	got := StressImpact(130, 85)
	want := []StressImpactPoint{
		{Level: LevelLow, Systolic: 122, Diastolic: 80},
		{Level: LevelMedium, Systolic: 130, Diastolic: 85},
		{Level: LevelHigh, Systolic: 142, Diastolic: 93},
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("point %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}
