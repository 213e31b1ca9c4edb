package healthmetrics

import (
	"fmt"
	"reflect"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		systolic  int
		diastolic int
		stage     Stage
		severity  Severity
	}{
		{name: "normal", systolic: 110, diastolic: 70, stage: StageNormal, severity: SeveritySuccess},
		{name: "elevated", systolic: 125, diastolic: 78, stage: StageElevated, severity: SeverityWarning},
		{name: "stage one", systolic: 135, diastolic: 88, stage: StageOne, severity: SeverityWarning},
		{name: "stage one via diastolic", systolic: 150, diastolic: 85, stage: StageOne, severity: SeverityWarning},
		{name: "stage two", systolic: 145, diastolic: 95, stage: StageTwo, severity: SeverityDanger},
		{name: "crisis reading stays stage two", systolic: 190, diastolic: 130, stage: StageTwo, severity: SeverityDanger},
		{name: "boundary 120/80", systolic: 120, diastolic: 80, stage: StageOne, severity: SeverityWarning},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.systolic, tt.diastolic)
			if got.Stage != tt.stage {
				t.Fatalf("Classify(%d, %d) stage = %q, want %q", tt.systolic, tt.diastolic, got.Stage, tt.stage)
			}
			if got.Severity != tt.severity {
				t.Fatalf("Classify(%d, %d) severity = %q, want %q", tt.systolic, tt.diastolic, got.Severity, tt.severity)
			}
			if got.Description == "" {
				t.Fatalf("expected description for %q", got.Stage)
			}
		})
	}
}

func TestIsEmergency(t *testing.T) {
	if !IsEmergency(StageTwo) || !IsEmergency(StageCrisis) {
		t.Fatalf("expected stage two and crisis to be emergencies")
	}
	for _, s := range []Stage{StageNormal, StageElevated, StageOne, StageUnknown} {
		if IsEmergency(s) {
			t.Fatalf("did not expect %q to be an emergency", s)
		}
	}
}

func TestDetectPatterns(t *testing.T) {
	tests := []struct {
		name      string
		systolic  int
		diastolic int
		want      []string
	}{
		{name: "none", systolic: 110, diastolic: 70, want: []string{NoPatterns}},
		{name: "isolated systolic", systolic: 136, diastolic: 82, want: []string{"Isolated Systolic Hypertension"}},
		{
			name:      "surge and wide pulse",
			systolic:  160,
			diastolic: 84,
			want:      []string{"Isolated Systolic Hypertension", "Morning Surge Risk", "Wide Pulse Pressure"},
		},
		{
			name:      "nocturnal",
			systolic:  130,
			diastolic: 95,
			want:      []string{"Nocturnal Hypertension Risk"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := DetectPatterns(tt.systolic, tt.diastolic)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("DetectPatterns(%d, %d) = %v, want %v", tt.systolic, tt.diastolic, got, tt.want)
			}
		})
	}
}

func TestSodiumLimit(t *testing.T) {
	cases := map[int]int{150: 1500, 140: 1500, 135: 1800, 130: 1800, 129: 2300, 100: 2300}
	for systolic, want := range cases {
		if got := SodiumLimit(systolic); got != want {
			t.Fatalf("SodiumLimit(%d) = %d, want %d", systolic, got, want)
		}
	}
}

type sequenceRand struct {
	values []float64
	next   int
}

func (s *sequenceRand) Float64() float64 {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

func TestProjectTrendDrift(t *testing.T) {
	rng := &sequenceRand{values: []float64{0.5}}
	points := ProjectTrend(130, 85, rng)

	if len(points) != 7 {
		t.Fatalf("expected 7 points, got %d", len(points))
	}
	wantSystolic := []int{130, 130, 129, 129, 128, 128, 127}
	for i, p := range points {
		if p.Day != fmt.Sprintf("Day %d", i+1) {
			t.Fatalf("point %d day = %q", i, p.Day)
		}
		if p.Systolic != wantSystolic[i] {
			t.Fatalf("point %d systolic = %d, want %d", i, p.Systolic, wantSystolic[i])
		}
	}
	if points[0].Diastolic != 85 {
		t.Fatalf("expected first diastolic 85, got %d", points[0].Diastolic)
	}
	if points[6].Diastolic != 83 {
		t.Fatalf("expected last diastolic 83, got %d", points[6].Diastolic)
	}
}

func TestProjectTrendNoiseBounds(t *testing.T) {
	rng := &sequenceRand{values: []float64{0, 0.999999}}
	points := ProjectTrend(140, 90, rng)
	for i, p := range points {
		if p.Systolic < 140-5-i || p.Systolic > 140+5 {
			t.Fatalf("systolic %d out of bounds on day %d", p.Systolic, i+1)
		}
		if p.Diastolic < 90-3-i || p.Diastolic > 90+3 {
			t.Fatalf("diastolic %d out of bounds on day %d", p.Diastolic, i+1)
		}
	}
}

func TestProjectTrendDefaultSourceVaries(t *testing.T) {
	first := ProjectTrend(130, 85, nil)
	for i := 0; i < 10; i++ {
		if !reflect.DeepEqual(first, ProjectTrend(130, 85, nil)) {
			return
		}
	}
	t.Fatalf("expected successive projections to differ")
}
