package dashboard

import (
	"context"
	"fmt"

	"pulseguard-backend/internal/healthmetrics"
	"pulseguard-backend/internal/records"
)

// RecordSource is the read side of the records store.
type RecordSource interface {
	Current(ctx context.Context, userID string) (records.Record, error)
	History(ctx context.Context, userID string) ([]records.Record, error)
}

type Service struct {
	Records RecordSource
	// Rand drives the trend and sleep projections; nil uses the engine default.
	Rand healthmetrics.RandomSource
}

func NewService(src RecordSource, rng healthmetrics.RandomSource) *Service {
	return &Service{Records: src, Rand: rng}
}

// Analysis evaluates the current record. It returns records.ErrNotFound
// when the user has not submitted one.
func (s *Service) Analysis(ctx context.Context, userID string) (Analysis, error) {
	rec, err := s.Records.Current(ctx, userID)
	if err != nil {
		return Analysis{}, err
	}
	return Analyze(rec, s.Rand), nil
}

// Analyze composes every engine output for rec.
func Analyze(rec records.Record, rng healthmetrics.RandomSource) Analysis {
	hr := rec.HealthRecord
	bp := healthmetrics.Classify(hr.Systolic, hr.Diastolic)
	risk := healthmetrics.RiskScore(hr)
	return Analysis{
		RecordID:      rec.ID,
		RecordedAt:    rec.RecordedAt,
		BloodPressure: bp,
		Emergency:     healthmetrics.IsEmergency(bp.Stage),
		RiskScore:     risk,
		RiskColor:     healthmetrics.RiskColor(risk),
		Stability:     healthmetrics.Stability(hr),
		Readiness:     healthmetrics.Readiness(hr),
		GeneticRisk:   healthmetrics.GeneticRisk(hr.FamilyHistory, hr.Age, hr.BMI),
		MetabolicRisk: healthmetrics.MetabolicRisk(hr.BMI, hr.Cholesterol, hr.BloodSugar),
		SodiumLimit:   healthmetrics.SodiumLimit(hr.Systolic),
		Patterns:      healthmetrics.DetectPatterns(hr.Systolic, hr.Diastolic),
		Insights:      healthmetrics.Insights(hr),
		Trend:         healthmetrics.ProjectTrend(hr.Systolic, hr.Diastolic, rng),
		SleepImpact:   healthmetrics.SleepImpact(hr.Systolic, rng),
		StressImpact:  healthmetrics.StressImpact(hr.Systolic, hr.Diastolic),
	}
}

// Progress plots the user's history. A comparison is included once there
// are at least two entries.
func (s *Service) Progress(ctx context.Context, userID string) (Progress, error) {
	history, err := s.Records.History(ctx, userID)
	if err != nil {
		return Progress{}, err
	}
	return BuildProgress(history), nil
}

func BuildProgress(history []records.Record) Progress {
	out := Progress{Points: make([]ProgressPoint, 0, len(history))}
	for i, rec := range history {
		out.Points = append(out.Points, ProgressPoint{
			Entry:     fmt.Sprintf("#%d", i+1),
			Date:      rec.RecordedAt,
			Systolic:  rec.Systolic,
			Diastolic: rec.Diastolic,
			Risk:      healthmetrics.RiskScore(rec.HealthRecord),
			Stability: healthmetrics.Stability(rec.HealthRecord),
			Weight:    rec.Weight,
		})
	}
	if len(history) < 2 {
		return out
	}

	latest := out.Points[len(out.Points)-1]
	previous := out.Points[len(out.Points)-2]
	bp := healthmetrics.Classify(latest.Systolic, latest.Diastolic)
	bpDelta := latest.Systolic - previous.Systolic
	riskDelta := latest.Risk - previous.Risk
	out.Comparison = &Comparison{
		BPChange:    Change{Value: bpDelta, Good: bpDelta <= 0},
		RiskChange:  Change{Value: riskDelta, Good: riskDelta <= 0},
		LatestStage: bp.Stage,
		LatestGood:  bp.Severity == healthmetrics.SeveritySuccess,
	}
	return out
}

// Calculators runs the body and risk calculators on the current record.
func (s *Service) Calculators(ctx context.Context, userID string) (Calculators, error) {
	rec, err := s.Records.Current(ctx, userID)
	if err != nil {
		return Calculators{}, err
	}
	return Calculate(rec.HealthRecord), nil
}

func Calculate(hr healthmetrics.HealthRecord) Calculators {
	p1, p2 := hr.ParentGroups()
	return Calculators{
		IdealWeight:   healthmetrics.IdealWeight(hr.Height, hr.Gender),
		BMI:           healthmetrics.InterpretBMI(hr.BMI),
		BodyFat:       healthmetrics.BodyFat(hr.Weight, hr.Age, hr.Gender, hr.BMI),
		Water:         healthmetrics.WaterRequirement(hr.Weight),
		SodiumLimit:   healthmetrics.SodiumLimit(hr.Systolic),
		GeneticRisk:   healthmetrics.GeneticRisk(hr.FamilyHistory, hr.Age, hr.BMI),
		MetabolicRisk: healthmetrics.MetabolicRisk(hr.BMI, hr.Cholesterol, hr.BloodSugar),
		Readiness:     healthmetrics.Readiness(hr),
		BloodGroup: BloodGroupResult{
			Parent1:   p1,
			Parent2:   p2,
			Offspring: healthmetrics.OffspringBloodGroups(p1, p2),
		},
	}
}
