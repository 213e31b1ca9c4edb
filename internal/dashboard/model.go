package dashboard

import (
	"time"

	"pulseguard-backend/internal/healthmetrics"
)

// Analysis is the full engine evaluation of a user's current record.
type Analysis struct {
	RecordID   string    `json:"recordId"`
	RecordedAt time.Time `json:"recordedAt"`

	BloodPressure healthmetrics.Classification `json:"bloodPressure"`
	Emergency     bool                         `json:"emergency"`
	RiskScore     int                          `json:"riskScore"`
	RiskColor     healthmetrics.Severity       `json:"riskColor"`
	Stability     int                          `json:"stability"`
	Readiness     int                          `json:"readiness"`
	GeneticRisk   int                          `json:"geneticRisk"`
	MetabolicRisk int                          `json:"metabolicRisk"`
	SodiumLimit   int                          `json:"sodiumLimitMg"`

	Patterns     []string                          `json:"patterns"`
	Insights     []healthmetrics.Insight           `json:"insights"`
	Trend        []healthmetrics.TrendPoint        `json:"trend"`
	SleepImpact  []healthmetrics.SleepImpactPoint  `json:"sleepImpact"`
	StressImpact []healthmetrics.StressImpactPoint `json:"stressImpact"`
}

// ProgressPoint is one history entry plotted over time.
type ProgressPoint struct {
	Entry     string    `json:"entry"`
	Date      time.Time `json:"date"`
	Systolic  int       `json:"systolic"`
	Diastolic int       `json:"diastolic"`
	Risk      int       `json:"risk"`
	Stability int       `json:"stability"`
	Weight    float64   `json:"weight"`
}

// Change is a signed delta; Good is set when the value did not rise.
type Change struct {
	Value int  `json:"value"`
	Good  bool `json:"good"`
}

// Comparison contrasts the latest entry with the one before it.
type Comparison struct {
	BPChange    Change              `json:"bpChange"`
	RiskChange  Change              `json:"riskChange"`
	LatestStage healthmetrics.Stage `json:"latestStage"`
	LatestGood  bool                `json:"latestGood"`
}

type Progress struct {
	Points     []ProgressPoint `json:"points"`
	Comparison *Comparison     `json:"comparison,omitempty"`
}

// BloodGroupResult lists possible offspring groups for two parents.
type BloodGroupResult struct {
	Parent1   healthmetrics.BloodGroup   `json:"parent1"`
	Parent2   healthmetrics.BloodGroup   `json:"parent2"`
	Offspring []healthmetrics.BloodGroup `json:"offspring"`
}

// Calculators bundles the body and risk calculators for the current record.
type Calculators struct {
	IdealWeight   float64                   `json:"idealWeightKg"`
	BMI           healthmetrics.BMICategory `json:"bmi"`
	BodyFat       float64                   `json:"bodyFatPercent"`
	Water         float64                   `json:"waterLiters"`
	SodiumLimit   int                       `json:"sodiumLimitMg"`
	GeneticRisk   int                       `json:"geneticRisk"`
	MetabolicRisk int                       `json:"metabolicRisk"`
	Readiness     int                       `json:"readiness"`
	BloodGroup    BloodGroupResult          `json:"bloodGroup"`
}
