package healthmetrics

import (
	"errors"
	"fmt"
	"strings"
)

// Severity is the display tone attached to a classification or score.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
	SeverityMuted   Severity = "muted"
)

// Stage is a blood-pressure category.
type Stage string

const (
	StageNormal   Stage = "Normal"
	StageElevated Stage = "Elevated"
	StageOne      Stage = "Stage 1 Hypertension"
	StageTwo      Stage = "Stage 2 Hypertension"
	StageCrisis   Stage = "Hypertensive Crisis"
	StageUnknown  Stage = "Unknown"
)

// Level is a three-way self-reported intensity used for stress and salt intake.
type Level string

const (
	LevelLow    Level = "Low"
	LevelMedium Level = "Medium"
	LevelHigh   Level = "High"
)

// Gender selects the sex-specific constants of the anthropometric formulas.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// BloodGroup is an ABO phenotype.
type BloodGroup string

const (
	BloodGroupA  BloodGroup = "A"
	BloodGroupB  BloodGroup = "B"
	BloodGroupAB BloodGroup = "AB"
	BloodGroupO  BloodGroup = "O"
)

// Priority ranks an insight for display.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// HealthRecord is one self-assessment. Values are taken as given; nothing in
// this package rejects or normalizes them.
type HealthRecord struct {
	Systolic    int     `json:"systolic" yaml:"systolic"`
	Diastolic   int     `json:"diastolic" yaml:"diastolic"`
	HeartRate   int     `json:"heartRate" yaml:"heartRate"`
	BMI         float64 `json:"bmi" yaml:"bmi"`
	Cholesterol float64 `json:"cholesterol" yaml:"cholesterol"`
	BloodSugar  float64 `json:"bloodSugar" yaml:"bloodSugar"`

	SleepHours       float64 `json:"sleepHours" yaml:"sleepHours"`
	StressLevel      Level   `json:"stressLevel" yaml:"stressLevel"`
	SaltIntake       Level   `json:"saltIntake" yaml:"saltIntake"`
	PhysicalActivity bool    `json:"physicalActivity" yaml:"physicalActivity"`
	FamilyHistory    bool    `json:"familyHistory" yaml:"familyHistory"`

	Height float64 `json:"height" yaml:"height"`
	Weight float64 `json:"weight" yaml:"weight"`
	Age    int     `json:"age" yaml:"age"`
	Gender Gender  `json:"gender" yaml:"gender"`

	ParentBloodGroup1 BloodGroup `json:"parentBloodGroup1,omitempty" yaml:"parentBloodGroup1,omitempty"`
	ParentBloodGroup2 BloodGroup `json:"parentBloodGroup2,omitempty" yaml:"parentBloodGroup2,omitempty"`
}

// ParentGroups returns the parent blood groups, substituting A and B for
// missing values.
func (r HealthRecord) ParentGroups() (BloodGroup, BloodGroup) {
	p1, p2 := r.ParentBloodGroup1, r.ParentBloodGroup2
	if p1 == "" {
		p1 = BloodGroupA
	}
	if p2 == "" {
		p2 = BloodGroupB
	}
	return p1, p2
}

// WeatherReading is an ambient reading from a weather provider.
type WeatherReading struct {
	Temperature     float64 `json:"temperature"`
	HumidityPercent float64 `json:"humidity"`
}

// ErrUnknownLiteral is returned by the Parse helpers for values outside a closed set.
var ErrUnknownLiteral = errors.New("unknown literal")

// Valid reports whether l is one of the declared levels.
func (l Level) Valid() bool {
	switch l {
	case LevelLow, LevelMedium, LevelHigh:
		return true
	}
	return false
}

// Valid reports whether g is one of the declared genders.
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale:
		return true
	}
	return false
}

// Valid reports whether g is one of the four ABO phenotypes.
func (g BloodGroup) Valid() bool {
	switch g {
	case BloodGroupA, BloodGroupB, BloodGroupAB, BloodGroupO:
		return true
	}
	return false
}

// ParseLevel matches raw case-insensitively against Low, Medium and High.
func ParseLevel(raw string) (Level, error) {
	for _, l := range []Level{LevelLow, LevelMedium, LevelHigh} {
		if strings.EqualFold(strings.TrimSpace(raw), string(l)) {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: level %q", ErrUnknownLiteral, raw)
}

// ParseGender matches raw case-insensitively against Male and Female.
func ParseGender(raw string) (Gender, error) {
	for _, g := range []Gender{GenderMale, GenderFemale} {
		if strings.EqualFold(strings.TrimSpace(raw), string(g)) {
			return g, nil
		}
	}
	return "", fmt.Errorf("%w: gender %q", ErrUnknownLiteral, raw)
}

// ParseBloodGroup matches raw case-insensitively against A, B, AB and O.
func ParseBloodGroup(raw string) (BloodGroup, error) {
	for _, g := range []BloodGroup{BloodGroupA, BloodGroupB, BloodGroupAB, BloodGroupO} {
		if strings.EqualFold(strings.TrimSpace(raw), string(g)) {
			return g, nil
		}
	}
	return "", fmt.Errorf("%w: blood group %q", ErrUnknownLiteral, raw)
}
