package records

import (
	"pulseguard-backend/internal/healthmetrics"
)

const (
	minSystolic  = 60
	minDiastolic = 40
)

// Normalize canonicalizes enum literals written in any case. Unknown
// literals are left untouched for Validate to reject.
func Normalize(r healthmetrics.HealthRecord) healthmetrics.HealthRecord {
	if l, err := healthmetrics.ParseLevel(string(r.StressLevel)); err == nil {
		r.StressLevel = l
	}
	if l, err := healthmetrics.ParseLevel(string(r.SaltIntake)); err == nil {
		r.SaltIntake = l
	}
	if g, err := healthmetrics.ParseGender(string(r.Gender)); err == nil {
		r.Gender = g
	}
	if g, err := healthmetrics.ParseBloodGroup(string(r.ParentBloodGroup1)); err == nil {
		r.ParentBloodGroup1 = g
	}
	if g, err := healthmetrics.ParseBloodGroup(string(r.ParentBloodGroup2)); err == nil {
		r.ParentBloodGroup2 = g
	}
	return r
}

// Validate rejects records the engine cannot meaningfully score. It returns
// nil or a *ValidationError.
func Validate(r healthmetrics.HealthRecord) error {
	var fields []FieldError
	add := func(field, reason string) {
		fields = append(fields, FieldError{Field: field, Reason: reason})
	}

	if r.Systolic < minSystolic {
		add("systolic", "must be at least 60")
	}
	if r.Diastolic < minDiastolic {
		add("diastolic", "must be at least 40")
	}
	if !r.StressLevel.Valid() {
		add("stressLevel", "must be Low, Medium or High")
	}
	if !r.SaltIntake.Valid() {
		add("saltIntake", "must be Low, Medium or High")
	}
	if !r.Gender.Valid() {
		add("gender", "must be Male or Female")
	}
	if r.ParentBloodGroup1 != "" && !r.ParentBloodGroup1.Valid() {
		add("parentBloodGroup1", "must be A, B, AB or O")
	}
	if r.ParentBloodGroup2 != "" && !r.ParentBloodGroup2.Valid() {
		add("parentBloodGroup2", "must be A, B, AB or O")
	}
	if r.Height <= 0 {
		add("height", "must be positive")
	}
	if r.Weight <= 0 {
		add("weight", "must be positive")
	}
	if r.Age <= 0 {
		add("age", "must be positive")
	}

	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}
