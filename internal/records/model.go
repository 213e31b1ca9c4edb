package records

import (
	"time"

	"pulseguard-backend/internal/healthmetrics"
)

// Record is one stored assessment. The health fields are inlined in JSON.
type Record struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	RecordedAt time.Time `json:"recordedAt"`
	healthmetrics.HealthRecord
}

// Defaults returns the values the assessment form starts with.
func Defaults() healthmetrics.HealthRecord {
	return healthmetrics.HealthRecord{
		Systolic:    120,
		Diastolic:   80,
		HeartRate:   72,
		BMI:         24,
		Cholesterol: 190,
		BloodSugar:  95,

		SleepHours:       7,
		StressLevel:      healthmetrics.LevelMedium,
		SaltIntake:       healthmetrics.LevelMedium,
		PhysicalActivity: true,
		FamilyHistory:    false,

		Height: 170,
		Weight: 70,
		Age:    30,
		Gender: healthmetrics.GenderMale,

		ParentBloodGroup1: healthmetrics.BloodGroupA,
		ParentBloodGroup2: healthmetrics.BloodGroupB,
	}
}
