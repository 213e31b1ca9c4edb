package reports

import (
	"errors"
	"time"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusReady   Status = "ready"
	StatusFailed  Status = "failed"
)

var (
	ErrNotFound = errors.New("report not found")
	ErrNotReady = errors.New("report not ready")
	ErrFailed   = errors.New("report generation failed")
)

// Report tracks one generated (or queued) PDF.
type Report struct {
	ID          string     `json:"id"`
	UserID      string     `json:"-"`
	StorageKey  string     `json:"-"`
	Status      Status     `json:"status"`
	Error       string     `json:"error,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}
