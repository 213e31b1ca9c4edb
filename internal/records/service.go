package records

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"pulseguard-backend/internal/healthmetrics"
	"pulseguard-backend/internal/shared/metrics"
	"pulseguard-backend/internal/shared/telemetry"
)

const DefaultHistoryLimit = 30

type Service struct {
	Repo         Repo
	HistoryLimit int
	Now          func() time.Time
}

func NewService(repo Repo, historyLimit int) *Service {
	return &Service{Repo: repo, HistoryLimit: historyLimit}
}

var errNotConfigured = errors.New("records service not configured")

// Submit validates hr and stores it as the user's current record and as a
// new history entry.
func (s *Service) Submit(ctx context.Context, userID string, hr healthmetrics.HealthRecord) (Record, error) {
	if s == nil || s.Repo == nil {
		return Record{}, errNotConfigured
	}
	if strings.TrimSpace(userID) == "" {
		return Record{}, errors.New("user id is required")
	}
	hr = Normalize(hr)
	if err := Validate(hr); err != nil {
		return Record{}, err
	}

	rec := Record{
		ID:           uuid.NewString(),
		UserID:       userID,
		RecordedAt:   s.now(),
		HealthRecord: hr,
	}
	if err := s.Repo.SetCurrent(ctx, rec); err != nil {
		return Record{}, fmt.Errorf("set current record: %w", err)
	}
	if err := s.Repo.AppendHistory(ctx, rec, s.historyLimit()); err != nil {
		return Record{}, fmt.Errorf("append history: %w", err)
	}

	metrics.IncAssessmentsSubmitted()
	telemetry.Info("assessment.submitted", map[string]any{
		"user_id":   userID,
		"record_id": rec.ID,
		"stage":     healthmetrics.Classify(hr.Systolic, hr.Diastolic).Stage,
	})
	return rec, nil
}

func (s *Service) Current(ctx context.Context, userID string) (Record, error) {
	if s == nil || s.Repo == nil {
		return Record{}, errNotConfigured
	}
	return s.Repo.Current(ctx, userID)
}

// History returns the user's assessments oldest first.
func (s *Service) History(ctx context.Context, userID string) ([]Record, error) {
	if s == nil || s.Repo == nil {
		return nil, errNotConfigured
	}
	return s.Repo.History(ctx, userID)
}

func (s *Service) historyLimit() int {
	if s.HistoryLimit > 0 {
		return s.HistoryLimit
	}
	return DefaultHistoryLimit
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}
