package reports

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"pulseguard-backend/internal/queue"
	"pulseguard-backend/internal/records"
	"pulseguard-backend/internal/shared/metrics"
	"pulseguard-backend/internal/shared/storage/object"
	"pulseguard-backend/internal/shared/telemetry"
	"pulseguard-backend/internal/shared/util"
)

const (
	ContentType = "application/pdf"
	FileName    = "PulseGuard_Health_Report.pdf"
)

// RecordSource yields the record a report is built from.
type RecordSource interface {
	Current(ctx context.Context, userID string) (records.Record, error)
}

type Service struct {
	Records RecordSource
	Repo    Repo
	Store   object.ObjectStore
	// Queue is optional. When nil, Request renders inline.
	Queue queue.Client
	Now   func() time.Time
}

func NewService(src RecordSource, repo Repo, store object.ObjectStore, q queue.Client) *Service {
	return &Service{Records: src, Repo: repo, Store: store, Queue: q}
}

// StorageKey returns the object key for a user's report.
func StorageKey(userID, reportID string) string {
	return fmt.Sprintf("reports/%s/%s.pdf", util.HashUserKey(userID), reportID)
}

// Generate renders and stores a report for the user's current record.
func (s *Service) Generate(ctx context.Context, userID string) (Report, error) {
	if _, err := s.Records.Current(ctx, userID); err != nil {
		return Report{}, err
	}
	rep, err := s.create(ctx, userID)
	if err != nil {
		return Report{}, err
	}
	if err := s.render(ctx, rep, false); err != nil {
		return Report{}, err
	}
	return s.Repo.Get(ctx, userID, rep.ID)
}

// Request enqueues a report job when a queue is configured and otherwise
// renders inline. The bool reports whether the job was queued.
func (s *Service) Request(ctx context.Context, userID, requestID string) (Report, bool, error) {
	if s.Queue == nil {
		rep, err := s.Generate(ctx, userID)
		return rep, false, err
	}
	if _, err := s.Records.Current(ctx, userID); err != nil {
		return Report{}, false, err
	}
	rep, err := s.create(ctx, userID)
	if err != nil {
		return Report{}, false, err
	}

	msg := queue.Message{
		ReportID:   rep.ID,
		UserID:     userID,
		RequestID:  requestID,
		EnqueuedAt: s.now().Format(time.RFC3339),
		Version:    queue.MessageVersion,
	}
	if err := s.Queue.Send(ctx, msg); err != nil {
		s.markFailed(ctx, rep.ID, "enqueue failed")
		return Report{}, false, fmt.Errorf("enqueue report: %w", err)
	}
	telemetry.Info("report.enqueued", map[string]any{
		"report_id":  rep.ID,
		"user_id":    userID,
		"request_id": requestID,
	})
	return rep, true, nil
}

// Process renders a queued report. Jobs that can never succeed (unknown
// report, no current record) are marked failed and return nil so the
// message is dropped; storage errors are returned for redelivery.
func (s *Service) Process(ctx context.Context, msg queue.Message) error {
	rep, err := s.get(ctx, msg.UserID, msg.ReportID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			telemetry.Error("report.job.unknown", map[string]any{
				"report_id":  msg.ReportID,
				"request_id": msg.RequestID,
			})
			return nil
		}
		return err
	}
	if rep.Status == StatusReady {
		return nil
	}
	err = s.render(ctx, rep, true)
	if errors.Is(err, records.ErrNotFound) {
		return nil
	}
	return err
}

// Open streams a stored report.
func (s *Service) Open(ctx context.Context, userID, reportID string) (io.ReadCloser, Report, error) {
	rep, err := s.get(ctx, userID, reportID)
	if err != nil {
		return nil, Report{}, err
	}
	switch rep.Status {
	case StatusPending:
		return nil, rep, ErrNotReady
	case StatusFailed:
		return nil, rep, ErrFailed
	}
	rc, err := s.Store.Open(ctx, rep.StorageKey)
	if err != nil {
		if errors.Is(err, object.ErrNotFound) {
			return nil, rep, ErrNotReady
		}
		return nil, rep, err
	}
	return rc, rep, nil
}

// ValidID reports whether id has the shape of a report id.
func ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// get looks up a report, treating malformed ids as unknown so they never
// reach the uuid column.
func (s *Service) get(ctx context.Context, userID, reportID string) (Report, error) {
	reportID = strings.TrimSpace(reportID)
	if !ValidID(reportID) {
		return Report{}, ErrNotFound
	}
	return s.Repo.Get(ctx, userID, reportID)
}

func (s *Service) create(ctx context.Context, userID string) (Report, error) {
	id := uuid.NewString()
	rep := Report{
		ID:         id,
		UserID:     userID,
		StorageKey: StorageKey(userID, id),
		Status:     StatusPending,
		CreatedAt:  s.now(),
	}
	if err := s.Repo.Create(ctx, rep); err != nil {
		return Report{}, fmt.Errorf("create report: %w", err)
	}
	return rep, nil
}

func (s *Service) markFailed(ctx context.Context, reportID, reason string) {
	if err := s.Repo.MarkFailed(ctx, reportID, reason, s.now()); err != nil {
		telemetry.Error("report.mark_failed", map[string]any{
			"report_id": reportID,
			"reason":    reason,
			"error":     err.Error(),
		})
	}
}

// render builds, stores and marks a report ready. When retried is false
// nothing will run the job again, so transient errors also mark it failed.
func (s *Service) render(ctx context.Context, rep Report, retried bool) error {
	start := time.Now()
	fail := func(reason string, err error) error {
		metrics.IncReportsFailed()
		s.markFailed(ctx, rep.ID, reason)
		telemetry.Error("report.failed", map[string]any{
			"report_id": rep.ID,
			"user_id":   rep.UserID,
			"reason":    reason,
			"error":     err.Error(),
		})
		return err
	}

	rec, err := s.Records.Current(ctx, rep.UserID)
	if err != nil {
		if errors.Is(err, records.ErrNotFound) {
			return fail("no assessment", err)
		}
		if !retried {
			return fail("load record", err)
		}
		return err
	}
	generatedAt := s.now()
	data, err := RenderPDF(Layout(rec.HealthRecord, generatedAt), generatedAt)
	if err != nil {
		return fail("render", err)
	}
	if _, err := s.Store.SaveWithKey(ctx, rep.StorageKey, ContentType, bytes.NewReader(data)); err != nil {
		err = fmt.Errorf("store report: %w", err)
		if !retried {
			return fail("store", err)
		}
		return err
	}
	if err := s.Repo.MarkReady(ctx, rep.ID, s.now()); err != nil {
		err = fmt.Errorf("mark report ready: %w", err)
		if !retried {
			return fail("mark ready", err)
		}
		return err
	}

	metrics.IncReportsRendered()
	telemetry.Info("report.rendered", map[string]any{
		"report_id":   rep.ID,
		"user_id":     rep.UserID,
		"record_id":   rec.ID,
		"bytes":       len(data),
		"duration_ms": metrics.SinceMillis(start),
	})
	return nil
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}
