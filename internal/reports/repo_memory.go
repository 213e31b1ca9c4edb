package reports

import (
	"context"
	"sync"
	"time"
)

type MemoryRepo struct {
	mu      sync.RWMutex
	reports map[string]Report
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{reports: make(map[string]Report)}
}

func (m *MemoryRepo) Create(ctx context.Context, r Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reports[r.ID] = r
	return nil
}

func (m *MemoryRepo) Get(ctx context.Context, userID, reportID string) (Report, error) {
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.reports[reportID]
	if !ok || r.UserID != userID {
		return Report{}, ErrNotFound
	}
	return r, nil
}

func (m *MemoryRepo) MarkReady(ctx context.Context, reportID string, completedAt time.Time) error {
	return m.update(ctx, reportID, func(r *Report) {
		r.Status = StatusReady
		r.Error = ""
		r.CompletedAt = &completedAt
	})
}

func (m *MemoryRepo) MarkFailed(ctx context.Context, reportID, reason string, completedAt time.Time) error {
	return m.update(ctx, reportID, func(r *Report) {
		r.Status = StatusFailed
		r.Error = reason
		r.CompletedAt = &completedAt
	})
}

func (m *MemoryRepo) update(ctx context.Context, reportID string, fn func(*Report)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.reports[reportID]
	if !ok {
		return ErrNotFound
	}
	fn(&r)
	m.reports[reportID] = r
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
