package records

import (
	"context"
	"sync"
)

type MemoryRepo struct {
	mu      sync.RWMutex
	current map[string]Record
	history map[string][]Record
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		current: make(map[string]Record),
		history: make(map[string][]Record),
	}
}

func (r *MemoryRepo) SetCurrent(ctx context.Context, rec Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current[rec.UserID] = rec
	return nil
}

func (r *MemoryRepo) Current(ctx context.Context, userID string) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.current[userID]
	if !ok {
		return Record{}, ErrNotFound
	}
	return rec, nil
}

func (r *MemoryRepo) AppendHistory(ctx context.Context, rec Record, limit int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	items := append(r.history[rec.UserID], rec)
	if limit > 0 && len(items) > limit {
		items = append([]Record(nil), items[len(items)-limit:]...)
	}
	r.history[rec.UserID] = items
	return nil
}

func (r *MemoryRepo) History(ctx context.Context, userID string) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Record(nil), r.history[userID]...), nil
}

var _ Repo = (*MemoryRepo)(nil)
