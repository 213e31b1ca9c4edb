package reports

import (
	"context"
	"time"
)

// Repo tracks report metadata. Get returns ErrNotFound for reports owned
// by another user.
type Repo interface {
	Create(ctx context.Context, r Report) error
	Get(ctx context.Context, userID, reportID string) (Report, error)
	MarkReady(ctx context.Context, reportID string, completedAt time.Time) error
	MarkFailed(ctx context.Context, reportID, reason string, completedAt time.Time) error
}
