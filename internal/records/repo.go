package records

import "context"

// Repo stores the current record per user plus a capped history.
type Repo interface {
	SetCurrent(ctx context.Context, rec Record) error
	Current(ctx context.Context, userID string) (Record, error)
	// AppendHistory adds rec and keeps only the newest limit entries for
	// the user. A non-positive limit keeps everything.
	AppendHistory(ctx context.Context, rec Record, limit int) error
	// History returns the user's entries oldest first.
	History(ctx context.Context, userID string) ([]Record, error)
}
