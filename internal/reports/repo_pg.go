package reports

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, rep Report) error {
	const query = `
INSERT INTO reports (id, user_id, storage_key, status, created_at)
VALUES ($1, $2, $3, $4, $5)`
	_, err := r.DB.ExecContext(ctx, query, rep.ID, rep.UserID, rep.StorageKey, string(rep.Status), rep.CreatedAt)
	return err
}

func (r *PGRepo) Get(ctx context.Context, userID, reportID string) (Report, error) {
	const query = `
SELECT storage_key, status, error, created_at, completed_at
FROM reports
WHERE id = $1 AND user_id = $2`
	rep := Report{ID: reportID, UserID: userID}
	var (
		status      string
		reason      sql.NullString
		completedAt sql.NullTime
	)
	err := r.DB.QueryRowContext(ctx, query, reportID, userID).
		Scan(&rep.StorageKey, &status, &reason, &rep.CreatedAt, &completedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Report{}, ErrNotFound
		}
		return Report{}, err
	}
	rep.Status = Status(status)
	rep.Error = reason.String
	if completedAt.Valid {
		t := completedAt.Time
		rep.CompletedAt = &t
	}
	return rep, nil
}

func (r *PGRepo) MarkReady(ctx context.Context, reportID string, completedAt time.Time) error {
	const query = `
UPDATE reports
SET status = $2, error = NULL, completed_at = $3
WHERE id = $1`
	return r.exec(ctx, query, reportID, string(StatusReady), completedAt)
}

func (r *PGRepo) MarkFailed(ctx context.Context, reportID, reason string, completedAt time.Time) error {
	const query = `
UPDATE reports
SET status = $2, error = $3, completed_at = $4
WHERE id = $1`
	return r.exec(ctx, query, reportID, string(StatusFailed), reason, completedAt)
}

func (r *PGRepo) exec(ctx context.Context, query string, args ...any) error {
	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

var _ Repo = (*PGRepo)(nil)
