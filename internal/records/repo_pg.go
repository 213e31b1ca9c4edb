package records

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"pulseguard-backend/internal/healthmetrics"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) SetCurrent(ctx context.Context, rec Record) error {
	payload, err := json.Marshal(rec.HealthRecord)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	const query = `
INSERT INTO health_records_current (user_id, record_id, payload, recorded_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (user_id) DO UPDATE SET
  record_id = EXCLUDED.record_id,
  payload = EXCLUDED.payload,
  recorded_at = EXCLUDED.recorded_at`
	_, err = r.DB.ExecContext(ctx, query, rec.UserID, rec.ID, payload, rec.RecordedAt)
	return err
}

func (r *PGRepo) Current(ctx context.Context, userID string) (Record, error) {
	const query = `
SELECT record_id, payload, recorded_at
FROM health_records_current
WHERE user_id = $1`
	rec := Record{UserID: userID}
	var payload []byte
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(&rec.ID, &payload, &rec.RecordedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, err
	}
	if rec.HealthRecord, err = decodePayload(payload); err != nil {
		return Record{}, err
	}
	return rec, nil
}

func (r *PGRepo) AppendHistory(ctx context.Context, rec Record, limit int) error {
	payload, err := json.Marshal(rec.HealthRecord)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	const insert = `
INSERT INTO health_history (id, user_id, payload, recorded_at)
VALUES ($1, $2, $3, $4)`
	if _, err := tx.ExecContext(ctx, insert, rec.ID, rec.UserID, payload, rec.RecordedAt); err != nil {
		return err
	}

	if limit > 0 {
		const prune = `
DELETE FROM health_history
WHERE user_id = $1
  AND id NOT IN (
    SELECT id FROM health_history
    WHERE user_id = $1
    ORDER BY recorded_at DESC, id DESC
    LIMIT $2
  )`
		if _, err := tx.ExecContext(ctx, prune, rec.UserID, limit); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *PGRepo) History(ctx context.Context, userID string) ([]Record, error) {
	const query = `
SELECT id, payload, recorded_at
FROM health_history
WHERE user_id = $1
ORDER BY recorded_at ASC, id ASC`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		rec := Record{UserID: userID}
		var payload []byte
		if err := rows.Scan(&rec.ID, &payload, &rec.RecordedAt); err != nil {
			return nil, err
		}
		if rec.HealthRecord, err = decodePayload(payload); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func decodePayload(payload []byte) (healthmetrics.HealthRecord, error) {
	var hr healthmetrics.HealthRecord
	if err := json.Unmarshal(payload, &hr); err != nil {
		return hr, fmt.Errorf("decode record payload: %w", err)
	}
	return hr, nil
}

var _ Repo = (*PGRepo)(nil)
