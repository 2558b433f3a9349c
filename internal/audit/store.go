// Package audit keeps a local trail of every mutating driver action the
// gateway submitted, with its true outcome. This is gateway-owned
// operational data; the record store remains the source of truth for the
// records themselves.
package audit

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Actions recorded in the trail.
const (
	ActionTransition = "transition"
	ActionDelete     = "delete"
	ActionCleanup    = "cleanup_users"
)

type Entry struct {
	ID         int64     `json:"id"`
	Actor      string    `json:"actor"`
	DriverID   int64     `json:"driver_id"`
	Action     string    `json:"action"`
	FromStatus string    `json:"from_status,omitempty"`
	ToStatus   string    `json:"to_status,omitempty"`
	Reason     *string   `json:"reason,omitempty"`
	Succeeded  bool      `json:"succeeded"`
	Detail     string    `json:"detail,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Record inserts one entry. Nil-safe so handlers can run without a database
// in tests; failures are the caller's to log, never to surface.
func (s *Store) Record(ctx context.Context, e Entry) error {
	if s == nil || s.pool == nil {
		return nil
	}
	_, err := s.pool.Exec(ctx, `
		INSERT INTO transition_audit (actor, driver_id, action, from_status, to_status, reason, succeeded, detail)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, e.Actor, e.DriverID, e.Action, e.FromStatus, e.ToStatus, e.Reason, e.Succeeded, e.Detail)
	return err
}

// ListByDriver returns the newest entries for one driver, newest first.
func (s *Store) ListByDriver(ctx context.Context, driverID int64, limit int) ([]Entry, error) {
	if s == nil || s.pool == nil {
		return nil, nil
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	rows, err := s.pool.Query(ctx, `
		SELECT id, actor, driver_id, action, from_status, to_status, reason, succeeded, detail, created_at
		FROM transition_audit
		WHERE driver_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`, driverID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var fromStatus, toStatus, detail *string
		if err := rows.Scan(&e.ID, &e.Actor, &e.DriverID, &e.Action, &fromStatus, &toStatus, &e.Reason, &e.Succeeded, &detail, &e.CreatedAt); err != nil {
			return nil, err
		}
		if fromStatus != nil {
			e.FromStatus = *fromStatus
		}
		if toStatus != nil {
			e.ToStatus = *toStatus
		}
		if detail != nil {
			e.Detail = *detail
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
