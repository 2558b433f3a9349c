package audit

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrations in Go, applied in order at startup; each statement is
// idempotent so restarts are safe.
type migration struct {
	Name string
	Up   func(ctx context.Context, pool *pgxpool.Pool) error
}

var migrations = []migration{
	{Name: "create_transition_audit", Up: upTransitionAudit},
	{Name: "transition_audit_driver_idx", Up: upTransitionAuditIndex},
}

// Migrate applies all audit-schema migrations in order.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for i, m := range migrations {
		if err := m.Up(ctx, pool); err != nil {
			return fmt.Errorf("migration %d (%s): %w", i, m.Name, err)
		}
	}
	return nil
}

func upTransitionAudit(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS transition_audit (
			id           BIGSERIAL PRIMARY KEY,
			actor        TEXT NOT NULL,
			driver_id    BIGINT NOT NULL,
			action       TEXT NOT NULL,
			from_status  TEXT,
			to_status    TEXT,
			reason       TEXT,
			succeeded    BOOLEAN NOT NULL,
			detail       TEXT,
			created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	return err
}

func upTransitionAuditIndex(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE INDEX IF NOT EXISTS transition_audit_driver_created_idx
		ON transition_audit (driver_id, created_at DESC)
	`)
	return err
}
