// internal/db/db.go
package db

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/pkg/errors"
)

const schema = `
CREATE TABLE IF NOT EXISTS console_audit_events (
	id          BIGSERIAL PRIMARY KEY,
	action      TEXT        NOT NULL,
	resource    TEXT        NOT NULL,
	resource_id INTEGER     NOT NULL DEFAULT 0,
	detail      TEXT        NOT NULL DEFAULT '',
	request_id  TEXT        NOT NULL DEFAULT '',
	occurred_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS console_audit_events_occurred_at_idx
	ON console_audit_events (occurred_at DESC);
`

// Open connects to Postgres at dsn and checks the connection.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	conn, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to DB")
	}
	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, errors.Wrap(err, "failed to ping DB")
	}
	return conn, nil
}

// Migrate creates the audit table when it does not exist.
func Migrate(ctx context.Context, conn *sql.DB) error {
	if _, err := conn.ExecContext(ctx, schema); err != nil {
		return errors.Wrap(err, "migrate audit schema")
	}
	return nil
}
