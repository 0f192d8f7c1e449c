// internal/repository/audit_repository.go
package repository

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	"github.com/unclebandit/anything-security-console/internal/model"
)

type AuditRepositoryInterface interface {
	Create(ctx context.Context, event *model.AuditEvent) error
	ListRecent(ctx context.Context, limit int) ([]model.AuditEvent, error)
}

type AuditRepository struct {
	DB *sql.DB
}

var _ AuditRepositoryInterface = (*AuditRepository)(nil)

// Create inserts event and fills in its ID.
func (r *AuditRepository) Create(ctx context.Context, event *model.AuditEvent) error {
	query := `
		INSERT INTO console_audit_events (action, resource, resource_id, detail, request_id, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		event.Action,
		event.Resource,
		event.ResourceID,
		event.Detail,
		event.RequestID,
		event.OccurredAt,
	).Scan(&event.ID)
	if err != nil {
		return errors.Wrap(err, "insert audit event")
	}
	return nil
}

// ListRecent returns up to limit events, newest first.
func (r *AuditRepository) ListRecent(ctx context.Context, limit int) ([]model.AuditEvent, error) {
	query := `
		SELECT id, action, resource, resource_id, detail, request_id, occurred_at
		FROM console_audit_events
		ORDER BY occurred_at DESC, id DESC
		LIMIT $1
	`
	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, errors.Wrap(err, "query audit events")
	}
	defer rows.Close()

	events := []model.AuditEvent{}
	for rows.Next() {
		var e model.AuditEvent
		if err := rows.Scan(&e.ID, &e.Action, &e.Resource, &e.ResourceID, &e.Detail, &e.RequestID, &e.OccurredAt); err != nil {
			return nil, errors.Wrap(err, "scan audit event")
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
