// internal/service/activity_service.go
package service

import (
	"context"

	"github.com/pkg/errors"

	"github.com/unclebandit/anything-security-console/internal/model"
)

const defaultActivityLimit = 50

// AuditReader lists stored audit events, newest first.
type AuditReader interface {
	ListRecent(ctx context.Context, limit int) ([]model.AuditEvent, error)
}

type ActivityService struct {
	Reader AuditReader
	Limit  int
}

func (s *ActivityService) Recent(ctx context.Context) ([]model.AuditEvent, error) {
	limit := s.Limit
	if limit <= 0 {
		limit = defaultActivityLimit
	}
	events, err := s.Reader.ListRecent(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "list audit events")
	}
	return events, nil
}
