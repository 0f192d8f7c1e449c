// internal/service/audit.go
package service

import (
	"context"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/unclebandit/anything-security-console/internal/model"
	"github.com/unclebandit/anything-security-console/internal/queue"
)

// Auditor records console mutations. Recording never fails the mutation
// itself.
type Auditor interface {
	Record(ctx context.Context, event model.AuditEvent)
}

// QueueAuditor publishes audit events to a queue topic.
type QueueAuditor struct {
	Queue  queue.Queue
	Topic  string
	Logger *zap.Logger
	Now    func() time.Time
}

func (a *QueueAuditor) Record(ctx context.Context, event model.AuditEvent) {
	if event.OccurredAt.IsZero() {
		now := time.Now
		if a.Now != nil {
			now = a.Now
		}
		event.OccurredAt = now().UTC()
	}
	if event.RequestID == "" {
		event.RequestID = middleware.GetReqID(ctx)
	}
	if err := a.Queue.Publish(a.Topic, event); err != nil {
		loggerOrNop(a.Logger).Warn("failed to publish audit event",
			zap.String("action", event.Action),
			zap.String("resource", event.Resource),
			zap.Int("resource_id", event.ResourceID),
			zap.Error(err))
	}
}

// NopAuditor drops every event.
type NopAuditor struct{}

func (NopAuditor) Record(context.Context, model.AuditEvent) {}

func auditOrNop(a Auditor) Auditor {
	if a == nil {
		return NopAuditor{}
	}
	return a
}

func loggerOrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}
