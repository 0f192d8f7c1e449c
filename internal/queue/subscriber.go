// internal/queue/subscriber.go
package queue

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/unclebandit/anything-security-console/internal/model"
	"github.com/unclebandit/anything-security-console/internal/repository"
)

// StartAuditSubscriber stores every audit event published on topic.
// Undecodable payloads are dropped; store failures are returned so the queue
// retries them.
func StartAuditSubscriber(q Queue, topic string, repo repository.AuditRepositoryInterface, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	err := q.Subscribe(topic, func(payload any) error {
		event, err := DecodeAuditEvent(payload)
		if err != nil {
			logger.Warn("⚠️ dropping invalid audit payload", zap.Error(err))
			return nil // no retry
		}

		if err := repo.Create(context.Background(), &event); err != nil {
			logger.Warn("⚠️ failed to store audit event", zap.String("action", event.Action), zap.Error(err))
			return err // retry
		}

		logger.Debug("audit event stored",
			zap.Int64("id", event.ID),
			zap.String("action", event.Action),
			zap.String("resource", event.Resource))
		return nil
	})
	if err != nil {
		return errors.Wrapf(err, "subscribe to %s", topic)
	}
	return nil
}

// DecodeAuditEvent accepts an event as published in process or as the JSON
// body of a broker delivery. Events without action or resource are rejected.
func DecodeAuditEvent(payload any) (model.AuditEvent, error) {
	var event model.AuditEvent
	switch p := payload.(type) {
	case model.AuditEvent:
		event = p
	case *model.AuditEvent:
		if p == nil {
			return model.AuditEvent{}, errors.New("nil audit event")
		}
		event = *p
	case []byte:
		if err := json.Unmarshal(p, &event); err != nil {
			return model.AuditEvent{}, errors.Wrap(err, "decode audit event")
		}
	default:
		return model.AuditEvent{}, errors.Errorf("unexpected payload type %T", payload)
	}
	if event.Action == "" || event.Resource == "" {
		return model.AuditEvent{}, errors.New("audit event without action or resource")
	}
	return event, nil
}
