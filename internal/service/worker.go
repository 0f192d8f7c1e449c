package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/unclebandit/anything-security-console/internal/model"
)

// AuditStore defines the methods the worker needs
type AuditStore interface {
	Create(ctx context.Context, event *model.AuditEvent) error
}

// AuditJob is one event to persist. Result, when set, receives the store's
// outcome; it must have room for one value.
type AuditJob struct {
	Event  model.AuditEvent
	Result chan<- error
}

// Worker persists audit events arriving on Jobs
type Worker struct {
	Store  AuditStore
	Jobs   <-chan AuditJob
	Logger *zap.Logger
}

// Constructor
func NewWorker(store AuditStore, jobs <-chan AuditJob, logger *zap.Logger) *Worker {
	return &Worker{
		Store:  store,
		Jobs:   jobs,
		Logger: loggerOrNop(logger),
	}
}

// Start processes jobs until Jobs is closed or ctx is done
func (w *Worker) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-w.Jobs:
			if !ok {
				return
			}
			err := w.Store.Create(ctx, &job.Event)
			if err != nil {
				w.Logger.Error("failed to store audit event",
					zap.String("action", job.Event.Action),
					zap.String("resource", job.Event.Resource),
					zap.Error(err))
			}
			if job.Result != nil {
				job.Result <- err
			}
		}
	}
}

// Submit hands event to the workers reading jobs and waits for it to be
// stored.
func Submit(ctx context.Context, jobs chan<- AuditJob, event model.AuditEvent) error {
	result := make(chan error, 1)
	select {
	case jobs <- AuditJob{Event: event, Result: result}:
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-result:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
