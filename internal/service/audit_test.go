package service_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unclebandit/anything-security-console/internal/model"
	"github.com/unclebandit/anything-security-console/internal/queue"
	"github.com/unclebandit/anything-security-console/internal/repository"
	"github.com/unclebandit/anything-security-console/internal/service"
)

func TestQueueAuditorStampsAndPublishes(t *testing.T) {
	q := queue.NewInMemoryQueue(nil)
	repo := repository.NewMemoryAuditRepository(0)
	require.NoError(t, queue.StartAuditSubscriber(q, "console_audit", repo, nil))

	fixed := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	auditor := &service.QueueAuditor{Queue: q, Topic: "console_audit", Now: func() time.Time { return fixed }}

	var ctx context.Context
	middleware.RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		ctx = r.Context()
	})).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/campaigns", nil))

	auditor.Record(ctx, model.AuditEvent{Action: model.ActionDelete, Resource: model.ResourceTemplate, ResourceID: 3})
	q.Wait()

	events, err := repo.ListRecent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, fixed, events[0].OccurredAt)
	assert.NotEmpty(t, events[0].RequestID)
	assert.Equal(t, middleware.GetReqID(ctx), events[0].RequestID)
}

func TestQueueAuditorSwallowsPublishErrors(t *testing.T) {
	// no subscriber, so Publish fails
	auditor := &service.QueueAuditor{Queue: queue.NewInMemoryQueue(nil), Topic: "console_audit"}
	assert.NotPanics(t, func() {
		auditor.Record(context.Background(), model.AuditEvent{Action: model.ActionScan, Resource: model.ResourceCVEScan})
	})
}

func TestWorkerStoresEvents(t *testing.T) {
	repo := repository.NewMemoryAuditRepository(0)
	jobs := make(chan service.AuditJob, 2)
	results := make(chan error, 2)
	jobs <- service.AuditJob{Event: model.AuditEvent{Action: model.ActionCreate, Resource: model.ResourceAsset, ResourceID: 1}, Result: results}
	jobs <- service.AuditJob{Event: model.AuditEvent{Action: model.ActionDelete, Resource: model.ResourceAsset, ResourceID: 1}}
	close(jobs)

	service.NewWorker(repo, jobs, nil).Start(context.Background())

	require.Len(t, results, 1)
	assert.NoError(t, <-results)
	events, err := repo.ListRecent(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, events, 2)
}

type failingStore struct{}

func (failingStore) Create(context.Context, *model.AuditEvent) error { return assert.AnError }

func TestSubmitReturnsStoreError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	jobs := make(chan service.AuditJob)
	go service.NewWorker(failingStore{}, jobs, nil).Start(ctx)

	err := service.Submit(ctx, jobs, model.AuditEvent{Action: model.ActionScan, Resource: model.ResourceCVEScan})
	assert.ErrorIs(t, err, assert.AnError)
}

func TestSubmitHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	// nobody reads jobs
	err := service.Submit(ctx, make(chan service.AuditJob), model.AuditEvent{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestActivityServiceDefaultsLimit(t *testing.T) {
	repo := repository.NewMemoryAuditRepository(0)
	for i := 0; i < 60; i++ {
		require.NoError(t, repo.Create(context.Background(), &model.AuditEvent{Action: model.ActionScan, Resource: model.ResourceCVEScan}))
	}
	events, err := (&service.ActivityService{Reader: repo}).Recent(context.Background())
	require.NoError(t, err)
	assert.Len(t, events, 50)
}
