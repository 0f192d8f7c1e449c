package main

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/unclebandit/anything-security-console/internal/model"
	"github.com/unclebandit/anything-security-console/internal/queue"
)

// MockAuditRepo stores events in memory and fails the first failures calls
type MockAuditRepo struct {
	mu       sync.Mutex
	events   []model.AuditEvent
	failures int
	calls    int
}

func (m *MockAuditRepo) Create(_ context.Context, event *model.AuditEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.calls <= m.failures {
		return assert.AnError
	}
	m.events = append(m.events, *event)
	return nil
}

func newQueue() *queue.InMemoryQueue {
	q := queue.NewInMemoryQueue(nil)
	q.Backoff = 0
	return q
}

func TestWorkerStoresPublishedEvents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	q := newQueue()
	repo := &MockAuditRepo{}
	require.NoError(t, consume(ctx, q, "console_audit", repo, zap.NewNop()))

	require.NoError(t, q.Publish("console_audit", []byte(`{"action":"close","resource":"campaign","resource_id":3}`)))
	require.NoError(t, q.Publish("console_audit", model.AuditEvent{Action: "scan", Resource: "cve_scan"}))
	q.Wait()

	require.Len(t, repo.events, 2)
	actions := []string{repo.events[0].Action, repo.events[1].Action}
	assert.ElementsMatch(t, []string{"close", "scan"}, actions)
}

func TestWorkerRetriesFailedStore(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	q := newQueue()
	repo := &MockAuditRepo{failures: 1}
	require.NoError(t, consume(ctx, q, "console_audit", repo, zap.NewNop()))

	require.NoError(t, q.Publish("console_audit", model.AuditEvent{Action: "delete", Resource: "asset", ResourceID: 9}))
	q.Wait()

	assert.Equal(t, 2, repo.calls)
	require.Len(t, repo.events, 1)
	assert.Equal(t, 9, repo.events[0].ResourceID)
}

func TestWorkerDropsInvalidPayload(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	q := newQueue()
	repo := &MockAuditRepo{}
	require.NoError(t, consume(ctx, q, "console_audit", repo, zap.NewNop()))

	require.NoError(t, q.Publish("console_audit", []byte(`not json`)))
	q.Wait()

	assert.Zero(t, repo.calls)
}
