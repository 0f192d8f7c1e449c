package queue_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unclebandit/anything-security-console/internal/model"
	"github.com/unclebandit/anything-security-console/internal/queue"
)

func fastQueue() *queue.InMemoryQueue {
	q := queue.NewInMemoryQueue(nil)
	q.Backoff = time.Millisecond
	return q
}

func TestPublishWithoutSubscribersFails(t *testing.T) {
	q := fastQueue()
	err := q.Publish("console_audit", model.AuditEvent{Action: model.ActionCreate})
	require.Error(t, err)
	assert.EqualError(t, err, "no subscribers for topic console_audit")
}

func TestFailedHandlerIsRetried(t *testing.T) {
	q := fastQueue()
	var (
		mu    sync.Mutex
		calls int
	)
	require.NoError(t, q.Subscribe("t", func(any) error {
		mu.Lock()
		defer mu.Unlock()
		calls++
		if calls < 3 {
			return errors.New("boom")
		}
		return nil
	}))

	require.NoError(t, q.Publish("t", 1))
	q.Wait()
	assert.Equal(t, 3, calls)
}

func TestHandlerGivesUpAfterMaxRetries(t *testing.T) {
	q := fastQueue()
	var (
		mu    sync.Mutex
		calls int
	)
	require.NoError(t, q.Subscribe("t", func(any) error {
		mu.Lock()
		defer mu.Unlock()
		calls++
		return errors.New("always")
	}))

	require.NoError(t, q.Publish("t", 1))
	q.Wait()
	assert.Equal(t, q.MaxRetries+1, calls)
}

type memRepo struct {
	mu     sync.Mutex
	events []model.AuditEvent
	fail   int
}

func (m *memRepo) Create(_ context.Context, e *model.AuditEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail > 0 {
		m.fail--
		return errors.New("db down")
	}
	e.ID = int64(len(m.events) + 1)
	m.events = append(m.events, *e)
	return nil
}

func (m *memRepo) ListRecent(_ context.Context, limit int) ([]model.AuditEvent, error) {
	return m.events, nil
}

func TestAuditSubscriberStoresEvents(t *testing.T) {
	q := fastQueue()
	repo := &memRepo{fail: 1}
	require.NoError(t, queue.StartAuditSubscriber(q, "console_audit", repo, nil))

	require.NoError(t, q.Publish("console_audit", model.AuditEvent{
		Action:     model.ActionClose,
		Resource:   model.ResourceCampaign,
		ResourceID: 4,
	}))
	require.NoError(t, q.Publish("console_audit", "garbage"))
	q.Wait()

	require.Len(t, repo.events, 1)
	assert.Equal(t, model.ActionClose, repo.events[0].Action)
	assert.Equal(t, 4, repo.events[0].ResourceID)
}

func TestDecodeAuditEvent(t *testing.T) {
	event, err := queue.DecodeAuditEvent([]byte(`{"action":"delete","resource":"asset","resource_id":9,"occurred_at":"2024-03-01T09:30:00Z"}`))
	require.NoError(t, err)
	assert.Equal(t, model.ActionDelete, event.Action)
	assert.Equal(t, model.ResourceAsset, event.Resource)
	assert.Equal(t, 9, event.ResourceID)
	assert.Equal(t, 2024, event.OccurredAt.Year())

	_, err = queue.DecodeAuditEvent([]byte(`{"detail":"no action"}`))
	assert.Error(t, err)

	_, err = queue.DecodeAuditEvent([]byte(`not json`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode audit event: ")

	_, err = queue.DecodeAuditEvent(42)
	assert.Error(t, err)
}

func TestDecodeAuditEventRequiresActionAndResource(t *testing.T) {
	for _, payload := range []any{
		model.AuditEvent{Resource: model.ResourceAsset},
		&model.AuditEvent{Action: model.ActionDelete},
		(*model.AuditEvent)(nil),
		[]byte(`{"action":"delete"}`),
	} {
		_, err := queue.DecodeAuditEvent(payload)
		assert.Error(t, err, "%#v", payload)
	}

	event, err := queue.DecodeAuditEvent(&model.AuditEvent{Action: model.ActionDelete, Resource: model.ResourceAsset})
	require.NoError(t, err)
	assert.Equal(t, model.ActionDelete, event.Action)
}

func TestAuditSubscriberDropsIncompleteEvents(t *testing.T) {
	q := fastQueue()
	repo := &memRepo{}
	require.NoError(t, queue.StartAuditSubscriber(q, "console_audit", repo, nil))

	require.NoError(t, q.Publish("console_audit", model.AuditEvent{Resource: model.ResourceCampaign}))
	q.Wait()

	assert.Empty(t, repo.events)
}
