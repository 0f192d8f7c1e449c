// internal/repository/memory_audit_repository.go
package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/unclebandit/anything-security-console/internal/model"
)

const defaultMemoryCapacity = 500

// MemoryAuditRepository keeps the most recent audit events in process. The
// oldest events are dropped once Capacity is reached.
type MemoryAuditRepository struct {
	mu       sync.Mutex
	events   []model.AuditEvent
	nextID   int64
	Capacity int
}

var _ AuditRepositoryInterface = (*MemoryAuditRepository)(nil)

func NewMemoryAuditRepository(capacity int) *MemoryAuditRepository {
	if capacity <= 0 {
		capacity = defaultMemoryCapacity
	}
	return &MemoryAuditRepository{Capacity: capacity}
}

func (r *MemoryAuditRepository) Create(_ context.Context, event *model.AuditEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	event.ID = r.nextID
	r.events = append(r.events, *event)
	if over := len(r.events) - r.Capacity; over > 0 {
		r.events = append([]model.AuditEvent(nil), r.events[over:]...)
	}
	return nil
}

func (r *MemoryAuditRepository) ListRecent(_ context.Context, limit int) ([]model.AuditEvent, error) {
	r.mu.Lock()
	out := append([]model.AuditEvent(nil), r.events...)
	r.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].OccurredAt.Equal(out[j].OccurredAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].OccurredAt.After(out[j].OccurredAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	if out == nil {
		out = []model.AuditEvent{}
	}
	return out, nil
}
