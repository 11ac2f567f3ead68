// Package memory provides the in-memory EntityStore used by tests and by the
// default single-process deployment.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"supplyops/internal/domain/entities"
	"supplyops/internal/domain/errs"
	"supplyops/internal/usecase/interfaces"
)

var (
	_ interfaces.IEntityStore[entities.Order]        = (*Collection[entities.Order])(nil)
	_ interfaces.IEntityStore[entities.ConsumerLink] = (*Collection[entities.ConsumerLink])(nil)
	_ interfaces.IEntityStore[entities.Complaint]    = (*Collection[entities.Complaint])(nil)
	_ interfaces.IEntityStore[entities.Incident]     = (*Collection[entities.Incident])(nil)
	_ interfaces.IEscalationStore                    = (*Store)(nil)
)

// Store owns one collection per entity kind. All collections share a single
// lock so cross-entity commits are atomic.
type Store struct {
	mu  sync.RWMutex
	now func() time.Time

	Orders     *Collection[entities.Order]
	Links      *Collection[entities.ConsumerLink]
	Complaints *Collection[entities.Complaint]
	Incidents  *Collection[entities.Incident]
}

// NewStore returns an empty store.
func NewStore() *Store {
	s := &Store{now: func() time.Time { return time.Now().UTC() }}
	s.Orders = newCollection[entities.Order](s, "order")
	s.Links = newCollection[entities.ConsumerLink](s, "link")
	s.Complaints = newCollection[entities.Complaint](s, "complaint")
	s.Incidents = newCollection[entities.Incident](s, "incident")
	return s
}

// SetNowFunc overrides the clock used to stamp UpdatedAt.
func (s *Store) SetNowFunc(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// CommitEscalation writes the escalated complaint and its new incident under
// one lock acquisition. All checks run before either write.
func (s *Store) CommitEscalation(ctx context.Context, complaint entities.Complaint, incident entities.Incident) (entities.Complaint, entities.Incident, error) {
	if err := ctx.Err(); err != nil {
		return entities.Complaint{}, entities.Incident{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.Complaints.checkUpdateLocked(complaint); err != nil {
		return entities.Complaint{}, entities.Incident{}, err
	}
	if err := s.Incidents.checkCreateLocked(incident); err != nil {
		return entities.Complaint{}, entities.Incident{}, err
	}
	for _, id := range s.Incidents.order {
		if s.Incidents.items[id].ComplaintID == complaint.ID {
			return entities.Complaint{}, entities.Incident{}, fmt.Errorf("complaint %s already escalated to incident %s: %w", complaint.ID, id, errs.ErrConcurrentModification)
		}
	}

	storedComplaint := s.Complaints.putLocked(complaint)
	storedIncident := s.Incidents.insertLocked(incident)
	return storedComplaint, storedIncident, nil
}

// Collection is a keyed set of records of one kind.
type Collection[T entities.Record[T]] struct {
	store *Store
	kind  string
	items map[string]T
	order []string
}

func newCollection[T entities.Record[T]](s *Store, kind string) *Collection[T] {
	return &Collection[T]{store: s, kind: kind, items: make(map[string]T)}
}

func (c *Collection[T]) Create(ctx context.Context, rec T) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	if err := c.checkCreateLocked(rec); err != nil {
		return zero, err
	}
	return c.insertLocked(rec), nil
}

func (c *Collection[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()

	rec, ok := c.items[id]
	if !ok {
		return zero, errs.NotFound(c.kind, id)
	}
	return rec.Clone(), nil
}

func (c *Collection[T]) Update(ctx context.Context, rec T) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	if err := c.checkUpdateLocked(rec); err != nil {
		return zero, err
	}
	return c.putLocked(rec), nil
}

func (c *Collection[T]) List(ctx context.Context, filter entities.Filter) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()

	out := make([]T, 0, len(c.items))
	for _, id := range c.order {
		rec := c.items[id]
		if rec.Matches(filter) {
			out = append(out, rec.Clone())
		}
	}
	return out, nil
}

func (c *Collection[T]) checkCreateLocked(rec T) error {
	id := rec.GetID()
	if id == "" {
		return errs.Invalid("id", "required")
	}
	if _, exists := c.items[id]; exists {
		return fmt.Errorf("%s %s already exists: %w", c.kind, id, errs.ErrConcurrentModification)
	}
	return nil
}

func (c *Collection[T]) checkUpdateLocked(rec T) error {
	cur, ok := c.items[rec.GetID()]
	if !ok {
		return errs.NotFound(c.kind, rec.GetID())
	}
	if cur.GetVersion() != rec.GetVersion() {
		return errs.Conflict(c.kind, rec.GetID(), rec.GetVersion(), cur.GetVersion())
	}
	return nil
}

func (c *Collection[T]) insertLocked(rec T) T {
	stored := rec.Clone().Stamp(1, c.store.now())
	c.items[stored.GetID()] = stored
	c.order = append(c.order, stored.GetID())
	return stored.Clone()
}

func (c *Collection[T]) putLocked(rec T) T {
	cur := c.items[rec.GetID()]
	stored := rec.Clone().Stamp(cur.GetVersion()+1, c.store.now())
	c.items[stored.GetID()] = stored
	return stored.Clone()
}
