package usecase

import (
	"context"
	"strings"
	"time"

	"supplyops/internal/domain/entities"
	"supplyops/internal/domain/errs"
	"supplyops/internal/domain/permissions"
	"supplyops/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// Call carries who is acting and the record version they last observed.
// Version 0 means "whatever I read now"; the store still compares-and-swaps.
type Call struct {
	Actor   entities.Actor
	Version int64
}

// Observers receives the side outputs of every lifecycle operation.
// Both fields are optional.
type Observers struct {
	Events   interfaces.IEventPublisher
	Recorder interfaces.ITransitionRecorder
}

// edge is one row of a transition table.
type edge[S comparable] struct {
	from []S
	to   S
}

func (e edge[S]) allows(s S) bool {
	for _, f := range e.from {
		if f == s {
			return true
		}
	}
	return false
}

func authorize(actor entities.Actor, action permissions.Action) error {
	if !permissions.IsAllowed(actor.Role, action) {
		return &errs.PermissionError{Role: string(actor.Role), Action: string(action)}
	}
	return nil
}

func checkVersion(kind, id string, expected, actual int64) error {
	if expected != 0 && expected != actual {
		return errs.Conflict(kind, id, expected, actual)
	}
	return nil
}

func requireID(field, id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", errs.Invalid(field, "required")
	}
	return id, nil
}

// mutate reads id, checks the caller's version, applies change to a private
// copy and writes it back through the store's compare-and-swap.
func mutate[T entities.Record[T]](ctx context.Context, store interfaces.IEntityStore[T], kind, id string, expected int64, change func(*T) error) (T, T, error) {
	var zero T
	id, err := requireID(kind+"_id", id)
	if err != nil {
		return zero, zero, err
	}
	cur, err := store.Get(ctx, id)
	if err != nil {
		return zero, zero, err
	}
	if err := checkVersion(kind, id, expected, cur.GetVersion()); err != nil {
		return cur, zero, err
	}
	next := cur.Clone()
	if err := change(&next); err != nil {
		return cur, zero, err
	}
	updated, err := store.Update(ctx, next)
	if err != nil {
		return cur, zero, err
	}
	return cur, updated, nil
}

func note(text string, actor entities.Actor, at time.Time) entities.Note {
	return entities.Note{Text: text, Author: actor.StaffID, At: at}
}

func nowUTC() time.Time { return time.Now().UTC() }

// done records the outcome of one operation: metrics always, an event and an
// info log on success, a warning log on failure.
func (o Observers) done(ctx context.Context, ev entities.LifecycleEvent, err error) {
	if o.Recorder != nil {
		o.Recorder.Observe(ev.Entity, ev.Action, err)
	}
	tag := "[" + ev.Entity + "][usecase] " + ev.Action
	if err != nil {
		zap.L().Warn(tag+" rejected",
			zap.String("id", ev.EntityID),
			zap.String("role", string(ev.Role)),
			zap.String("actor", ev.ActorID),
			zap.Error(err))
		return
	}
	zap.L().Info(tag+" applied",
		zap.String("id", ev.EntityID),
		zap.String("from", ev.From),
		zap.String("to", ev.To),
		zap.Int64("version", ev.Version),
		zap.String("role", string(ev.Role)),
		zap.String("actor", ev.ActorID))
	if o.Events == nil {
		return
	}
	if pubErr := o.Events.Publish(ctx, ev); pubErr != nil {
		zap.L().Warn(tag+" event publish failed", zap.String("id", ev.EntityID), zap.Error(pubErr))
	}
}

func event(entity, id, action string, actor entities.Actor) entities.LifecycleEvent {
	return entities.LifecycleEvent{
		Entity:   entity,
		EntityID: id,
		Action:   action,
		ActorID:  actor.StaffID,
		Role:     actor.Role,
		At:       nowUTC(),
	}
}
