package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"supplyops/internal/domain/entities"
	"supplyops/internal/domain/errs"
	mock_interfaces "supplyops/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOrderUseCase_Order101Walkthrough(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.seedOrder(t, "101", entities.OrderStatusNew)

	o, err := f.orders.Accept(ctx, "101", as(manager))
	require.NoError(t, err)
	assert.Equal(t, entities.OrderStatusInProgress, o.Status)
	assert.Equal(t, int64(2), o.Version)

	_, err = f.orders.Complete(ctx, "101", as(sales))
	assert.ErrorIs(t, err, errs.ErrPermissionDenied)
	o, err = f.orders.GetByID(ctx, "101", sales)
	require.NoError(t, err)
	assert.Equal(t, entities.OrderStatusInProgress, o.Status)
	assert.Equal(t, int64(2), o.Version)

	o, err = f.orders.Complete(ctx, "101", as(owner))
	require.NoError(t, err)
	assert.Equal(t, entities.OrderStatusCompleted, o.Status)

	for _, actor := range []entities.Actor{owner, manager} {
		_, err = f.orders.Accept(ctx, "101", as(actor))
		var te *errs.TransitionError
		require.ErrorAs(t, err, &te)
		assert.Equal(t, "COMPLETED", te.From)
		assert.Equal(t, "IN_PROGRESS", te.Attempted)
	}
}

func TestOrderUseCase_TransitionTable(t *testing.T) {
	type op func(*OrderUseCase, string) (entities.Order, error)
	ops := map[string]op{
		"accept": func(u *OrderUseCase, id string) (entities.Order, error) {
			return u.Accept(context.Background(), id, as(owner))
		},
		"reject": func(u *OrderUseCase, id string) (entities.Order, error) {
			return u.Reject(context.Background(), id, as(owner))
		},
		"complete": func(u *OrderUseCase, id string) (entities.Order, error) {
			return u.Complete(context.Background(), id, as(owner))
		},
	}
	allowed := map[string]map[entities.OrderStatus]entities.OrderStatus{
		"accept":   {entities.OrderStatusNew: entities.OrderStatusInProgress},
		"reject":   {entities.OrderStatusNew: entities.OrderStatusRejected},
		"complete": {entities.OrderStatusInProgress: entities.OrderStatusCompleted},
	}
	statuses := []entities.OrderStatus{
		entities.OrderStatusNew, entities.OrderStatusInProgress,
		entities.OrderStatusCompleted, entities.OrderStatusRejected,
	}

	for name, run := range ops {
		for _, from := range statuses {
			t.Run(name+" from "+string(from), func(t *testing.T) {
				f := newFixture()
				seeded := f.seedOrder(t, "o-1", from)

				got, err := run(f.orders, "o-1")
				want, ok := allowed[name][from]
				if ok {
					require.NoError(t, err)
					assert.Equal(t, want, got.Status)
					return
				}
				assert.ErrorIs(t, err, errs.ErrInvalidTransition)
				after, _ := f.store.Orders.Get(context.Background(), "o-1")
				assert.Equal(t, seeded, after)
			})
		}
	}
}

func TestOrderUseCase_DeniedCallLeavesOrderUnchanged(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	seeded := f.seedOrder(t, "o-1", entities.OrderStatusNew)

	_, err := f.orders.Accept(ctx, "o-1", as(sales))
	assert.ErrorIs(t, err, errs.ErrPermissionDenied)
	_, err = f.orders.Reject(ctx, "o-1", as(sales))
	assert.ErrorIs(t, err, errs.ErrPermissionDenied)
	_, err = f.orders.AmendItems(ctx, "o-1", as(sales), []entities.OrderItem{{ProductRef: "x", Qty: 1}})
	assert.ErrorIs(t, err, errs.ErrPermissionDenied)
	_, err = f.orders.Accept(ctx, "o-1", Call{Actor: entities.Actor{StaffID: "ghost", Role: "INTERN"}})
	assert.ErrorIs(t, err, errs.ErrPermissionDenied)

	after, err := f.store.Orders.Get(ctx, "o-1")
	require.NoError(t, err)
	assert.Equal(t, seeded, after)
}

func TestOrderUseCase_StaleVersion(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.seedOrder(t, "o-1", entities.OrderStatusNew)

	_, err := f.orders.Accept(ctx, "o-1", Call{Actor: manager, Version: 7})
	assert.ErrorIs(t, err, errs.ErrConcurrentModification)

	o, err := f.orders.Accept(ctx, "o-1", Call{Actor: manager, Version: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(2), o.Version)
}

func TestOrderUseCase_ConcurrentSameVersion(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.seedOrder(t, "o-1", entities.OrderStatusNew)

	var wg sync.WaitGroup
	results := make([]error, 2)
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, results[0] = f.orders.Accept(ctx, "o-1", Call{Actor: manager, Version: 1})
	}()
	go func() {
		defer wg.Done()
		_, results[1] = f.orders.Reject(ctx, "o-1", Call{Actor: owner, Version: 1})
	}()
	wg.Wait()

	var ok, conflicts int
	for _, err := range results {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, errs.ErrConcurrentModification):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, conflicts)
}

func TestOrderUseCase_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("missing consumer", func(t *testing.T) {
		f := newFixture()
		_, err := f.orders.Submit(ctx, entities.Order{Items: []entities.OrderItem{{ProductRef: "a", Qty: 1}}})
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("bad items", func(t *testing.T) {
		f := newFixture()
		bad := [][]entities.OrderItem{
			nil,
			{{ProductRef: " ", Qty: 1}},
			{{ProductRef: "a", Qty: 0}},
			{{ProductRef: "a", Qty: 1, UnitPrice: -1}},
		}
		for _, items := range bad {
			_, err := f.orders.Submit(ctx, entities.Order{ConsumerID: "c", Items: items})
			assert.ErrorIs(t, err, errs.ErrValidation)
		}
	})

	t.Run("created as NEW with generated id", func(t *testing.T) {
		f := newFixture()
		o, err := f.orders.Submit(ctx, entities.Order{
			ConsumerID: " c-1 ",
			Status:     entities.OrderStatusCompleted,
			Items:      []entities.OrderItem{{ProductRef: "a", Qty: 3, UnitPrice: 2}},
		})
		require.NoError(t, err)
		assert.NotEmpty(t, o.ID)
		assert.Equal(t, "c-1", o.ConsumerID)
		assert.Equal(t, entities.OrderStatusNew, o.Status)
		assert.Equal(t, int64(1), o.Version)
		assert.Equal(t, 6.0, o.TotalAmount())
	})
}

func TestOrderUseCase_AmendItems(t *testing.T) {
	ctx := context.Background()
	items := []entities.OrderItem{{ProductRef: "sku-9", Qty: 1, UnitPrice: 4}}

	t.Run("open order", func(t *testing.T) {
		f := newFixture()
		f.seedOrder(t, "o-1", entities.OrderStatusInProgress)
		o, err := f.orders.AmendItems(ctx, "o-1", as(manager), items)
		require.NoError(t, err)
		assert.Equal(t, items, o.Items)
		assert.Equal(t, entities.OrderStatusInProgress, o.Status)
	})

	for _, status := range []entities.OrderStatus{entities.OrderStatusCompleted, entities.OrderStatusRejected} {
		t.Run("frozen when "+string(status), func(t *testing.T) {
			f := newFixture()
			seeded := f.seedOrder(t, "o-1", status)
			_, err := f.orders.AmendItems(ctx, "o-1", as(owner), items)
			assert.ErrorIs(t, err, errs.ErrInvalidTransition)
			after, _ := f.store.Orders.Get(ctx, "o-1")
			assert.Equal(t, seeded.Items, after.Items)
		})
	}
}

func TestOrderUseCase_Reads(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.seedOrder(t, "o-1", entities.OrderStatusNew)
	f.seedOrder(t, "o-2", entities.OrderStatusCompleted)

	_, err := f.orders.GetByID(ctx, "missing", sales)
	assert.ErrorIs(t, err, errs.ErrNotFound)
	_, err = f.orders.GetByID(ctx, " ", sales)
	assert.ErrorIs(t, err, errs.ErrValidation)

	list, err := f.orders.List(ctx, sales, entities.Filter{Status: "completed"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "o-2", list[0].ID)

	_, err = f.orders.List(ctx, entities.Actor{Role: "GUEST"}, entities.Filter{})
	assert.ErrorIs(t, err, errs.ErrPermissionDenied)
}

func TestOrderUseCase_Observers(t *testing.T) {
	ctx := context.Background()

	t.Run("success publishes and records", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		rec := mock_interfaces.NewMockITransitionRecorder(ctrl)
		pub := mock_interfaces.NewMockIEventPublisher(ctrl)
		f := newFixture()
		f.seedOrder(t, "o-1", entities.OrderStatusNew)
		uc := NewOrderUseCase(f.store.Orders, Observers{Events: pub, Recorder: rec})

		rec.EXPECT().Observe("order", "order:accept", gomock.Nil())
		pub.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, ev entities.LifecycleEvent) error {
			assert.Equal(t, "o-1", ev.EntityID)
			assert.Equal(t, "NEW", ev.From)
			assert.Equal(t, "IN_PROGRESS", ev.To)
			assert.Equal(t, int64(2), ev.Version)
			assert.Equal(t, manager.StaffID, ev.ActorID)
			return errors.New("redis down")
		})

		_, err := uc.Accept(ctx, "o-1", as(manager))
		require.NoError(t, err, "a failed publish does not fail the transition")
	})

	t.Run("failure records only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		rec := mock_interfaces.NewMockITransitionRecorder(ctrl)
		pub := mock_interfaces.NewMockIEventPublisher(ctrl)
		f := newFixture()
		f.seedOrder(t, "o-1", entities.OrderStatusNew)
		uc := NewOrderUseCase(f.store.Orders, Observers{Events: pub, Recorder: rec})

		rec.EXPECT().Observe("order", "order:complete", gomock.Not(gomock.Nil()))

		_, err := uc.Complete(ctx, "o-1", as(manager))
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestOrderUseCase_StoreErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("get error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEntityStore[entities.Order](ctrl)
		uc := NewOrderUseCase(repo, Observers{})

		repo.EXPECT().Get(gomock.Any(), "o-1").Return(entities.Order{}, errors.New("db"))

		_, err := uc.Accept(ctx, "o-1", as(owner))
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("update loses the race", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEntityStore[entities.Order](ctrl)
		uc := NewOrderUseCase(repo, Observers{})

		cur := entities.Order{ID: "o-1", Status: entities.OrderStatusNew, Version: 3}
		repo.EXPECT().Get(gomock.Any(), "o-1").Return(cur, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, o entities.Order) (entities.Order, error) {
			assert.Equal(t, int64(3), o.Version, "update carries the version that was read")
			assert.Equal(t, entities.OrderStatusInProgress, o.Status)
			return entities.Order{}, errs.Conflict("order", "o-1", 3, 4)
		})

		_, err := uc.Accept(ctx, "o-1", as(owner))
		assert.ErrorIs(t, err, errs.ErrConcurrentModification)
	})

	t.Run("denied before any read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEntityStore[entities.Order](ctrl)
		uc := NewOrderUseCase(repo, Observers{})

		_, err := uc.Reject(ctx, "o-1", as(sales))
		assert.ErrorIs(t, err, errs.ErrPermissionDenied)
	})
}
