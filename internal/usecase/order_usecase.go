package usecase

import (
	"context"
	"strings"

	"supplyops/internal/domain/entities"
	"supplyops/internal/domain/errs"
	"supplyops/internal/domain/permissions"
	"supplyops/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const orderKind = "order"

// IOrderUseCase exposes the order lifecycle:
//
//	NEW -> IN_PROGRESS -> COMPLETED
//	NEW -> REJECTED
//
// COMPLETED and REJECTED are terminal; items are frozen there too.
type IOrderUseCase interface {
	Submit(ctx context.Context, order entities.Order) (entities.Order, error)
	Accept(ctx context.Context, orderID string, call Call) (entities.Order, error)
	Reject(ctx context.Context, orderID string, call Call) (entities.Order, error)
	Complete(ctx context.Context, orderID string, call Call) (entities.Order, error)
	AmendItems(ctx context.Context, orderID string, call Call, items []entities.OrderItem) (entities.Order, error)
	GetByID(ctx context.Context, orderID string, actor entities.Actor) (entities.Order, error)
	List(ctx context.Context, actor entities.Actor, filter entities.Filter) ([]entities.Order, error)
}

var orderEdges = map[permissions.Action]edge[entities.OrderStatus]{
	permissions.OrderAccept:   {from: []entities.OrderStatus{entities.OrderStatusNew}, to: entities.OrderStatusInProgress},
	permissions.OrderReject:   {from: []entities.OrderStatus{entities.OrderStatusNew}, to: entities.OrderStatusRejected},
	permissions.OrderComplete: {from: []entities.OrderStatus{entities.OrderStatusInProgress}, to: entities.OrderStatusCompleted},
}

type OrderUseCase struct {
	repo interfaces.IEntityStore[entities.Order]
	obs  Observers
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IEntityStore[entities.Order], obs Observers) *OrderUseCase {
	return &OrderUseCase{repo: repo, obs: obs}
}

// Submit records a consumer order. It is the intake boundary and carries no
// staff permission.
func (u *OrderUseCase) Submit(ctx context.Context, order entities.Order) (entities.Order, error) {
	order.ConsumerID = strings.TrimSpace(order.ConsumerID)
	if order.ConsumerID == "" {
		return entities.Order{}, errs.Invalid("consumer_id", "required")
	}
	if err := validateItems(order.Items); err != nil {
		return entities.Order{}, err
	}
	order.ID = strings.TrimSpace(order.ID)
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	order.Status = entities.OrderStatusNew
	order.CreatedAt = nowUTC()
	return u.repo.Create(ctx, order)
}

func (u *OrderUseCase) Accept(ctx context.Context, orderID string, call Call) (entities.Order, error) {
	return u.transition(ctx, orderID, call, permissions.OrderAccept)
}

func (u *OrderUseCase) Reject(ctx context.Context, orderID string, call Call) (entities.Order, error) {
	return u.transition(ctx, orderID, call, permissions.OrderReject)
}

func (u *OrderUseCase) Complete(ctx context.Context, orderID string, call Call) (entities.Order, error) {
	return u.transition(ctx, orderID, call, permissions.OrderComplete)
}

func (u *OrderUseCase) transition(ctx context.Context, orderID string, call Call, action permissions.Action) (entities.Order, error) {
	ev := event(orderKind, orderID, string(action), call.Actor)
	before, updated, err := u.apply(ctx, orderID, call, action)
	if err == nil {
		ev.From, ev.To, ev.Version = string(before.Status), string(updated.Status), updated.Version
	}
	u.obs.done(ctx, ev, err)
	return updated, err
}

func (u *OrderUseCase) apply(ctx context.Context, orderID string, call Call, action permissions.Action) (entities.Order, entities.Order, error) {
	if err := authorize(call.Actor, action); err != nil {
		return entities.Order{}, entities.Order{}, err
	}
	e := orderEdges[action]
	return mutate(ctx, u.repo, orderKind, orderID, call.Version, func(o *entities.Order) error {
		if !e.allows(o.Status) {
			return errs.Transition(orderKind, o.ID, string(o.Status), string(e.to))
		}
		o.Status = e.to
		return nil
	})
}

// AmendItems replaces the item list of a non-terminal order.
func (u *OrderUseCase) AmendItems(ctx context.Context, orderID string, call Call, items []entities.OrderItem) (entities.Order, error) {
	ev := event(orderKind, orderID, string(permissions.OrderAmend), call.Actor)
	updated, err := u.amend(ctx, orderID, call, items)
	if err == nil {
		ev.From, ev.To, ev.Version = string(updated.Status), string(updated.Status), updated.Version
	}
	u.obs.done(ctx, ev, err)
	return updated, err
}

func (u *OrderUseCase) amend(ctx context.Context, orderID string, call Call, items []entities.OrderItem) (entities.Order, error) {
	if err := authorize(call.Actor, permissions.OrderAmend); err != nil {
		return entities.Order{}, err
	}
	if err := validateItems(items); err != nil {
		return entities.Order{}, err
	}
	_, updated, err := mutate(ctx, u.repo, orderKind, orderID, call.Version, func(o *entities.Order) error {
		if o.Status.Terminal() {
			return errs.Transition(orderKind, o.ID, string(o.Status), "AMEND_ITEMS")
		}
		o.Items = append([]entities.OrderItem(nil), items...)
		return nil
	})
	return updated, err
}

func (u *OrderUseCase) GetByID(ctx context.Context, orderID string, actor entities.Actor) (entities.Order, error) {
	if err := authorize(actor, permissions.ViewEntity); err != nil {
		return entities.Order{}, err
	}
	orderID, err := requireID("order_id", orderID)
	if err != nil {
		return entities.Order{}, err
	}
	return u.repo.Get(ctx, orderID)
}

func (u *OrderUseCase) List(ctx context.Context, actor entities.Actor, filter entities.Filter) ([]entities.Order, error) {
	if err := authorize(actor, permissions.ViewEntity); err != nil {
		return nil, err
	}
	return u.repo.List(ctx, filter)
}

func validateItems(items []entities.OrderItem) error {
	if len(items) == 0 {
		return errs.Invalid("items", "at least one item is required")
	}
	for _, it := range items {
		if strings.TrimSpace(it.ProductRef) == "" {
			return errs.Invalid("items.product_ref", "required")
		}
		if it.Qty <= 0 {
			return errs.Invalid("items.qty", "must be greater than zero")
		}
		if it.UnitPrice < 0 {
			return errs.Invalid("items.unit_price", "must not be negative")
		}
	}
	return nil
}
