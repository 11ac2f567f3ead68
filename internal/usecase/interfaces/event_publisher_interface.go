package interfaces

import (
	"context"

	"supplyops/internal/domain/entities"
)

// IEventPublisher fans out lifecycle events after a transition is stored.
// Delivery is best effort; a failed publish never undoes the transition.
//
//go:generate mockgen -source=event_publisher_interface.go -destination=mocks/mock_event_publisher.go -package=mock_interfaces
type IEventPublisher interface {
	Publish(ctx context.Context, event entities.LifecycleEvent) error
}
