package interfaces

import (
	"context"

	"supplyops/internal/domain/entities"
)

// IEntityStore is the keyed collection backing one entity kind.
//
// Implementations must:
//   - return errs.ErrNotFound (wrapped) for unknown ids
//   - assign Version 1 on Create and reject duplicate ids with errs.ErrConcurrentModification
//   - on Update, compare rec.GetVersion() with the stored version and fail with
//     errs.ErrConcurrentModification on mismatch; otherwise store rec with Version+1
//   - never share slices with callers
//
//go:generate mockgen -source=entity_store_interface.go -destination=mocks/mock_entity_store.go -package=mock_interfaces
type IEntityStore[T entities.Record[T]] interface {
	Create(ctx context.Context, rec T) (T, error)
	Get(ctx context.Context, id string) (T, error)
	Update(ctx context.Context, rec T) (T, error)
	List(ctx context.Context, filter entities.Filter) ([]T, error)
}
