package interfaces

import "context"

// ILocker serializes work per key. Acquire returns a release func that must be
// called exactly once. It never waits past ctx.
//
//go:generate mockgen -source=locker_interface.go -destination=mocks/mock_locker.go -package=mock_interfaces
type ILocker interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}
