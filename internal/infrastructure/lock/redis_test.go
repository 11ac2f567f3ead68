package lock

import (
	"context"
	"errors"
	"testing"
	"time"

	"supplyops/internal/domain/errs"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisLocker(t *testing.T, retries int, delay time.Duration) (*RedisLocker, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisLocker(client, 2*time.Second, retries, delay), mr
}

func TestRedisLocker_AcquireAndRelease(t *testing.T) {
	l, mr := newRedisLocker(t, 0, time.Millisecond)

	release, err := l.Acquire(context.Background(), "escalation:1")
	require.NoError(t, err)

	key := redisKeyPrefix + "escalation:1"
	require.True(t, mr.Exists(key))
	assert.Equal(t, 2*time.Second, mr.TTL(key))

	release()
	assert.False(t, mr.Exists(key))

	// A second release is harmless.
	release()
}

func TestRedisLocker_HeldKeyRunsOutOfRetries(t *testing.T) {
	l, mr := newRedisLocker(t, 3, 5*time.Millisecond)
	ctx := context.Background()

	release, err := l.Acquire(ctx, "escalation:1")
	require.NoError(t, err)
	defer release()

	start := time.Now()
	_, err = l.Acquire(ctx, "escalation:1")
	assert.ErrorIs(t, err, errs.ErrConcurrentModification)
	assert.GreaterOrEqual(t, time.Since(start), 15*time.Millisecond)

	// The holder keeps its key.
	assert.True(t, mr.Exists(redisKeyPrefix+"escalation:1"))
}

func TestRedisLocker_WaitsForRelease(t *testing.T) {
	l, _ := newRedisLocker(t, 100, 5*time.Millisecond)
	ctx := context.Background()

	release, err := l.Acquire(ctx, "escalation:1")
	require.NoError(t, err)

	go func() {
		time.Sleep(30 * time.Millisecond)
		release()
	}()

	second, err := l.Acquire(ctx, "escalation:1")
	require.NoError(t, err)
	second()
}

func TestRedisLocker_DifferentKeysDoNotContend(t *testing.T) {
	l, _ := newRedisLocker(t, 0, time.Millisecond)
	ctx := context.Background()

	r1, err := l.Acquire(ctx, "escalation:1")
	require.NoError(t, err)
	defer r1()
	r2, err := l.Acquire(ctx, "escalation:2")
	require.NoError(t, err)
	defer r2()
}

func TestRedisLocker_ContextCancelledWhileWaiting(t *testing.T) {
	l, _ := newRedisLocker(t, 1000, 50*time.Millisecond)

	release, err := l.Acquire(context.Background(), "escalation:1")
	require.NoError(t, err)
	defer release()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = l.Acquire(ctx, "escalation:1")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, errors.Is(err, errs.ErrConcurrentModification))
}

func TestRedisLocker_StaleReleaseKeepsNewHolder(t *testing.T) {
	l, mr := newRedisLocker(t, 0, time.Millisecond)
	ctx := context.Background()
	key := redisKeyPrefix + "escalation:1"

	stale, err := l.Acquire(ctx, "escalation:1")
	require.NoError(t, err)

	// The first holder outlives its TTL and someone else takes the lock.
	mr.FastForward(3 * time.Second)
	require.False(t, mr.Exists(key))
	current, err := l.Acquire(ctx, "escalation:1")
	require.NoError(t, err)
	token, err := mr.Get(key)
	require.NoError(t, err)

	stale()
	got, err := mr.Get(key)
	require.NoError(t, err)
	assert.Equal(t, token, got)

	current()
	assert.False(t, mr.Exists(key))
}

func TestRedisLocker_ServerDown(t *testing.T) {
	l, mr := newRedisLocker(t, 5, time.Millisecond)
	mr.Close()

	_, err := l.Acquire(context.Background(), "escalation:1")
	require.Error(t, err)
	assert.False(t, errors.Is(err, errs.ErrConcurrentModification))
}
