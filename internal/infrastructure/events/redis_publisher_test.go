package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"supplyops/internal/domain/entities"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return client, mr
}

func receive(t *testing.T, client *redis.Client, channel string, publish func()) *redis.Message {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	sub := client.Subscribe(ctx, channel)
	defer sub.Close()
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	publish()

	msg, err := sub.ReceiveMessage(ctx)
	require.NoError(t, err)
	return msg
}

func TestRedisPublisher_PublishesJSON(t *testing.T) {
	client, _ := newClient(t)
	p := NewRedisPublisher(client, "")

	ev := entities.LifecycleEvent{
		Entity:   "complaint",
		EntityID: "1",
		Action:   "complaint:escalate",
		From:     "OPEN",
		To:       "ESCALATED",
		Version:  2,
		ActorID:  "staff-manager",
		Role:     entities.RoleManager,
		At:       time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC),
	}

	msg := receive(t, client, DefaultChannel, func() {
		require.NoError(t, p.Publish(context.Background(), ev))
	})
	assert.Equal(t, DefaultChannel, msg.Channel)

	var got entities.LifecycleEvent
	require.NoError(t, json.Unmarshal([]byte(msg.Payload), &got))
	assert.True(t, ev.At.Equal(got.At))
	got.At = ev.At
	assert.Equal(t, ev, got)
}

func TestRedisPublisher_CustomChannel(t *testing.T) {
	client, _ := newClient(t)
	p := NewRedisPublisher(client, "ops.events")

	msg := receive(t, client, "ops.events", func() {
		require.NoError(t, p.Publish(context.Background(), entities.LifecycleEvent{Entity: "order", EntityID: "101"}))
	})
	assert.Contains(t, msg.Payload, `"entity_id":"101"`)
}

func TestRedisPublisher_ServerDown(t *testing.T) {
	client, mr := newClient(t)
	p := NewRedisPublisher(client, "")
	mr.Close()

	err := p.Publish(context.Background(), entities.LifecycleEvent{Entity: "order"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), DefaultChannel)
}
