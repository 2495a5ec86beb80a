package events

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_EmitReachesSubscribers(t *testing.T) {
	bus := NewBus(zerolog.Nop())

	var received []*Event
	bus.Subscribe(func(e *Event) {
		received = append(received, e)
	})

	bus.Emit(SnapshotRefreshed, "scheduler", map[string]interface{}{"tick": 1})

	require.Len(t, received, 1)
	assert.Equal(t, SnapshotRefreshed, received[0].Type)
	assert.Equal(t, "scheduler", received[0].Module)
	assert.Equal(t, 1, received[0].Data["tick"])
	assert.False(t, received[0].Timestamp.IsZero())
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := NewBus(zerolog.Nop())

	calls := 0
	id := bus.Subscribe(func(e *Event) { calls++ })

	bus.Emit(SnapshotRefreshed, "scheduler", nil)
	bus.Unsubscribe(id)
	bus.Emit(SnapshotRefreshed, "scheduler", nil)

	assert.Equal(t, 1, calls)
}

func TestBus_SubscriberCount(t *testing.T) {
	bus := NewBus(zerolog.Nop())
	assert.Equal(t, 0, bus.SubscriberCount())

	id := bus.Subscribe(func(e *Event) {})
	assert.Equal(t, 1, bus.SubscriberCount())

	bus.Unsubscribe(id)
	assert.Equal(t, 0, bus.SubscriberCount())
}

func TestBus_EmitError(t *testing.T) {
	bus := NewBus(zerolog.Nop())

	var got *Event
	bus.Subscribe(func(e *Event) { got = e })

	bus.EmitError("server", errors.New("boom"), map[string]interface{}{"path": "/api/live"})

	require.NotNil(t, got)
	assert.Equal(t, ErrorOccurred, got.Type)
	assert.Equal(t, "boom", got.Data["error"])
}
