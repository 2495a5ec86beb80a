package scheduler

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cityble/civicpulse/internal/domain"
	"github.com/cityble/civicpulse/internal/events"
	"github.com/cityble/civicpulse/internal/telemetry"
)

func TestRefreshJob_EmitsSnapshotEvent(t *testing.T) {
	bus := events.NewBus(zerolog.Nop())
	job := NewRefreshJob(telemetry.New(21, zerolog.Nop()), bus, zerolog.Nop())

	var got *events.Event
	bus.Subscribe(func(e *events.Event) { got = e })

	require.NoError(t, job.Run())

	require.NotNil(t, got)
	assert.Equal(t, events.SnapshotRefreshed, got.Type)
	assert.Equal(t, "scheduler", got.Module)

	snapshot, ok := got.Data["snapshot"].(domain.Snapshot)
	require.True(t, ok, "Event should carry the generated snapshot")
	assert.Len(t, snapshot.Zones, 5)

	sdg, ok := got.Data["indicators"].(map[string]float64)
	require.True(t, ok, "Event should carry the synthesized indicators")
	assert.Len(t, sdg, 8)

	rate, ok := got.Data["policy_implementation_rate"].(float64)
	require.True(t, ok)
	assert.GreaterOrEqual(t, rate, 0.0)
	assert.LessOrEqual(t, rate, 100.0)
}

func TestRefreshJob_Name(t *testing.T) {
	job := NewRefreshJob(telemetry.New(1, zerolog.Nop()), events.NewBus(zerolog.Nop()), zerolog.Nop())
	assert.Equal(t, "snapshot_refresh", job.Name())
}
