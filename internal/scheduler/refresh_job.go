package scheduler

import (
	"github.com/rs/zerolog"

	"github.com/cityble/civicpulse/internal/events"
	"github.com/cityble/civicpulse/internal/indicators"
	"github.com/cityble/civicpulse/internal/telemetry"
)

// RefreshJob regenerates a dashboard snapshot and announces it on the event
// bus. Each tick is an independent render; no snapshot is retained between
// ticks. SSE and WebSocket clients pick the event up and push fresh data.
type RefreshJob struct {
	gen *telemetry.Generator
	bus *events.Bus
	log zerolog.Logger
}

// NewRefreshJob creates a new snapshot refresh job
func NewRefreshJob(gen *telemetry.Generator, bus *events.Bus, log zerolog.Logger) *RefreshJob {
	return &RefreshJob{
		gen: gen,
		bus: bus,
		log: log.With().Str("job", "snapshot_refresh").Logger(),
	}
}

// Name returns the job name
func (j *RefreshJob) Name() string {
	return "snapshot_refresh"
}

// Run generates a fresh snapshot and emits a SnapshotRefreshed event
func (j *RefreshJob) Run() error {
	snapshot := j.gen.Snapshot()
	sdg := indicators.ComputeSDGIndicators(snapshot.Metrics)

	j.bus.Emit(events.SnapshotRefreshed, "scheduler", map[string]interface{}{
		"snapshot":                   snapshot,
		"indicators":                 sdg,
		"policy_implementation_rate": indicators.PolicyImplementationRate(snapshot.Metrics.Policies),
	})
	return nil
}
