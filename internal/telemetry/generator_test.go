package telemetry

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_BaseMetricsRanges(t *testing.T) {
	g := New(1, zerolog.Nop())

	for i := 0; i < 50; i++ {
		m := g.BaseMetrics()

		assert.GreaterOrEqual(t, m.AirQualityIndex, 10)
		assert.LessOrEqual(t, m.AirQualityIndex, 150)
		assert.GreaterOrEqual(t, m.ParticipationRate, 5.0)
		assert.Less(t, m.ParticipationRate, 25.0)
		assert.GreaterOrEqual(t, m.WellBeingIndex, 50.0)
		assert.Less(t, m.WellBeingIndex, 85.0)
		assert.GreaterOrEqual(t, m.EmpowermentScore, 40.0)
		assert.Less(t, m.EmpowermentScore, 75.0)
		assert.GreaterOrEqual(t, m.CO2Level, 415.0)
		assert.Less(t, m.CO2Level, 416.0)
		assert.Len(t, m.Groups, 8)
		assert.Len(t, m.Policies, 4)
	}
}

func TestGenerator_DeterministicUnderFixedSeed(t *testing.T) {
	a := New(42, zerolog.Nop()).BaseMetrics()
	b := New(42, zerolog.Nop()).BaseMetrics()

	// Record IDs are not seed-derived; compare the numeric readings.
	assert.Equal(t, a.AirQualityIndex, b.AirQualityIndex)
	assert.Equal(t, a.ParticipationRate, b.ParticipationRate)
	assert.Equal(t, a.WellBeingIndex, b.WellBeingIndex)
	assert.Equal(t, a.EmpowermentScore, b.EmpowermentScore)
	assert.Equal(t, a.CO2Level, b.CO2Level)
	assert.Equal(t, a.Groups, b.Groups)
}

func TestGenerator_ZoneReadings(t *testing.T) {
	g := New(7, zerolog.Nop())

	zones := g.ZoneReadings()

	require.Len(t, zones, 5)
	assert.Equal(t, "Zone A", zones[0].Zone)
	assert.Equal(t, "Zone E", zones[4].Zone)
	for _, z := range zones {
		assert.GreaterOrEqual(t, z.AQI, 10)
		assert.LessOrEqual(t, z.AQI, 150)
		assert.InDelta(t, 41.9, z.Lat, 0.1)
		assert.InDelta(t, 12.5, z.Lon, 0.1)
	}
}

func TestGenerator_DailySeries(t *testing.T) {
	g := New(7, zerolog.Nop())

	series := g.DailySeries("energy_consumption", 30)

	require.Len(t, series.Points, 30)
	assert.Equal(t, "energy_consumption", series.Name)

	// One sample per day, chronological, ending today
	for i := 1; i < len(series.Points); i++ {
		gap := series.Points[i].Date.Sub(series.Points[i-1].Date)
		assert.InDelta(t, 24.0, gap.Hours(), 1.5, "Samples should be roughly a day apart")
	}
	for _, p := range series.Points {
		assert.GreaterOrEqual(t, p.Value, 0.0)
		assert.Less(t, p.Value, 100.0)
	}
}

func TestGenerator_Policies(t *testing.T) {
	g := New(3, zerolog.Nop())

	policies := g.Policies()

	require.Len(t, policies, 4)
	seen := map[string]bool{}
	for _, p := range policies {
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Area)
		assert.NotEmpty(t, p.DataSource)
		assert.False(t, seen[p.ID], "Record IDs should be unique")
		seen[p.ID] = true
	}
}

func TestGenerator_Snapshot(t *testing.T) {
	g := New(9, zerolog.Nop())

	snap := g.Snapshot()

	assert.False(t, snap.GeneratedAt.IsZero())
	assert.Len(t, snap.Zones, 5)
	assert.Len(t, snap.Issues, 5)
	assert.Len(t, snap.AISystems, 3)
	assert.Len(t, snap.Energy.Points, 30)
	assert.Len(t, snap.BehaviorChange.Points, 90)
	assert.GreaterOrEqual(t, snap.Biodiversity, 40.0)
	assert.Less(t, snap.Biodiversity, 75.0)

	// Headline AQI is derived from the snapshot's own zone readings
	total := 0
	for _, z := range snap.Zones {
		total += z.AQI
	}
	assert.Equal(t, total/5, snap.Metrics.AirQualityIndex)
}
