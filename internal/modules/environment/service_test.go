package environment

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cityble/civicpulse/internal/domain"
	"github.com/cityble/civicpulse/internal/telemetry"
	"github.com/cityble/civicpulse/pkg/formulas"
)

func TestBuildTrendSeries(t *testing.T) {
	now := time.Now()
	points := make([]domain.TimePoint, 10)
	for i := range points {
		points[i] = domain.TimePoint{Date: now.AddDate(0, 0, i-9), Value: float64(i + 1)}
	}
	series := domain.TimeSeries{Name: "energy_consumption", Points: points}

	trend := BuildTrendSeries(series)

	assert.Equal(t, 10.0, trend.Latest)
	assert.Equal(t, 1.0, trend.LatestDelta)
	// 10 samples, 7-day window => 4 smoothed points; last covers 4..10
	require.Len(t, trend.Trend, 10-formulas.DefaultTrendWindow+1)
	assert.InDelta(t, 7.0, trend.Trend[len(trend.Trend)-1], 1e-9)
}

func TestService_Overview(t *testing.T) {
	svc := NewService(telemetry.New(5, zerolog.Nop()), zerolog.Nop())

	overview := svc.Overview()

	assert.Len(t, overview.Zones, 5)
	assert.Len(t, overview.Energy.Series.Points, 30)
	assert.Len(t, overview.Waste.Series.Points, 30)
	assert.NotEmpty(t, overview.Energy.Trend)
	assert.GreaterOrEqual(t, overview.Biodiversity, 40.0)
	assert.Less(t, overview.Biodiversity, 75.0)
}

func TestService_AirQuality(t *testing.T) {
	svc := NewService(telemetry.New(5, zerolog.Nop()), zerolog.Nop())

	aq := svc.AirQuality()

	require.Len(t, aq.Zones, 5)
	assert.False(t, aq.Timestamp.IsZero())
}
