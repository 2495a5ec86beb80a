package mobility

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cityble/civicpulse/internal/telemetry"
)

func TestService_Overview(t *testing.T) {
	svc := NewService(telemetry.New(7, zerolog.Nop()), zerolog.Nop())

	overview := svc.Overview()

	assert.False(t, overview.Timestamp.IsZero())
	assert.Len(t, overview.Traffic.Series.Points, 30)
	assert.NotEmpty(t, overview.Traffic.Trend)

	assert.GreaterOrEqual(t, overview.Transit.OnTimePerformance, 80.0)
	assert.Less(t, overview.Transit.OnTimePerformance, 98.0)
	assert.GreaterOrEqual(t, overview.Transit.Satisfaction, 65.0)
	assert.Less(t, overview.Transit.Satisfaction, 90.0)

	require.NotEmpty(t, overview.Issues)
	for _, issue := range overview.Issues {
		assert.NotEmpty(t, issue.Type)
		assert.GreaterOrEqual(t, issue.Reports7d, 5)
		assert.LessOrEqual(t, issue.Reports7d, 50)
	}

	assert.GreaterOrEqual(t, overview.Connectivity.WiFiCoverage, 70.0)
	assert.Less(t, overview.Connectivity.WiFiCoverage, 95.0)
	assert.GreaterOrEqual(t, overview.Connectivity.BroadbandAccess, 85.0)
	assert.Less(t, overview.Connectivity.BroadbandAccess, 99.0)
}
