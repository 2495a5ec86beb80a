package engagement

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cityble/civicpulse/internal/telemetry"
)

func TestService_Overview(t *testing.T) {
	svc := NewService(telemetry.New(11, zerolog.Nop()), zerolog.Nop())

	overview := svc.Overview()

	assert.False(t, overview.Timestamp.IsZero())
	assert.GreaterOrEqual(t, overview.Hub.ActiveParticipants, 500)
	assert.LessOrEqual(t, overview.Hub.ActiveParticipants, 5000)
	assert.GreaterOrEqual(t, overview.Hub.DataContributions, 10000)

	assert.GreaterOrEqual(t, overview.ParticipationRate, 5.0)
	assert.Less(t, overview.ParticipationRate, 25.0)

	assert.Equal(t, "Well-being Score", overview.WellBeing.Title)
	assert.Equal(t, 100.0, overview.WellBeing.Max)
	assert.GreaterOrEqual(t, overview.WellBeing.Value, 50.0)
	assert.Less(t, overview.WellBeing.Value, 85.0)

	assert.Equal(t, "Empowerment Score", overview.Empowerment.Title)
	assert.GreaterOrEqual(t, overview.Empowerment.Value, 40.0)
	assert.Less(t, overview.Empowerment.Value, 75.0)

	require.Len(t, overview.Demographics, 8)
	for _, group := range overview.Demographics {
		assert.NotEmpty(t, group.Group)
		assert.GreaterOrEqual(t, group.Participation, 5.0)
		assert.Less(t, group.Participation, 30.0)
	}

	assert.Len(t, overview.BehaviorChange.Series.Points, 90)
	assert.NotEmpty(t, overview.BehaviorChange.Trend)
}
