package policy

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cityble/civicpulse/internal/domain"
	"github.com/cityble/civicpulse/internal/indicators"
	"github.com/cityble/civicpulse/internal/telemetry"
)

func TestService_Overview(t *testing.T) {
	svc := NewService(telemetry.New(13, zerolog.Nop()), zerolog.Nop())

	overview := svc.Overview()

	require.Len(t, overview.Policies, 4)
	assert.False(t, overview.Timestamp.IsZero())

	// The rate must match the records shown in the same payload
	assert.Equal(t, indicators.PolicyImplementationRate(overview.Policies), overview.ImplementationRate)
	assert.GreaterOrEqual(t, overview.ImplementationRate, 0.0)
	assert.LessOrEqual(t, overview.ImplementationRate, 100.0)
}

func TestService_Overview_StatusesComeFromCatalog(t *testing.T) {
	svc := NewService(telemetry.New(13, zerolog.Nop()), zerolog.Nop())

	valid := map[domain.PolicyStatus]bool{
		domain.PolicyProposed:    true,
		domain.PolicyUnderReview: true,
		domain.PolicyAdopted:     true,
		domain.PolicyImplemented: true,
	}

	for i := 0; i < 20; i++ {
		for _, p := range svc.Overview().Policies {
			assert.True(t, valid[p.Status], "Unexpected status %q", p.Status)
		}
	}
}
