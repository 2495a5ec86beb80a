package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPolicyStatus_IsImplemented(t *testing.T) {
	assert.True(t, PolicyImplemented.IsImplemented())
	assert.False(t, PolicyAdopted.IsImplemented())
	assert.False(t, PolicyUnderReview.IsImplemented())
	assert.False(t, PolicyProposed.IsImplemented())
}

func TestBaseMetrics_GroupParticipation(t *testing.T) {
	m := BaseMetrics{
		Groups: []DemographicGroup{
			{Group: "Age: 18-30", Participation: 12.5},
			{Group: "Age: 31-50", Participation: 20.0},
		},
	}

	assert.Equal(t, []float64{12.5, 20.0}, m.GroupParticipation())
}

func TestBaseMetrics_GroupParticipation_Empty(t *testing.T) {
	assert.Empty(t, BaseMetrics{}.GroupParticipation())
}

func TestTimeSeries_Values(t *testing.T) {
	now := time.Now()
	ts := TimeSeries{
		Name: "energy",
		Points: []TimePoint{
			{Date: now.AddDate(0, 0, -1), Value: 40},
			{Date: now, Value: 55},
		},
	}

	assert.Equal(t, []float64{40, 55}, ts.Values())
}
