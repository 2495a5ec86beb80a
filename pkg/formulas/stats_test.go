package formulas

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil), "Empty slice should return 0")
	assert.Equal(t, 15.0, Mean([]float64{10, 20}))
}

func TestStdDev_DegenerateInputs(t *testing.T) {
	assert.Equal(t, 0.0, StdDev(nil), "Empty slice should return 0")
	assert.Equal(t, 0.0, StdDev([]float64{42}), "Single sample has no spread")
}

func TestStdDev_IdenticalValues(t *testing.T) {
	assert.Equal(t, 0.0, StdDev([]float64{10, 10, 10, 10}))
}

func TestStdDev_SampleConvention(t *testing.T) {
	// Sample stddev of {2, 4, 4, 4, 5, 5, 7, 9} is sqrt(32/7)
	got := StdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	assert.InDelta(t, 2.13809, got, 0.0001)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-12.5, 0, 100))
	assert.Equal(t, 100.0, Clamp(180, 0, 100))
	assert.Equal(t, 65.0, Clamp(65, 0, 100))
}

func TestMovingAverage(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}

	got := MovingAverage(values, 3)

	assert.Equal(t, []float64{2, 3, 4}, got, "Windowed averages should drop the warm-up period")
}

func TestMovingAverage_ShortSeries(t *testing.T) {
	assert.Nil(t, MovingAverage([]float64{1, 2}, 3))
	assert.Nil(t, MovingAverage(nil, 7))
}

func TestLatestDelta(t *testing.T) {
	assert.Equal(t, 0.0, LatestDelta([]float64{5}))
	assert.InDelta(t, -2.5, LatestDelta([]float64{10, 12.5, 10}), 1e-9)
}

func TestLatest(t *testing.T) {
	assert.Equal(t, 0.0, Latest(nil))
	assert.Equal(t, 7.0, Latest([]float64{1, 7}))
}
