package formulas

import (
	"github.com/markcheno/go-talib"
)

// DefaultTrendWindow is the smoothing window applied to daily chart series.
const DefaultTrendWindow = 7

// MovingAverage calculates the simple moving average of a series.
// Returns nil if the series is shorter than the window.
func MovingAverage(values []float64, window int) []float64 {
	if window < 1 || len(values) < window {
		return nil
	}

	// talib pads the warm-up period with zeros; trim it so callers get
	// one smoothed point per fully covered window.
	sma := talib.Sma(values, window)
	return sma[window-1:]
}

// LatestDelta returns the change between the last two points of a series, or 0
// when the series is too short to compare.
func LatestDelta(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	return values[len(values)-1] - values[len(values)-2]
}

// Latest returns the final point of a series, or 0 for an empty series.
func Latest(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return values[len(values)-1]
}
