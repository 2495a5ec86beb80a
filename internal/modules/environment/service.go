// Package environment serves the environmental monitoring section: zone air
// quality, utility trends and the biodiversity gauge.
package environment

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/cityble/civicpulse/internal/domain"
	"github.com/cityble/civicpulse/internal/telemetry"
	"github.com/cityble/civicpulse/pkg/formulas"
)

// TrendSeries is a chart payload: the raw daily series, a smoothed trend
// line, the latest reading and the day-over-day delta.
type TrendSeries struct {
	Series      domain.TimeSeries `json:"series"`
	Trend       []float64         `json:"trend"`
	Latest      float64           `json:"latest"`
	LatestDelta float64           `json:"latest_delta"`
}

// AirQuality is the zone-level air quality payload
type AirQuality struct {
	Timestamp time.Time            `json:"timestamp"`
	Zones     []domain.ZoneReading `json:"zones"`
}

// Overview is the environment section payload
type Overview struct {
	Timestamp    time.Time            `json:"timestamp"`
	Zones        []domain.ZoneReading `json:"zones"`
	Energy       TrendSeries          `json:"energy_consumption"`
	Waste        TrendSeries          `json:"waste_recycling"`
	Biodiversity float64              `json:"biodiversity_score"`
}

// Service builds environment payloads from fresh telemetry
type Service struct {
	gen *telemetry.Generator
	log zerolog.Logger
}

// NewService creates a new environment service
func NewService(gen *telemetry.Generator, log zerolog.Logger) *Service {
	return &Service{
		gen: gen,
		log: log.With().Str("service", "environment").Logger(),
	}
}

// Overview renders a fresh environment section payload
func (s *Service) Overview() Overview {
	return Overview{
		Timestamp:    time.Now(),
		Zones:        s.gen.ZoneReadings(),
		Energy:       BuildTrendSeries(s.gen.DailySeries("energy_consumption", 30)),
		Waste:        BuildTrendSeries(s.gen.DailySeries("waste_recycling", 30)),
		Biodiversity: s.gen.Biodiversity(),
	}
}

// AirQuality renders fresh zone readings
func (s *Service) AirQuality() AirQuality {
	return AirQuality{
		Timestamp: time.Now(),
		Zones:     s.gen.ZoneReadings(),
	}
}

// BuildTrendSeries wraps a daily series with its smoothed trend and latest
// delta for chart rendering.
func BuildTrendSeries(series domain.TimeSeries) TrendSeries {
	values := series.Values()
	return TrendSeries{
		Series:      series,
		Trend:       formulas.MovingAverage(values, formulas.DefaultTrendWindow),
		Latest:      formulas.Latest(values),
		LatestDelta: formulas.LatestDelta(values),
	}
}
