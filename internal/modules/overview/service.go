// Package overview composes the headline city metrics and the SDG progress
// snapshot shown on the dashboard landing section.
package overview

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/cityble/civicpulse/internal/domain"
	"github.com/cityble/civicpulse/internal/indicators"
	"github.com/cityble/civicpulse/internal/telemetry"
)

// KPITile is one headline metric with its short-term delta and display unit
type KPITile struct {
	Label string          `json:"label"`
	Value float64         `json:"value"`
	Delta float64         `json:"delta"`
	Unit  indicators.Unit `json:"unit"`
}

// SDGProgress is one indicator prepared for display: the raw synthesized
// value plus the clamped 0-100 progress used by the progress bar.
type SDGProgress struct {
	Name     string          `json:"name"`
	Raw      float64         `json:"raw"`
	Progress float64         `json:"progress"`
	Unit     indicators.Unit `json:"unit"`
}

// Summary is the overview section payload
type Summary struct {
	Timestamp time.Time     `json:"timestamp"`
	Headline  []KPITile     `json:"headline"`
	SDG       []SDGProgress `json:"sdg_progress"`
}

// Service builds overview summaries from fresh telemetry
type Service struct {
	gen *telemetry.Generator
	log zerolog.Logger
}

// NewService creates a new overview service
func NewService(gen *telemetry.Generator, log zerolog.Logger) *Service {
	return &Service{
		gen: gen,
		log: log.With().Str("service", "overview").Logger(),
	}
}

// Summary renders a fresh overview summary
func (s *Service) Summary() Summary {
	metrics := s.gen.BaseMetrics()
	deltas := s.gen.Deltas()

	return Summary{
		Timestamp: time.Now(),
		Headline:  buildHeadline(metrics, deltas),
		SDG:       BuildSDGProgress(metrics),
	}
}

// BuildSDGProgress synthesizes the indicators for the given metrics and
// prepares them for display. Raw values are carried through unchanged; the
// progress value is clamped to [0,100] for the progress bars.
func BuildSDGProgress(metrics domain.BaseMetrics) []SDGProgress {
	values := indicators.ComputeSDGIndicators(metrics)

	progress := make([]SDGProgress, 0, len(indicators.Names))
	for _, name := range indicators.Names {
		raw := values[name]
		progress = append(progress, SDGProgress{
			Name:     name,
			Raw:      raw,
			Progress: indicators.ClampProgress(raw),
			Unit:     indicators.UnitScore,
		})
	}
	return progress
}

func buildHeadline(metrics domain.BaseMetrics, deltas domain.MetricDeltas) []KPITile {
	return []KPITile{
		{Label: "Average AQI", Value: float64(metrics.AirQualityIndex), Delta: float64(deltas.AQI), Unit: indicators.UnitIndex},
		{Label: "Participation Rate", Value: metrics.ParticipationRate, Delta: deltas.Participation, Unit: indicators.UnitPercent},
		{Label: "Well-being Index", Value: metrics.WellBeingIndex, Delta: deltas.WellBeing, Unit: indicators.UnitScore},
		{Label: "CO2 Level", Value: metrics.CO2Level, Delta: deltas.CO2, Unit: indicators.UnitPPM},
	}
}
