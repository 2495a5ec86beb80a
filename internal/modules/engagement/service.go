// Package engagement serves the citizen engagement and well-being section.
package engagement

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/cityble/civicpulse/internal/domain"
	"github.com/cityble/civicpulse/internal/modules/environment"
	"github.com/cityble/civicpulse/internal/telemetry"
)

// Gauge is a 0-100 gauge payload
type Gauge struct {
	Title string  `json:"title"`
	Value float64 `json:"value"`
	Max   float64 `json:"max"`
}

// Overview is the engagement section payload
type Overview struct {
	Timestamp         time.Time                 `json:"timestamp"`
	Hub               domain.EngagementStats    `json:"hub"`
	ParticipationRate float64                   `json:"participation_rate_pct"`
	WellBeing         Gauge                     `json:"well_being"`
	Empowerment       Gauge                     `json:"empowerment"`
	Demographics      []domain.DemographicGroup `json:"demographics"`
	BehaviorChange    environment.TrendSeries   `json:"behavior_change"`
}

// Service builds engagement payloads from fresh telemetry
type Service struct {
	gen *telemetry.Generator
	log zerolog.Logger
}

// NewService creates a new engagement service
func NewService(gen *telemetry.Generator, log zerolog.Logger) *Service {
	return &Service{
		gen: gen,
		log: log.With().Str("service", "engagement").Logger(),
	}
}

// Overview renders a fresh engagement section payload
func (s *Service) Overview() Overview {
	metrics := s.gen.BaseMetrics()

	return Overview{
		Timestamp:         time.Now(),
		Hub:               s.gen.EngagementStats(),
		ParticipationRate: metrics.ParticipationRate,
		WellBeing:         Gauge{Title: "Well-being Score", Value: metrics.WellBeingIndex, Max: 100},
		Empowerment:       Gauge{Title: "Empowerment Score", Value: metrics.EmpowermentScore, Max: 100},
		Demographics:      metrics.Groups,
		BehaviorChange:    environment.BuildTrendSeries(s.gen.DailySeries("behavior_change", 90)),
	}
}
