// Package mobility serves the infrastructure and mobility section: traffic
// congestion, transit performance, reported issues and digital connectivity.
package mobility

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/cityble/civicpulse/internal/domain"
	"github.com/cityble/civicpulse/internal/modules/environment"
	"github.com/cityble/civicpulse/internal/telemetry"
)

// Overview is the mobility section payload
type Overview struct {
	Timestamp    time.Time                    `json:"timestamp"`
	Traffic      environment.TrendSeries      `json:"traffic_congestion"`
	Transit      domain.TransitPerformance    `json:"transit"`
	Issues       []domain.InfrastructureIssue `json:"issues"`
	Connectivity domain.DigitalConnectivity   `json:"connectivity"`
}

// Service builds mobility payloads from fresh telemetry
type Service struct {
	gen *telemetry.Generator
	log zerolog.Logger
}

// NewService creates a new mobility service
func NewService(gen *telemetry.Generator, log zerolog.Logger) *Service {
	return &Service{
		gen: gen,
		log: log.With().Str("service", "mobility").Logger(),
	}
}

// Overview renders a fresh mobility section payload
func (s *Service) Overview() Overview {
	return Overview{
		Timestamp:    time.Now(),
		Traffic:      environment.BuildTrendSeries(s.gen.DailySeries("traffic_congestion", 30)),
		Transit:      s.gen.Transit(),
		Issues:       s.gen.InfrastructureIssues(),
		Connectivity: s.gen.Connectivity(),
	}
}
