// Package policy serves the policy and action section: tracked policy
// records and the implementation rate derived from them.
package policy

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/cityble/civicpulse/internal/domain"
	"github.com/cityble/civicpulse/internal/indicators"
	"github.com/cityble/civicpulse/internal/telemetry"
)

// Overview is the policy section payload
type Overview struct {
	Timestamp          time.Time             `json:"timestamp"`
	Policies           []domain.PolicyRecord `json:"policies"`
	ImplementationRate float64               `json:"implementation_rate_pct"`
}

// Service builds policy payloads from fresh telemetry
type Service struct {
	gen *telemetry.Generator
	log zerolog.Logger
}

// NewService creates a new policy service
func NewService(gen *telemetry.Generator, log zerolog.Logger) *Service {
	return &Service{
		gen: gen,
		log: log.With().Str("service", "policy").Logger(),
	}
}

// Overview renders a fresh policy section payload. The implementation rate
// is computed from the same records the table shows.
func (s *Service) Overview() Overview {
	policies := s.gen.Policies()

	return Overview{
		Timestamp:          time.Now(),
		Policies:           policies,
		ImplementationRate: indicators.PolicyImplementationRate(policies),
	}
}
