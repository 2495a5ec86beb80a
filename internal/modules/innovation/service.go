// Package innovation serves the open-data and AI registry section.
package innovation

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/cityble/civicpulse/internal/domain"
	"github.com/cityble/civicpulse/internal/telemetry"
)

// Overview is the innovation section payload
type Overview struct {
	Timestamp time.Time            `json:"timestamp"`
	OpenData  domain.OpenDataStats `json:"open_data"`
	AISystems []domain.AISystem    `json:"ai_systems"`
}

// Service builds innovation payloads from fresh telemetry
type Service struct {
	gen *telemetry.Generator
	log zerolog.Logger
}

// NewService creates a new innovation service
func NewService(gen *telemetry.Generator, log zerolog.Logger) *Service {
	return &Service{
		gen: gen,
		log: log.With().Str("service", "innovation").Logger(),
	}
}

// Overview renders a fresh innovation section payload
func (s *Service) Overview() Overview {
	return Overview{
		Timestamp: time.Now(),
		OpenData:  s.gen.OpenData(),
		AISystems: s.gen.AISystems(),
	}
}
