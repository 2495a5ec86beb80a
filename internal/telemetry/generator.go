// Package telemetry produces the mock city telemetry that feeds the
// dashboard. It stands in for the real sensor/ingestion services; every
// reading is drawn fresh from an explicit random source on each render,
// nothing is cached or retained between renders.
package telemetry

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cityble/civicpulse/internal/domain"
)

const zoneCount = 5

// Generator is the data-generation collaborator for the dashboard. The
// random source is injected so demo deployments can pin a seed for
// reproducible renders.
type Generator struct {
	mu  sync.Mutex // rand.Rand is not safe for concurrent use
	rng *rand.Rand
	log zerolog.Logger
}

// New creates a generator. A zero seed seeds from the clock.
func New(seed int64, log zerolog.Logger) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		rng: rand.New(rand.NewSource(seed)),
		log: log.With().Str("service", "telemetry").Logger(),
	}
}

// Snapshot produces one coherent render of the full telemetry set. The
// base metrics are derived from the same zone readings the environment
// section displays, matching what a single page render shows.
func (g *Generator) Snapshot() domain.Snapshot {
	zones := g.ZoneReadings()

	return domain.Snapshot{
		GeneratedAt:    time.Now(),
		Metrics:        g.baseMetricsForZones(zones),
		Deltas:         g.Deltas(),
		Zones:          zones,
		Biodiversity:   g.Biodiversity(),
		Energy:         g.DailySeries("energy_consumption", 30),
		Traffic:        g.DailySeries("traffic_congestion", 30),
		Waste:          g.DailySeries("waste_recycling", 30),
		BehaviorChange: g.DailySeries("behavior_change", 90),
		Issues:         g.InfrastructureIssues(),
		Transit:        g.Transit(),
		Connectivity:   g.Connectivity(),
		OpenData:       g.OpenData(),
		AISystems:      g.AISystems(),
		Engagement:     g.EngagementStats(),
	}
}

// BaseMetrics produces a fresh BaseMetrics record, deriving the city-wide
// AQI from a fresh set of zone readings.
func (g *Generator) BaseMetrics() domain.BaseMetrics {
	return g.baseMetricsForZones(g.ZoneReadings())
}

func (g *Generator) baseMetricsForZones(zones []domain.ZoneReading) domain.BaseMetrics {
	total := 0
	for _, z := range zones {
		total += z.AQI
	}
	avgAQI := 0
	if len(zones) > 0 {
		avgAQI = int(math.Floor(float64(total) / float64(len(zones))))
	}

	return domain.BaseMetrics{
		AirQualityIndex:        avgAQI,
		ParticipationRate:      g.uniform(5, 25),
		WellBeingIndex:         g.uniform(50, 85),
		EmpowermentScore:       g.uniform(40, 75),
		CO2Level:               415 + g.float(),
		Groups:                 g.demographicGroups(),
		Policies:               g.Policies(),
		EnergyProgress:         g.uniform(40, 70),
		InfrastructureProgress: g.uniform(50, 80),
		LifeOnLandProgress:     g.uniform(30, 60),
	}
}

// ZoneReadings produces per-zone AQI readings with coordinates around Rome.
func (g *Generator) ZoneReadings() []domain.ZoneReading {
	readings := make([]domain.ZoneReading, zoneCount)
	for i := range readings {
		readings[i] = domain.ZoneReading{
			Zone: "Zone " + string(rune('A'+i)),
			AQI:  g.intn(10, 150),
			Lat:  g.uniform(41.8, 42.0),
			Lon:  g.uniform(12.4, 12.6),
		}
	}
	return readings
}

// Deltas produces the short-term changes shown next to headline KPI tiles.
func (g *Generator) Deltas() domain.MetricDeltas {
	return domain.MetricDeltas{
		AQI:           g.intn(-5, 5),
		Participation: g.uniform(-0.5, 0.5),
		WellBeing:     g.uniform(-1, 1),
		CO2:           g.uniform(-0.1, 0.2),
	}
}

// Policies produces the tracked policy records with freshly drawn statuses.
func (g *Generator) Policies() []domain.PolicyRecord {
	records := make([]domain.PolicyRecord, len(policyAreas))
	for i, area := range policyAreas {
		records[i] = domain.PolicyRecord{
			ID:         uuid.NewString(),
			Area:       area.name,
			Status:     area.statuses[g.rngIntn(len(area.statuses))],
			DataSource: area.dataSource,
		}
	}
	return records
}

// DailySeries produces a named daily series ending today, one sample per
// day, values in [0,100).
func (g *Generator) DailySeries(name string, days int) domain.TimeSeries {
	now := time.Now()
	points := make([]domain.TimePoint, days)
	for i := range points {
		points[i] = domain.TimePoint{
			Date:  now.AddDate(0, 0, i-days+1),
			Value: g.float() * 100,
		}
	}
	return domain.TimeSeries{Name: name, Points: points}
}

// Biodiversity produces the biodiversity health score (0-100, higher is better).
func (g *Generator) Biodiversity() float64 {
	return g.uniform(40, 75)
}

// InfrastructureIssues produces the aggregated citizen issue reports.
func (g *Generator) InfrastructureIssues() []domain.InfrastructureIssue {
	statuses := []domain.IssueStatus{domain.IssueOpen, domain.IssueInProgress, domain.IssueResolved}

	issues := make([]domain.InfrastructureIssue, len(issueTypes))
	for i, issueType := range issueTypes {
		issues[i] = domain.InfrastructureIssue{
			Type:      issueType,
			Reports7d: g.intn(5, 50),
			Status:    statuses[g.rngIntn(len(statuses))],
		}
	}
	return issues
}

// Transit produces public transport KPIs.
func (g *Generator) Transit() domain.TransitPerformance {
	return domain.TransitPerformance{
		OnTimePerformance: g.uniform(80, 98),
		Satisfaction:      g.uniform(65, 90),
	}
}

// Connectivity produces city-wide digital access estimates.
func (g *Generator) Connectivity() domain.DigitalConnectivity {
	return domain.DigitalConnectivity{
		WiFiCoverage:    g.uniform(70, 95),
		BroadbandAccess: g.uniform(85, 99),
	}
}

// OpenData produces usage counters for the open data portal.
func (g *Generator) OpenData() domain.OpenDataStats {
	return domain.OpenDataStats{
		Datasets:    g.intn(100, 500),
		APICalls30d: g.intn(5000, 50000),
		Downloads30: g.intn(1000, 10000),
	}
}

// AISystems returns the municipal AI system registry (static mock entries).
func (g *Generator) AISystems() []domain.AISystem {
	systems := make([]domain.AISystem, len(aiRegistry))
	for i, entry := range aiRegistry {
		systems[i] = domain.AISystem{
			ID:                uuid.NewString(),
			Name:              entry.name,
			Status:            entry.status,
			LastEthicalReview: entry.lastReview,
			TransparencyLevel: entry.transparency,
		}
	}
	return systems
}

// EngagementStats produces citizen science hub counters.
func (g *Generator) EngagementStats() domain.EngagementStats {
	return domain.EngagementStats{
		ActiveParticipants: g.intn(500, 5000),
		DataContributions:  g.intn(10000, 100000),
	}
}

func (g *Generator) demographicGroups() []domain.DemographicGroup {
	groups := make([]domain.DemographicGroup, len(demographicGroupNames))
	for i, name := range demographicGroupNames {
		groups[i] = domain.DemographicGroup{
			Group:         name,
			Participation: g.uniform(5, 30),
		}
	}
	return groups
}

// uniform draws from [lo, hi)
func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.float()*(hi-lo)
}

// intn draws an integer from [lo, hi]
func (g *Generator) intn(lo, hi int) int {
	return lo + g.rngIntn(hi-lo+1)
}

func (g *Generator) float() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Float64()
}

func (g *Generator) rngIntn(n int) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Intn(n)
}
