// Package domain contains the core data model for CivicPulse.
// The domain layer is pure: no infrastructure dependencies, no I/O.
package domain

import "time"

// PolicyStatus represents the lifecycle stage of a tracked policy
type PolicyStatus string

const (
	PolicyProposed    PolicyStatus = "Proposed"
	PolicyUnderReview PolicyStatus = "Under Review"
	PolicyAdopted     PolicyStatus = "Adopted"
	PolicyImplemented PolicyStatus = "Implemented"
)

// IsImplemented checks if the policy has been fully implemented
func (s PolicyStatus) IsImplemented() bool {
	return s == PolicyImplemented
}

// PolicyRecord represents a policy recommendation tracked by the dashboard
type PolicyRecord struct {
	ID         string       `json:"id"`
	Area       string       `json:"area"`
	Status     PolicyStatus `json:"status"`
	DataSource string       `json:"data_source"`
}

// DemographicGroup holds the participation percentage for one demographic slice
type DemographicGroup struct {
	Group         string  `json:"group"`
	Participation float64 `json:"participation_pct"`
}

// ZoneReading is a single air-quality sensor reading for a city zone
type ZoneReading struct {
	Zone string  `json:"zone"`
	AQI  int     `json:"aqi"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// TimePoint is one dated sample in a chart series
type TimePoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// TimeSeries is a named daily series backing a dashboard chart
type TimeSeries struct {
	Name   string      `json:"name"`
	Points []TimePoint `json:"points"`
}

// Values returns the raw sample values in chronological order
func (ts TimeSeries) Values() []float64 {
	values := make([]float64, len(ts.Points))
	for i, p := range ts.Points {
		values[i] = p.Value
	}
	return values
}

// BaseMetrics is the flat record of independently sourced scalar readings
// that the indicator synthesizer consumes. Produced fresh per render; never
// cached or retained.
type BaseMetrics struct {
	AirQualityIndex   int                `json:"aqi"`
	ParticipationRate float64            `json:"participation_rate"`
	WellBeingIndex    float64            `json:"well_being_index"`
	EmpowermentScore  float64            `json:"empowerment_score"`
	CO2Level          float64            `json:"co2_level_ppm"`
	Groups            []DemographicGroup `json:"groups"`
	Policies          []PolicyRecord     `json:"policies"`

	// Independent external estimates, carried through to their indicators
	// unchanged (no derivation from the other readings exists).
	EnergyProgress         float64 `json:"energy_progress"`
	InfrastructureProgress float64 `json:"infrastructure_progress"`
	LifeOnLandProgress     float64 `json:"life_on_land_progress"`
}

// GroupParticipation returns the per-group participation percentages,
// the input for the equity-spread calculation.
func (m BaseMetrics) GroupParticipation() []float64 {
	values := make([]float64, len(m.Groups))
	for i, g := range m.Groups {
		values[i] = g.Participation
	}
	return values
}

// MetricDeltas holds the short-term changes shown next to headline KPI tiles
type MetricDeltas struct {
	AQI           int     `json:"aqi_today"`
	Participation float64 `json:"participation_month"`
	WellBeing     float64 `json:"well_being_quarter"`
	CO2           float64 `json:"co2_vs_yesterday"`
}

// IssueStatus represents the handling state of a reported infrastructure issue
type IssueStatus string

const (
	IssueOpen       IssueStatus = "Open"
	IssueInProgress IssueStatus = "In Progress"
	IssueResolved   IssueStatus = "Resolved"
)

// InfrastructureIssue aggregates citizen reports for one issue type
type InfrastructureIssue struct {
	Type      string      `json:"type"`
	Reports7d int         `json:"reports_7d"`
	Status    IssueStatus `json:"status"`
}

// TransitPerformance holds public transport KPIs
type TransitPerformance struct {
	OnTimePerformance float64 `json:"on_time_pct"`
	Satisfaction      float64 `json:"satisfaction_pct"`
}

// DigitalConnectivity holds city-wide digital access estimates
type DigitalConnectivity struct {
	WiFiCoverage    float64 `json:"wifi_coverage_pct"`
	BroadbandAccess float64 `json:"broadband_access_pct"`
}

// OpenDataStats holds usage counters for the open data portal
type OpenDataStats struct {
	Datasets    int `json:"datasets"`
	APICalls30d int `json:"api_calls_30d"`
	Downloads30 int `json:"downloads_30d"`
}

// AISystem is one entry of the municipal AI system registry.
// The registry is static mock data; no governance logic is applied to it.
type AISystem struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Status            string    `json:"status"`
	LastEthicalReview time.Time `json:"last_ethical_review"`
	TransparencyLevel string    `json:"transparency_level"`
}

// EngagementStats holds citizen science hub counters
type EngagementStats struct {
	ActiveParticipants int `json:"active_participants_monthly"`
	DataContributions  int `json:"data_contributions_monthly"`
}

// Snapshot is one coherent render of the full telemetry set, the unit the
// live feed broadcasts. It is never stored; each snapshot is independent.
type Snapshot struct {
	GeneratedAt    time.Time             `json:"generated_at"`
	Metrics        BaseMetrics           `json:"metrics"`
	Deltas         MetricDeltas          `json:"deltas"`
	Zones          []ZoneReading         `json:"zones"`
	Biodiversity   float64               `json:"biodiversity_score"`
	Energy         TimeSeries            `json:"energy"`
	Traffic        TimeSeries            `json:"traffic"`
	Waste          TimeSeries            `json:"waste"`
	BehaviorChange TimeSeries            `json:"behavior_change"`
	Issues         []InfrastructureIssue `json:"issues"`
	Transit        TransitPerformance    `json:"transit"`
	Connectivity   DigitalConnectivity   `json:"connectivity"`
	OpenData       OpenDataStats         `json:"open_data"`
	AISystems      []AISystem            `json:"ai_systems"`
	Engagement     EngagementStats       `json:"engagement"`
}
