// Package indicators synthesizes composite indicators from base city metrics.
// Everything here is a pure function of its inputs: identical BaseMetrics
// always produce identical output, no operation fails, and empty collections
// degrade to defined defaults instead of errors.
package indicators

import (
	"github.com/cityble/civicpulse/internal/domain"
	"github.com/cityble/civicpulse/pkg/formulas"
)

// Indicator names. The SDG numbers are display labels only; no UN methodology
// is applied beyond the documented formulas.
const (
	Health         = "SDG 3 (Health)"
	Energy         = "SDG 7 (Energy)"
	Infrastructure = "SDG 9 (Infrastructure)"
	Inequality     = "SDG 10 (Inequality)"
	Cities         = "SDG 11 (Cities)"
	Climate        = "SDG 13 (Climate)"
	LifeOnLand     = "SDG 15 (Life on Land)"
	Institutions   = "SDG 16 (Institutions)"
)

// Names lists all indicators in dashboard display order.
var Names = []string{Health, Energy, Infrastructure, Inequality, Cities, Climate, LifeOnLand, Institutions}

// Unit is a display hint for the presentation boundary
type Unit string

const (
	UnitScore   Unit = "score_0_100"
	UnitPercent Unit = "percent"
	UnitPPM     Unit = "ppm"
	UnitIndex   Unit = "index"
)

// ComputeSDGIndicators derives the SDG alignment scores from base metrics.
//
// Values are NOT clamped here: depending on inputs a score may exceed 100 or
// go negative (e.g. Climate at high CO2 levels). Callers that render bounded
// progress values apply ClampProgress at the display boundary.
func ComputeSDGIndicators(m domain.BaseMetrics) map[string]float64 {
	airQuality := airQualityProgress(m.AirQualityIndex)

	return map[string]float64{
		// Combined well-being and inverse AQI
		Health: formulas.Mean([]float64{m.WellBeingIndex, airQuality}),

		// Independent external estimates, passed through unchanged
		Energy:         m.EnergyProgress,
		Infrastructure: m.InfrastructureProgress,
		LifeOnLand:     m.LifeOnLandProgress,

		// Lower spread across demographic groups = more equal participation
		Inequality: 100 - 2*formulas.StdDev(m.GroupParticipation()),

		// Combined air quality, participation and empowerment
		Cities: formulas.Mean([]float64{airQuality, m.ParticipationRate * 2, m.EmpowermentScore}),

		// Progress relative to the 400ppm baseline
		Climate: 100 - 5*(m.CO2Level-400),

		// Empowerment plus policy uptake
		Institutions: 0.8*m.EmpowermentScore + 20*meanPolicyWeight(m.Policies),
	}
}

// PolicyImplementationRate returns the percentage of policies that are fully
// implemented. An empty collection yields 0.
func PolicyImplementationRate(policies []domain.PolicyRecord) float64 {
	if len(policies) == 0 {
		return 0
	}

	implemented := 0
	for _, p := range policies {
		if p.Status.IsImplemented() {
			implemented++
		}
	}
	return float64(implemented) / float64(len(policies)) * 100
}

// ClampProgress bounds a raw indicator value to the [0,100] progress range
// used by gauges and progress bars.
func ClampProgress(value float64) float64 {
	return formulas.Clamp(value, 0, 100)
}

// airQualityProgress converts an AQI reading (lower is better) to a 0-100
// progress scale: (150 - AQI) / 1.5.
func airQualityProgress(aqi int) float64 {
	return (150 - float64(aqi)) / 1.5
}

// policyWeight maps a policy status to its contribution in the Institutions
// indicator: 1.0 Implemented, 0.5 Adopted, 0 otherwise.
func policyWeight(status domain.PolicyStatus) float64 {
	switch status {
	case domain.PolicyImplemented:
		return 1.0
	case domain.PolicyAdopted:
		return 0.5
	default:
		return 0
	}
}

func meanPolicyWeight(policies []domain.PolicyRecord) float64 {
	if len(policies) == 0 {
		return 0
	}

	weights := make([]float64, len(policies))
	for i, p := range policies {
		weights[i] = policyWeight(p.Status)
	}
	return formulas.Mean(weights)
}
