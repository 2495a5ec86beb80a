package telemetry

import (
	"time"

	"github.com/cityble/civicpulse/internal/domain"
)

// Mock catalog data. These tables describe WHAT the city tracks; the
// generator draws the live values.

var demographicGroupNames = []string{
	"Gender: Female",
	"Gender: Male",
	"Age: 18-30",
	"Age: 31-50",
	"Age: 51+",
	"Income: Low",
	"Income: Mid",
	"Income: High",
}

type policyArea struct {
	name       string
	statuses   []domain.PolicyStatus
	dataSource string
}

var policyAreas = []policyArea{
	{
		name:       "Air Quality Improvement Plan",
		statuses:   []domain.PolicyStatus{domain.PolicyAdopted, domain.PolicyImplemented, domain.PolicyUnderReview},
		dataSource: "CivicPulse AQI Trends",
	},
	{
		name:       "Green Space Expansion",
		statuses:   []domain.PolicyStatus{domain.PolicyAdopted, domain.PolicyImplemented, domain.PolicyProposed},
		dataSource: "Citizen Reports & Biodiversity Index",
	},
	{
		name:       "Public Transport Incentives",
		statuses:   []domain.PolicyStatus{domain.PolicyImplemented, domain.PolicyUnderReview, domain.PolicyProposed},
		dataSource: "Mobility Data & Behavior Change KPI",
	},
	{
		name:       "Open Data Mandate",
		statuses:   []domain.PolicyStatus{domain.PolicyAdopted, domain.PolicyImplemented},
		dataSource: "Innovation & Data Metrics",
	},
}

var issueTypes = []string{
	"Pothole",
	"Streetlight Outage",
	"Damaged Sign",
	"Water Leak",
	"Broken Bench",
}

type aiRegistryEntry struct {
	name         string
	status       string
	lastReview   time.Time
	transparency string
}

var aiRegistry = []aiRegistryEntry{
	{name: "Traffic Prediction", status: "Active", lastReview: time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC), transparency: "High"},
	{name: "Resource Allocation", status: "Active", lastReview: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), transparency: "Medium"},
	{name: "Public Safety Analysis", status: "Pilot", lastReview: time.Date(2024, 11, 30, 0, 0, 0, 0, time.UTC), transparency: "Medium"},
}
