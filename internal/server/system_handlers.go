// Package server provides the HTTP server and routing for CivicPulse.
package server

import (
	"encoding/json"
	"net/http"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// SystemHandlers handles system monitoring endpoints
type SystemHandlers struct {
	log             zerolog.Logger
	startupTime     time.Time
	refreshInterval time.Duration
}

// NewSystemHandlers creates a new system handlers instance
func NewSystemHandlers(log zerolog.Logger, refreshInterval time.Duration) *SystemHandlers {
	return &SystemHandlers{
		log:             log.With().Str("component", "system_handlers").Logger(),
		startupTime:     time.Now(),
		refreshInterval: refreshInterval,
	}
}

// HandleSystemStatus returns host and process status for the ops panel
// GET /api/system/status
func (h *SystemHandlers) HandleSystemStatus(w http.ResponseWriter, r *http.Request) {
	h.log.Debug().Msg("Getting system status")

	cpuPct, ramPct := h.getSystemStats()

	response := map[string]interface{}{
		"service":              "civicpulse",
		"uptime_seconds":       int(time.Since(h.startupTime).Seconds()),
		"cpu_pct":              cpuPct,
		"ram_pct":              ramPct,
		"goroutines":           runtime.NumGoroutine(),
		"refresh_interval_sec": int(h.refreshInterval.Seconds()),
		"timestamp":            time.Now().Format(time.RFC3339),
	}

	h.writeJSON(w, http.StatusOK, response)
}

func (h *SystemHandlers) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// getSystemStats calculates CPU and RAM usage percentages.
// Uses a short interval (100ms) so the status endpoint stays responsive
// for display clients polling on a tight timeout.
func (h *SystemHandlers) getSystemStats() (float64, float64) {
	cpuPercent, err := cpu.Percent(100*time.Millisecond, false)
	if err != nil {
		h.log.Warn().Err(err).Msg("Failed to get CPU percentage")
		cpuPercent = []float64{0}
	}

	memStat, err := mem.VirtualMemory()
	if err != nil {
		h.log.Warn().Err(err).Msg("Failed to get memory statistics")
		return 0, 0
	}

	cpuAvg := 0.0
	if len(cpuPercent) > 0 {
		cpuAvg = cpuPercent[0]
	}

	return cpuAvg, memStat.UsedPercent
}
