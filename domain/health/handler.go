package health

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string           `json:"status"`
	Timestamp string           `json:"timestamp"`
	Version   string           `json:"version,omitempty"`
	Checks    map[string]Check `json:"checks,omitempty"`
}

// Check represents an individual health check result
type Check struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Latency string `json:"latency,omitempty"`
}

// StatsResponse represents system statistics
type StatsResponse struct {
	GoVersion    string `json:"go_version"`
	NumCPU       int    `json:"num_cpu"`
	NumGoroutine int    `json:"num_goroutine"`
	MemAlloc     uint64 `json:"mem_alloc_bytes"`
	MemSys       uint64 `json:"mem_sys_bytes"`
	Uptime       string `json:"uptime,omitempty"`
}

// Pinger is a dependency whose reachability gates readiness.
// kv.Backend satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

const checkTimeout = 3 * time.Second

// Handler serves the /health endpoints.
type Handler struct {
	version string
	started time.Time
	checks  map[string]Pinger
}

// NewHandler builds a health handler. A nil Pinger registers the check as
// disabled; it never fails readiness.
func NewHandler(version string, checks map[string]Pinger) *Handler {
	if checks == nil {
		checks = map[string]Pinger{}
	}
	return &Handler{version: version, started: time.Now(), checks: checks}
}

// Liveness handles the /health/live endpoint
// Returns 200 if the process is running
func (h *Handler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   h.version,
	})
}

// Readiness handles the /health/ready endpoint
// Returns 503 when a configured dependency cannot be reached
func (h *Handler) Readiness(c echo.Context) error {
	checks := make(map[string]Check, len(h.checks))
	allHealthy := true

	for name, p := range h.checks {
		check := runCheck(c.Request().Context(), p)
		checks[name] = check
		if check.Status == "error" {
			allHealthy = false
		}
	}

	status := "ok"
	httpStatus := http.StatusOK
	if !allHealthy {
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   h.version,
		Checks:    checks,
	})
}

// Stats handles the /health/stats endpoint
// Returns system statistics for monitoring
func (h *Handler) Stats(c echo.Context) error {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return c.JSON(http.StatusOK, StatsResponse{
		GoVersion:    runtime.Version(),
		NumCPU:       runtime.NumCPU(),
		NumGoroutine: runtime.NumGoroutine(),
		MemAlloc:     m.Alloc,
		MemSys:       m.Sys,
		Uptime:       time.Since(h.started).Round(time.Second).String(),
	})
}

func runCheck(ctx context.Context, p Pinger) Check {
	if p == nil {
		return Check{Status: "disabled", Message: "Not configured"}
	}

	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	err := p.Ping(ctx)
	latency := time.Since(start)

	if err != nil {
		return Check{
			Status:  "error",
			Message: err.Error(),
			Latency: latency.String(),
		}
	}
	return Check{
		Status:  "ok",
		Latency: latency.String(),
	}
}
