package rest

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

const probeTimeout = 3 * time.Second

// pinger is a dependency the health endpoints probe.
type pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to pinger.
type PingFunc func(ctx context.Context) error

// Ping calls f.
func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

// probe is a named dependency. A failing required probe takes the service
// down; any other failure only degrades it.
type probe struct {
	name     string
	target   pinger
	required bool
}

// HealthHandler serves the liveness, readiness and health endpoints.
type HealthHandler struct {
	probes  []probe
	version string
}

// NewHealthHandler creates a HealthHandler. The database gates readiness.
// Object storage only degrades /health, since reads keep working while
// uploads fail. media may be nil.
func NewHealthHandler(db, media pinger, version string) *HealthHandler {
	probes := []probe{{name: "database", target: db, required: true}}
	if media != nil {
		probes = append(probes, probe{name: "media", target: media})
	}
	return &HealthHandler{probes: probes, version: version}
}

// HealthResponse is the body of every health endpoint.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the result of one probe.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live reports that the process is serving requests.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready returns 503 while any required dependency is unreachable.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	status, _ := h.run(r.Context(), true)
	writeJSON(w, httpStatus(status), HealthResponse{Status: status, Timestamp: time.Now()})
}

// Health probes every dependency and reports per-component latency.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	status, components := h.run(r.Context(), false)
	writeJSON(w, httpStatus(status), HealthResponse{
		Status:     status,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

// run pings the probes concurrently and folds them into "ok", "degraded"
// or "down".
func (h *HealthHandler) run(ctx context.Context, requiredOnly bool) (string, map[string]CompStatus) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	results := make([]CompStatus, len(h.probes))
	var g errgroup.Group
	for i, p := range h.probes {
		if requiredOnly && !p.required {
			continue
		}
		g.Go(func() error {
			results[i] = ping(ctx, p.target)
			return nil
		})
	}
	_ = g.Wait()

	overall := "ok"
	components := make(map[string]CompStatus, len(h.probes))
	for i, p := range h.probes {
		if requiredOnly && !p.required {
			continue
		}
		components[p.name] = results[i]
		if results[i].Status == "ok" {
			continue
		}
		if p.required {
			overall = "down"
		} else if overall == "ok" {
			overall = "degraded"
		}
	}
	return overall, components
}

func ping(ctx context.Context, p pinger) CompStatus {
	start := time.Now()
	if err := p.Ping(ctx); err != nil {
		return CompStatus{Status: "down"}
	}
	return CompStatus{Status: "ok", Latency: time.Since(start).String()}
}

func httpStatus(overall string) int {
	if overall == "down" {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}
