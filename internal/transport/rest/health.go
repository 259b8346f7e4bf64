package rest

import (
	"context"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

const healthTimeout = 3 * time.Second

type pinger interface {
	Ping(ctx context.Context) error
}

// HealthCheck is a named dependency probed by /ready and /health.
type HealthCheck struct {
	Name   string
	Target pinger
}

// HealthHandler serves liveness and readiness endpoints.
type HealthHandler struct {
	checks  []HealthCheck
	version string
}

// NewHealthHandler creates a HealthHandler probing the given checks.
func NewHealthHandler(version string, checks ...HealthCheck) *HealthHandler {
	return &HealthHandler{checks: checks, version: version}
}

// HealthResponse is the JSON body for /live, /ready and /health.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of a single component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready returns 200 when every check passes and 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	components := h.probe(r.Context())
	status, overall := summarize(components)
	writeJSON(w, status, HealthResponse{Status: overall, Timestamp: time.Now()})
}

// Health is Ready plus per-component latency and the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components := h.probe(r.Context())
	status, overall := summarize(components)
	writeJSON(w, status, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

// probe pings all checks concurrently. A failing check never cancels the others.
func (h *HealthHandler) probe(ctx context.Context) map[string]CompStatus {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	var (
		mu         sync.Mutex
		components = make(map[string]CompStatus, len(h.checks))
	)

	var g errgroup.Group
	for _, c := range h.checks {
		g.Go(func() error {
			start := time.Now()
			err := c.Target.Ping(ctx)
			st := CompStatus{Status: "ok", Latency: time.Since(start).String()}
			if err != nil {
				st = CompStatus{Status: "down"}
			}
			mu.Lock()
			components[c.Name] = st
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return components
}

func summarize(components map[string]CompStatus) (int, string) {
	for _, c := range components {
		if c.Status != "ok" {
			return http.StatusServiceUnavailable, "down"
		}
	}
	return http.StatusOK, "ok"
}
