package api

import (
	"net/http"
	"time"

	"staticd/internal/version"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Status      string    `json:"status"`
	Uptime      float64   `json:"uptime"`
	Timestamp   time.Time `json:"timestamp"`
	Environment string    `json:"environment,omitempty"`
	Version     string    `json:"version"`
}

// InfoResponse represents the static service descriptor
type InfoResponse struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Version     string   `json:"version"`
	Endpoints   []string `json:"endpoints"`
}

// handleHealth responds to health check requests (simple liveness check)
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := HealthResponse{
		Status:      "healthy",
		Uptime:      time.Since(s.started).Seconds(),
		Timestamp:   time.Now().UTC(),
		Environment: s.cfg.Environment,
		Version:     version.Version,
	}

	WriteJSON(w, response, http.StatusOK)
}

// handleInfo responds with a static descriptive payload; no I/O
func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := InfoResponse{
		Name:        "staticd",
		Description: "Static file server with conditional caching and response compression",
		Version:     version.Version,
		Endpoints:   []string{"/api/health", "/api/info", "/*"},
	}

	WriteJSON(w, response, http.StatusOK)
}
