package handler

import (
	"context"
	"net/http"
)

// Pinger checks connectivity to the persistence layer.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Health handles the health check endpoint.
type Health struct {
	db Pinger
}

// NewHealth creates a new Health handler.
func NewHealth(db Pinger) *Health {
	return &Health{db: db}
}

// Handle reports service health including database connectivity.
func (h *Health) Handle(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(r.Context()); err != nil {
		respondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Root reports the API name and version.
func Root(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Expense Tracker API is running",
		"version": "1.0.0",
	})
}
