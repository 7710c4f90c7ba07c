// Package handlers implements HTTP handlers for the sale-prospector API.
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const defaultReadyTimeout = 2 * time.Second

// Pinger reports whether the backing database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ReadyResponse reports readiness together with the database check.
type ReadyResponse struct {
	Status   string `json:"status"          example:"ready"`
	Database string `json:"database"        example:"ok"`
	Error    string `json:"error,omitempty"`
}

// HealthHandler provides health and readiness endpoints.
type HealthHandler struct {
	db      Pinger
	timeout time.Duration
}

// HealthOption configures a HealthHandler.
type HealthOption func(*HealthHandler)

// WithReadyTimeout bounds the database ping made by Readyz.
func WithReadyTimeout(d time.Duration) HealthOption {
	return func(h *HealthHandler) {
		if d > 0 {
			h.timeout = d
		}
	}
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(p Pinger, opts ...HealthOption) *HealthHandler {
	h := &HealthHandler{db: p, timeout: defaultReadyTimeout}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Healthz returns 200 while the process is running.
func (*HealthHandler) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, StatusResponse{Status: "ok"})
}

// Readyz pings the database and returns 503 with the failure when it is
// unreachable or slower than the ready timeout.
func (h *HealthHandler) Readyz(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		return c.JSON(http.StatusServiceUnavailable, ReadyResponse{
			Status:   "unavailable",
			Database: "down",
			Error:    err.Error(),
		})
	}
	return c.JSON(http.StatusOK, ReadyResponse{Status: "ready", Database: "ok"})
}
