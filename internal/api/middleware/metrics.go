// Package middleware provides Echo middleware for sale-prospector.
package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/sale-prospector/internal/metrics"
)

const apiPrefix = "/api/"

// Metrics returns Echo middleware that records request duration and status
// by route template. Health checks and scrapes only update the health gauges. API
// writes without an X-User-ID are also counted as unattributed.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			route := routeLabel(c)

			switch route {
			case "/metrics":
				return next(c)
			case "/healthz", "/readyz":
				err := next(c)
				setHealth(route, c.Response().Status)
				return err
			}

			start := time.Now()
			err := next(c)
			elapsed := time.Since(start).Seconds()

			req := c.Request()
			status := strconv.Itoa(c.Response().Status)
			metrics.HTTPRequestDuration.WithLabelValues(req.Method, route, status).Observe(elapsed)
			metrics.HTTPRequestsTotal.WithLabelValues(req.Method, route, status).Inc()

			if isAPIWrite(req.Method, route) && req.Header.Get(userIDHeader) == "" {
				metrics.HTTPUnattributedWritesTotal.WithLabelValues(req.Method, route).Inc()
			}

			return err
		}
	}
}

// routeLabel prefers the matched route template so that sale and contact
// ids do not become label values.
func routeLabel(c echo.Context) string {
	if p := c.Path(); p != "" {
		return p
	}
	return c.Request().URL.Path
}

func isAPIWrite(method, route string) bool {
	if !strings.HasPrefix(route, apiPrefix) {
		return false
	}
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}

func setHealth(route string, status int) {
	up := 0.0
	if status >= 200 && status < 300 {
		up = 1
	}
	if route == "/healthz" {
		metrics.HealthzUp.Set(up)
	} else {
		metrics.ReadyzUp.Set(up)
	}
}
