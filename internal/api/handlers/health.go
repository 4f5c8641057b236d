// Package handlers implements HTTP handlers for the mws-sync API.
package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/mws-toolkit/internal/store"
)

// HealthHandler provides health and readiness endpoints.
type HealthHandler struct {
	store store.Store
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(s store.Store) *HealthHandler {
	return &HealthHandler{store: s}
}

// Healthz returns 200 while the process is running.
func (*HealthHandler) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, StatusResponse{Status: "ok"})
}

// Readyz returns 200 if the database answers a ping, 503 otherwise.
func (h *HealthHandler) Readyz(c echo.Context) error {
	if err := h.store.Ping(c.Request().Context()); err != nil {
		return c.JSON(http.StatusServiceUnavailable, StatusResponse{Status: "unavailable"})
	}
	return c.JSON(http.StatusOK, StatusResponse{Status: "ready"})
}
