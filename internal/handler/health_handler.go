package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// HealthResponse reports whether the service can reach its database.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// HealthHandler serves the liveness probe.
type HealthHandler struct {
	ping func(ctx context.Context) error
	log  zerolog.Logger
}

// NewHealthHandler creates a health handler that calls ping on every probe.
func NewHealthHandler(ping func(ctx context.Context) error, log zerolog.Logger) *HealthHandler {
	return &HealthHandler{ping: ping, log: log}
}

// Health godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /healthz [get]
func (h *HealthHandler) Health(c echo.Context) error {
	if err := h.ping(c.Request().Context()); err != nil {
		h.log.Warn().Err(err).Msg("health check failed")
		return c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "degraded"})
	}
	return c.JSON(http.StatusOK, HealthResponse{Status: StatusOK})
}
