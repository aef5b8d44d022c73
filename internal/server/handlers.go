package server

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/aman-zulfiqar/solana-rug-detector/internal/models"
)

// StatsSource exposes the pipeline counters to the API without giving the
// server a handle on the pipeline itself.
type StatsSource interface {
	Stats() models.StatsSnapshot
}

// Handlers contains the dependencies for the API endpoints
type Handlers struct {
	Stats          StatsSource
	StreamProvider string
	StartedAt      time.Time
	Logger         *logrus.Logger
}

// Health returns a simple liveness check
func (h *Handlers) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{OK: true})
}

// Status reports uptime, the active feed provider and pipeline counters
func (h *Handlers) Status(c echo.Context) error {
	resp := StatusResponse{
		UptimeSeconds:  int64(time.Since(h.StartedAt).Seconds()),
		StreamProvider: h.StreamProvider,
	}
	if h.Stats != nil {
		resp.Pipeline = h.Stats.Stats()
	}
	return c.JSON(http.StatusOK, resp)
}
