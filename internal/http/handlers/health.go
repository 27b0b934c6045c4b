package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Check probes one dependency.
type Check func(ctx context.Context) error

type HealthHandler struct {
	checks map[string]Check
	log    *slog.Logger
}

func NewHealthHandler(checks map[string]Check, l *slog.Logger) *HealthHandler {
	return &HealthHandler{checks: checks, log: l}
}

// Healthz handles GET /healthz. Any failing check turns the answer into a 503.
func (h *HealthHandler) Healthz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	results := gin.H{}
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			status = http.StatusServiceUnavailable
			results[name] = "down"
			h.log.LogAttrs(ctx, slog.LevelWarn, "health_check_failed",
				slog.String("check", name),
				slog.Any("err", err),
			)
			continue
		}
		results[name] = "ok"
	}
	c.JSON(status, gin.H{"status": http.StatusText(status), "checks": results})
}
