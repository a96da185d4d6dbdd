package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/memberapi/internal/app/models/dto"
	"github.com/yigit/memberapi/internal/pkg/logger"
)

// Pinger reports whether the database answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthController serves liveness and readiness probes
type HealthController struct {
	db      Pinger
	timeout time.Duration
}

// NewHealthController creates a new HealthController. A timeout <= 0 pings
// with the request context as is.
func NewHealthController(db Pinger, timeout time.Duration) *HealthController {
	return &HealthController{db: db, timeout: timeout}
}

// Ping reports that the process is up
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /ping [get]
func (h *HealthController) Ping(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Health reports whether the database is reachable
// @Summary Readiness probe
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthController) Health(ctx *gin.Context) {
	pingCtx := ctx.Request.Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(pingCtx, h.timeout)
		defer cancel()
	}

	if err := h.db.Ping(pingCtx); err != nil {
		logger.Warn().Err(err).Msg("Health check failed")
		ctx.JSON(http.StatusServiceUnavailable, dto.HealthResponse{
			Status:    "unavailable",
			Database:  "down",
			Timestamp: time.Now(),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.HealthResponse{
		Status:    "ok",
		Database:  "up",
		Timestamp: time.Now(),
	})
}
