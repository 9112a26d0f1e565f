package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pwms/backend/internal/infrastructure/logger"
	"github.com/pwms/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// Pinger checks that the storage handle is alive
type Pinger interface {
	Ping(ctx context.Context) error
}

// SystemHandler handles the liveness endpoint
type SystemHandler struct {
	BaseHandler
	db Pinger
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(db Pinger) *SystemHandler {
	return &SystemHandler{db: db}
}

// Health godoc
// @Summary      Liveness check
// @Description  Pings the database. Returns 503 when it is unreachable.
// @Tags         system
// @Produce      json
// @Router       /health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	if err := h.db.Ping(c.Request.Context()); err != nil {
		logger.GetGinLogger(c).Warn("health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, dto.Response{
			Success: false,
			Data:    dto.HealthResponse{Status: "unavailable", Database: "down"},
			Error:   &dto.ErrorInfo{Code: dto.ErrCodeInternal, Message: "database unreachable"},
		})
		return
	}
	h.Success(c, dto.HealthResponse{Status: "ok", Database: "up"})
}
