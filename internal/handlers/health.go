package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports process and database status.
type HealthHandler struct {
	DB     Pinger
	Logger zerolog.Logger
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(db Pinger, logger zerolog.Logger) *HealthHandler {
	return &HealthHandler{DB: db, Logger: logger}
}

// Health answers 200 when the database pings and 503 otherwise.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.DB.Ping(ctx); err != nil {
		h.Logger.Warn().Err(err).Msg("health check: database unreachable")
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "UP", "database": "down"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "UP", "database": "up"})
}
