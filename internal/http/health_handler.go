package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"identity-api/internal/db"
)

// HealthHandler expone las sondas de vida y disponibilidad.
type HealthHandler struct {
	logger *zap.Logger
	pool   *pgxpool.Pool
}

func NewHealthHandler(logger *zap.Logger, pool *pgxpool.Pool) *HealthHandler {
	return &HealthHandler{
		logger: logger,
		pool:   pool,
	}
}

// Live maneja GET /healthz.
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Ready maneja GET /readyz: verifica conectividad con la base de datos.
func (h *HealthHandler) Ready(c *gin.Context) {
	if h.pool == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": "db not configured"})
		return
	}
	if err := db.Ping(c.Request.Context(), h.pool); err != nil {
		h.logger.Warn("readiness db ping failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": "db unreachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
