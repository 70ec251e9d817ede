package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"identity-api/internal/service"
)

// IdentityHandler mantiene dependencias para los endpoints de identidad.
type IdentityHandler struct {
	logger      *zap.Logger
	identitySvc *service.IdentityService
}

func NewIdentityHandler(logger *zap.Logger, identitySvc *service.IdentityService) *IdentityHandler {
	return &IdentityHandler{
		logger:      logger,
		identitySvc: identitySvc,
	}
}

// Token maneja POST /api/v2/identity/token.
// El resultado siempre es 200 con el cuerpo estructurado; el cliente decide
// según is_verified.
func (h *IdentityHandler) Token(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid token request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result := h.identitySvc.VerifyCredentials(c.Request.Context(), req.Email, req.Password)
	c.JSON(http.StatusOK, result)
}

// DiscoveryDocument maneja GET /api/v2/identity/.well-known/openid-configuration.
// Sigue siendo un marcador de posición; no se genera documento real.
func (h *IdentityHandler) DiscoveryDocument(c *gin.Context) {
	c.JSON(http.StatusOK, "ToDo")
}
