package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"identity-api/internal/service"
)

const authClaimsKey = "auth_claims"

// JWTAuthMiddleware valida access tokens y guarda los claims en el contexto.
func JWTAuthMiddleware(tokenSvc *service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenSvc == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "token service not configured"})
			c.Abort()
			return
		}

		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if header == "" || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			c.Abort()
			return
		}

		token := strings.TrimSpace(header[len("Bearer "):])
		claims, err := tokenSvc.ParseAccessToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Set(authClaimsKey, claims)
		c.Next()
	}
}

// GetAuthClaims obtiene los claims del access token desde el contexto.
func GetAuthClaims(c *gin.Context) (service.AccessClaims, bool) {
	val, ok := c.Get(authClaimsKey)
	if !ok {
		return service.AccessClaims{}, false
	}
	claims, ok := val.(service.AccessClaims)
	return claims, ok
}
