package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"identity-api/internal/service"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	tokenSvc *service.TokenService,
	identityH *IdentityHandler,
	accountsH *AccountsHandler,
	masterDataH *MasterDataHandler,
	healthH *HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery y JSON content-type.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	r.GET("/healthz", healthH.Live)
	r.GET("/readyz", healthH.Ready)

	identity := r.Group("/api/v2/identity")
	identity.GET("/.well-known/openid-configuration", identityH.DiscoveryDocument)
	identity.POST("/token", identityH.Token)

	accounts := identity.Group("/accounts")
	accounts.POST("", accountsH.Register)
	accounts.GET("", JWTAuthMiddleware(tokenSvc), accountsH.List)

	masterData := identity.Group("/masterdata", JWTAuthMiddleware(tokenSvc))
	masterData.POST("/claims", masterDataH.CreateClaim)
	masterData.GET("/claims", masterDataH.ListClaims)
	masterData.GET("/claims/:id", masterDataH.GetClaim)
	masterData.PUT("/claims/:id", masterDataH.UpdateClaim)
	masterData.DELETE("/claims/:id", masterDataH.DeleteClaim)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
