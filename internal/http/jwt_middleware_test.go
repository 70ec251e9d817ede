package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"identity-api/internal/domain"
	"identity-api/internal/service"
)

const testSecret = "test-secret-key-that-is-definitely-long-enough-for-hmac-sha512-0123456789"

func newTestTokenService(t *testing.T) *service.TokenService {
	t.Helper()
	svc, err := service.NewTokenService(testSecret, "test-issuer", "test-audience", 15*time.Minute, time.Hour)
	if err != nil {
		t.Fatalf("token service: %v", err)
	}
	return svc
}

func TestJWTAuthMiddleware_AllowsValidAccessToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tokenSvc := newTestTokenService(t)
	token, err := tokenSvc.GenerateAccessToken([]domain.Claim{
		{Type: domain.ClaimTypeSubject, Value: "acc-1"},
		{Type: domain.ClaimTypeEmail, Value: "user@example.com"},
	})
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	r := gin.New()
	r.GET("/protected", JWTAuthMiddleware(tokenSvc), func(c *gin.Context) {
		claims, ok := GetAuthClaims(c)
		if !ok || claims.Subject != "acc-1" {
			c.Status(http.StatusUnauthorized)
			return
		}
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestJWTAuthMiddleware_RejectsMissingToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tokenSvc := newTestTokenService(t)

	r := gin.New()
	r.GET("/protected", JWTAuthMiddleware(tokenSvc), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestJWTAuthMiddleware_RejectsGarbageToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tokenSvc := newTestTokenService(t)

	r := gin.New()
	r.GET("/protected", JWTAuthMiddleware(tokenSvc), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not.a.jwt")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
