package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"identity-api/internal/domain"
	"identity-api/internal/repository"
)

// MasterDataHandler expone el CRUD de definiciones de claims.
type MasterDataHandler struct {
	logger    *zap.Logger
	appClaims repository.AppClaimRepository
}

func NewMasterDataHandler(logger *zap.Logger, appClaims repository.AppClaimRepository) *MasterDataHandler {
	return &MasterDataHandler{
		logger:    logger,
		appClaims: appClaims,
	}
}

// CreateClaim maneja POST /api/v2/identity/masterdata/claims.
func (h *MasterDataHandler) CreateClaim(c *gin.Context) {
	var req struct {
		ClaimType   string `json:"claim_type" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	claim := domain.AppClaim{
		ID:          uuid.NewString(),
		ClaimType:   req.ClaimType,
		Description: req.Description,
		CreatedAt:   time.Now().UTC(),
	}
	if err := h.appClaims.Create(c.Request.Context(), claim); err != nil {
		h.logger.Error("create app claim failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create claim"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"claim": claim})
}

// GetClaim maneja GET /api/v2/identity/masterdata/claims/:id.
func (h *MasterDataHandler) GetClaim(c *gin.Context) {
	claim, err := h.appClaims.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrAppClaimNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "claim not found"})
			return
		}
		h.logger.Error("get app claim failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not get claim"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"claim": claim})
}

// ListClaims maneja GET /api/v2/identity/masterdata/claims.
func (h *MasterDataHandler) ListClaims(c *gin.Context) {
	claims, err := h.appClaims.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list app claims failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list claims"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"claims": claims})
}

// UpdateClaim maneja PUT /api/v2/identity/masterdata/claims/:id.
func (h *MasterDataHandler) UpdateClaim(c *gin.Context) {
	var req struct {
		ClaimType   string `json:"claim_type" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	claim := domain.AppClaim{
		ID:          c.Param("id"),
		ClaimType:   req.ClaimType,
		Description: req.Description,
	}
	if err := h.appClaims.Update(c.Request.Context(), claim); err != nil {
		if errors.Is(err, repository.ErrAppClaimNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "claim not found"})
			return
		}
		h.logger.Error("update app claim failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update claim"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"claim": claim})
}

// DeleteClaim maneja DELETE /api/v2/identity/masterdata/claims/:id.
func (h *MasterDataHandler) DeleteClaim(c *gin.Context) {
	if err := h.appClaims.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrAppClaimNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "claim not found"})
			return
		}
		h.logger.Error("delete app claim failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete claim"})
		return
	}

	c.Status(http.StatusNoContent)
}
