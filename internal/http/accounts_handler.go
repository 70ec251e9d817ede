package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"identity-api/internal/domain"
	"identity-api/internal/service"
)

// AccountsHandler mantiene dependencias para los endpoints de cuentas.
type AccountsHandler struct {
	logger      *zap.Logger
	accountsSvc *service.AccountsService
}

func NewAccountsHandler(logger *zap.Logger, accountsSvc *service.AccountsService) *AccountsHandler {
	return &AccountsHandler{
		logger:      logger,
		accountsSvc: accountsSvc,
	}
}

// Register maneja POST /api/v2/identity/accounts.
func (h *AccountsHandler) Register(c *gin.Context) {
	var req struct {
		Email       string `json:"email" binding:"required,email"`
		Password    string `json:"password" binding:"required"`
		DisplayName string `json:"display_name"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid registration request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result := h.accountsSvc.Register(c.Request.Context(), domain.AccountRegistration{
		Email:       req.Email,
		Password:    req.Password,
		DisplayName: req.DisplayName,
		Description: req.Description,
	})
	if !result.IsSuccess {
		if result.InfoMessage == "User already exists" {
			c.JSON(http.StatusConflict, result)
			return
		}
		c.JSON(http.StatusBadRequest, result)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// List maneja GET /api/v2/identity/accounts.
func (h *AccountsHandler) List(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	accounts, err := h.accountsSvc.GetAccounts(c.Request.Context(), skip, limit)
	if err != nil {
		h.logger.Error("list accounts failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list accounts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"accounts": accounts})
}
