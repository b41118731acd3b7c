package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aquameter/internal/application/auth/usecases"
	"aquameter/internal/shared/logger"
	"aquameter/internal/shared/utils"
)

type AuthHandler struct {
	loginUC usecases.LoginExecutor
	logger  logger.Interface
}

func NewAuthHandler(loginUC usecases.LoginExecutor, logger logger.Interface) *AuthHandler {
	return &AuthHandler{
		loginUC: loginUC,
		logger:  logger,
	}
}

type LoginRequest struct {
	NationalID string `json:"national_id" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

type LoginResponse struct {
	UserID       uint                  `json:"user_id"`
	Name         string                `json:"name"`
	Role         string                `json:"role"`
	AccessLevel  string                `json:"access_level"`
	AccessToken  string                `json:"access_token"`
	RefreshToken string                `json:"refresh_token"`
	ExpiresIn    int64                 `json:"expires_in"`
	Tenants      []AccessibleTenantDTO `json:"tenants"`
}

type AccessibleTenantDTO struct {
	TenantID uint   `json:"tenant_id"`
	Name     string `json:"name"`
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		NationalID: req.NationalID,
		Password:   req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	tenants := make([]AccessibleTenantDTO, 0, len(result.Tenants))
	for _, t := range result.Tenants {
		tenants = append(tenants, AccessibleTenantDTO{TenantID: t.TenantID, Name: t.Name})
	}

	utils.SuccessResponse(c, http.StatusOK, "", LoginResponse{
		UserID:       result.UserID,
		Name:         result.Name,
		Role:         result.Role,
		AccessLevel:  result.AccessLevel,
		AccessToken:  result.Tokens.AccessToken,
		RefreshToken: result.Tokens.RefreshToken,
		ExpiresIn:    result.Tokens.ExpiresIn,
		Tenants:      tenants,
	})
}
