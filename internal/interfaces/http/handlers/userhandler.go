package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aquameter/internal/application/user/usecases"
	"aquameter/internal/shared/logger"
	"aquameter/internal/shared/utils"
)

type UserHandler struct {
	createUC          usecases.CreateUserExecutor
	updateUC          usecases.UpdateUserExecutor
	deleteUC          usecases.DeleteUserExecutor
	listUC            usecases.ListUsersExecutor
	linkTenantUC      usecases.LinkTenantExecutor
	unlinkTenantUC    usecases.UnlinkTenantExecutor
	listUserTenantsUC usecases.ListUserTenantsExecutor
	logger            logger.Interface
}

func NewUserHandler(
	createUC usecases.CreateUserExecutor,
	updateUC usecases.UpdateUserExecutor,
	deleteUC usecases.DeleteUserExecutor,
	listUC usecases.ListUsersExecutor,
	linkTenantUC usecases.LinkTenantExecutor,
	unlinkTenantUC usecases.UnlinkTenantExecutor,
	listUserTenantsUC usecases.ListUserTenantsExecutor,
	logger logger.Interface,
) *UserHandler {
	return &UserHandler{
		createUC:          createUC,
		updateUC:          updateUC,
		deleteUC:          deleteUC,
		listUC:            listUC,
		linkTenantUC:      linkTenantUC,
		unlinkTenantUC:    unlinkTenantUC,
		listUserTenantsUC: listUserTenantsUC,
		logger:            logger,
	}
}

type CreateUserRequest struct {
	Name        string `json:"name" validate:"required"`
	NationalID  string `json:"national_id" validate:"required"`
	Password    string `json:"password" validate:"required,min=6"`
	Role        string `json:"role" validate:"required,oneof=general_admin building_manager maintenance"`
	AccessLevel string `json:"access_level" validate:"required,oneof=master operator"`
}

type UpdateUserRequest struct {
	Name        string `json:"name" validate:"required"`
	Role        string `json:"role" validate:"required,oneof=general_admin building_manager maintenance"`
	AccessLevel string `json:"access_level" validate:"required,oneof=master operator"`
	Password    string `json:"password" validate:"omitempty,min=6"`
	Active      bool   `json:"active"`
}

type UserResponse struct {
	UserID      uint   `json:"user_id"`
	Name        string `json:"name"`
	NationalID  string `json:"national_id"`
	Role        string `json:"role"`
	AccessLevel string `json:"access_level"`
	Active      bool   `json:"active"`
}

func toUserResponse(r *usecases.UserResult) UserResponse {
	return UserResponse{
		UserID:      r.UserID,
		Name:        r.Name,
		NationalID:  r.NationalID,
		Role:        r.Role,
		AccessLevel: r.AccessLevel,
		Active:      r.Active,
	}
}

// Create handles POST /users
func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateUserCommand{
		Name:        req.Name,
		NationalID:  req.NationalID,
		Password:    req.Password,
		Role:        req.Role,
		AccessLevel: req.AccessLevel,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toUserResponse(result))
}

// Update handles PUT /users/:id
func (h *UserHandler) Update(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateUserCommand{
		UserID:      id,
		Name:        req.Name,
		Role:        req.Role,
		AccessLevel: req.AccessLevel,
		Password:    req.Password,
		Active:      req.Active,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toUserResponse(result))
}

// Delete handles DELETE /users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteUserCommand{UserID: id}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// List handles GET /users
func (h *UserHandler) List(c *gin.Context) {
	results, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	responses := make([]UserResponse, 0, len(results))
	for i := range results {
		responses = append(responses, toUserResponse(&results[i]))
	}

	utils.SuccessResponse(c, http.StatusOK, "", responses)
}

// LinkTenant handles POST /users/:id/tenants/:tenantId
func (h *UserHandler) LinkTenant(c *gin.Context) {
	userID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	tenantID, err := utils.ParseUintParam(c, "tenantId")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.linkTenantUC.Execute(c.Request.Context(), usecases.LinkTenantCommand{
		UserID:   userID,
		TenantID: tenantID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "tenant linked", nil)
}

// UnlinkTenant handles DELETE /users/:id/tenants/:tenantId
func (h *UserHandler) UnlinkTenant(c *gin.Context) {
	userID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	tenantID, err := utils.ParseUintParam(c, "tenantId")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.unlinkTenantUC.Execute(c.Request.Context(), usecases.UnlinkTenantCommand{
		UserID:   userID,
		TenantID: tenantID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// ListTenants handles GET /users/:id/tenants
func (h *UserHandler) ListTenants(c *gin.Context) {
	userID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	results, err := h.listUserTenantsUC.Execute(c.Request.Context(), usecases.ListUserTenantsQuery{UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	type linkedTenantResponse struct {
		TenantID uint   `json:"tenant_id"`
		Name     string `json:"name"`
	}
	responses := make([]linkedTenantResponse, 0, len(results))
	for _, r := range results {
		responses = append(responses, linkedTenantResponse{TenantID: r.TenantID, Name: r.Name})
	}

	utils.SuccessResponse(c, http.StatusOK, "", responses)
}
