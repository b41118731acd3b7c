package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aquameter/internal/application/tenant/usecases"
	"aquameter/internal/interfaces/http/middleware"
	"aquameter/internal/shared/logger"
	"aquameter/internal/shared/utils"
)

type TenantHandler struct {
	createUC usecases.CreateTenantExecutor
	updateUC usecases.UpdateTenantExecutor
	deleteUC usecases.DeleteTenantExecutor
	listUC   usecases.ListTenantsExecutor
	logger   logger.Interface
}

func NewTenantHandler(
	createUC usecases.CreateTenantExecutor,
	updateUC usecases.UpdateTenantExecutor,
	deleteUC usecases.DeleteTenantExecutor,
	listUC usecases.ListTenantsExecutor,
	logger logger.Interface,
) *TenantHandler {
	return &TenantHandler{
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		listUC:   listUC,
		logger:   logger,
	}
}

type CreateTenantRequest struct {
	Name             string  `json:"name" binding:"required"`
	ColdWaterRate    float64 `json:"cold_water_rate" binding:"gte=0"`
	HotWaterRate     float64 `json:"hot_water_rate" binding:"gte=0"`
	GasRate          float64 `json:"gas_rate" binding:"gte=0"`
	BillingCutoffDay int     `json:"billing_cutoff_day" binding:"required,min=1,max=28"`
}

type UpdateTenantRequest struct {
	Name             string  `json:"name" binding:"required"`
	ColdWaterRate    float64 `json:"cold_water_rate" binding:"gte=0"`
	HotWaterRate     float64 `json:"hot_water_rate" binding:"gte=0"`
	GasRate          float64 `json:"gas_rate" binding:"gte=0"`
	BillingCutoffDay int     `json:"billing_cutoff_day" binding:"required,min=1,max=28"`
	Active           bool    `json:"active"`
}

type TenantResponse struct {
	TenantID         uint    `json:"tenant_id"`
	Name             string  `json:"name"`
	ColdWaterRate    float64 `json:"cold_water_rate"`
	HotWaterRate     float64 `json:"hot_water_rate"`
	GasRate          float64 `json:"gas_rate"`
	BillingCutoffDay int     `json:"billing_cutoff_day"`
	Active           bool    `json:"active"`
}

func toTenantResponse(r *usecases.TenantResult) TenantResponse {
	return TenantResponse{
		TenantID:         r.TenantID,
		Name:             r.Name,
		ColdWaterRate:    r.ColdWaterRate,
		HotWaterRate:     r.HotWaterRate,
		GasRate:          r.GasRate,
		BillingCutoffDay: r.BillingCutoffDay,
		Active:           r.Active,
	}
}

// Create handles POST /tenants
func (h *TenantHandler) Create(c *gin.Context) {
	var req CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateTenantCommand{
		Name:             req.Name,
		ColdWaterRate:    req.ColdWaterRate,
		HotWaterRate:     req.HotWaterRate,
		GasRate:          req.GasRate,
		BillingCutoffDay: req.BillingCutoffDay,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toTenantResponse(result))
}

// Update handles PUT /tenants/:id
func (h *TenantHandler) Update(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateTenantCommand{
		TenantID:         id,
		Name:             req.Name,
		ColdWaterRate:    req.ColdWaterRate,
		HotWaterRate:     req.HotWaterRate,
		GasRate:          req.GasRate,
		BillingCutoffDay: req.BillingCutoffDay,
		Active:           req.Active,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toTenantResponse(result))
}

// Delete handles DELETE /tenants/:id
func (h *TenantHandler) Delete(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteTenantCommand{TenantID: id}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// List handles GET /tenants
func (h *TenantHandler) List(c *gin.Context) {
	results, err := h.listUC.Execute(c.Request.Context(), usecases.ListTenantsQuery{
		UserID:      c.GetUint(middleware.ContextKeyUserID),
		AccessLevel: c.GetString(middleware.ContextKeyAccessLevel),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	responses := make([]TenantResponse, 0, len(results))
	for i := range results {
		responses = append(responses, toTenantResponse(&results[i]))
	}

	utils.SuccessResponse(c, http.StatusOK, "", responses)
}
