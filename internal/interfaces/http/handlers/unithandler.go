package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aquameter/internal/application/unit/usecases"
	"aquameter/internal/shared/logger"
	"aquameter/internal/shared/utils"
)

type UnitHandler struct {
	createUC      usecases.CreateUnitExecutor
	generateUC    usecases.GenerateUnitsExecutor
	listUC        usecases.ListUnitsExecutor
	deleteUC      usecases.DeleteUnitExecutor
	updateMeterUC usecases.UpdateMeterExecutor
	logger        logger.Interface
}

func NewUnitHandler(
	createUC usecases.CreateUnitExecutor,
	generateUC usecases.GenerateUnitsExecutor,
	listUC usecases.ListUnitsExecutor,
	deleteUC usecases.DeleteUnitExecutor,
	updateMeterUC usecases.UpdateMeterExecutor,
	logger logger.Interface,
) *UnitHandler {
	return &UnitHandler{
		createUC:      createUC,
		generateUC:    generateUC,
		listUC:        listUC,
		deleteUC:      deleteUC,
		updateMeterUC: updateMeterUC,
		logger:        logger,
	}
}

type MeterSpecRequest struct {
	UtilityType        string  `json:"utility_type" binding:"required,oneof=cold_water hot_water gas"`
	InitialReading     float64 `json:"initial_reading" binding:"gte=0"`
	AverageConsumption float64 `json:"average_consumption" binding:"gte=0"`
}

type CreateUnitRequest struct {
	BlockID    uint               `json:"block_id" binding:"required"`
	Label      string             `json:"label" binding:"required"`
	FloorLabel string             `json:"floor_label"`
	Meters     []MeterSpecRequest `json:"meters"`
}

type GenerateUnitsRequest struct {
	BlockID       uint `json:"block_id" binding:"required"`
	RangeStart    int  `json:"range_start"`
	RangeEnd      int  `json:"range_end"`
	Floors        int  `json:"floors"`
	UnitsPerFloor int  `json:"units_per_floor"`
}

type CreateUnitResponse struct {
	UnitID   uint   `json:"unit_id"`
	Label    string `json:"label"`
	MeterIDs []uint `json:"meter_ids"`
}

type GenerateUnitsResponse struct {
	Requested int `json:"requested"`
	Created   int `json:"created"`
	Skipped   int `json:"skipped"`
}

type UpdateMeterRequest struct {
	AverageConsumption float64 `json:"average_consumption" binding:"gte=0"`
}

type UnitMeterResponse struct {
	MeterID            uint    `json:"meter_id"`
	UtilityType        string  `json:"utility_type"`
	PreviousReading    float64 `json:"previous_reading"`
	AverageConsumption float64 `json:"average_consumption"`
}

type UnitResponse struct {
	UnitID     uint                `json:"unit_id"`
	BlockID    uint                `json:"block_id"`
	Label      string              `json:"label"`
	FloorLabel string              `json:"floor_label,omitempty"`
	Meters     []UnitMeterResponse `json:"meters"`
}

// Create handles POST /units
func (h *UnitHandler) Create(c *gin.Context) {
	var req CreateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	meters := make([]usecases.MeterSpec, 0, len(req.Meters))
	for _, m := range req.Meters {
		meters = append(meters, usecases.MeterSpec{
			UtilityType:        m.UtilityType,
			InitialReading:     m.InitialReading,
			AverageConsumption: m.AverageConsumption,
		})
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateUnitCommand{
		BlockID:    req.BlockID,
		Label:      req.Label,
		FloorLabel: req.FloorLabel,
		Meters:     meters,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, CreateUnitResponse{
		UnitID:   result.UnitID,
		Label:    result.Label,
		MeterIDs: result.MeterIDs,
	})
}

// Generate handles POST /units/generate
func (h *UnitHandler) Generate(c *gin.Context) {
	var req GenerateUnitsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.generateUC.Execute(c.Request.Context(), usecases.GenerateUnitsCommand{
		BlockID:       req.BlockID,
		RangeStart:    req.RangeStart,
		RangeEnd:      req.RangeEnd,
		Floors:        req.Floors,
		UnitsPerFloor: req.UnitsPerFloor,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", GenerateUnitsResponse{
		Requested: result.Requested,
		Created:   result.Created,
		Skipped:   result.Skipped,
	})
}

// List handles GET /units?block_id=N
func (h *UnitHandler) List(c *gin.Context) {
	blockID, err := utils.ParseUintQuery(c, "block_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	results, err := h.listUC.Execute(c.Request.Context(), usecases.ListUnitsQuery{BlockID: blockID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	responses := make([]UnitResponse, 0, len(results))
	for _, u := range results {
		meters := make([]UnitMeterResponse, 0, len(u.Meters))
		for _, m := range u.Meters {
			meters = append(meters, UnitMeterResponse{
				MeterID:            m.MeterID,
				UtilityType:        m.UtilityType,
				PreviousReading:    m.PreviousReading,
				AverageConsumption: m.AverageConsumption,
			})
		}
		responses = append(responses, UnitResponse{
			UnitID:     u.UnitID,
			BlockID:    u.BlockID,
			Label:      u.Label,
			FloorLabel: u.FloorLabel,
			Meters:     meters,
		})
	}

	utils.SuccessResponse(c, http.StatusOK, "", responses)
}

// UpdateMeter handles PUT /meters/:id
func (h *UnitHandler) UpdateMeter(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateMeterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updateMeterUC.Execute(c.Request.Context(), usecases.UpdateMeterCommand{
		MeterID:            id,
		AverageConsumption: req.AverageConsumption,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", UnitMeterResponse{
		MeterID:            result.MeterID,
		UtilityType:        result.UtilityType,
		PreviousReading:    result.PreviousReading,
		AverageConsumption: result.AverageConsumption,
	})
}

// Delete handles DELETE /units/:id
func (h *UnitHandler) Delete(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteUnitCommand{UnitID: id}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
