package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aquameter/internal/application/block/usecases"
	"aquameter/internal/shared/logger"
	"aquameter/internal/shared/utils"
)

type BlockHandler struct {
	createUC usecases.CreateBlockExecutor
	listUC   usecases.ListBlocksExecutor
	updateUC usecases.UpdateBlockExecutor
	deleteUC usecases.DeleteBlockExecutor
	logger   logger.Interface
}

func NewBlockHandler(
	createUC usecases.CreateBlockExecutor,
	listUC usecases.ListBlocksExecutor,
	updateUC usecases.UpdateBlockExecutor,
	deleteUC usecases.DeleteBlockExecutor,
	logger logger.Interface,
) *BlockHandler {
	return &BlockHandler{
		createUC: createUC,
		listUC:   listUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		logger:   logger,
	}
}

type CreateBlockRequest struct {
	TenantID uint   `json:"tenant_id" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

type UpdateBlockRequest struct {
	Name string `json:"name" binding:"required"`
}

type BlockResponse struct {
	BlockID  uint   `json:"block_id"`
	TenantID uint   `json:"tenant_id"`
	Name     string `json:"name"`
}

func toBlockResponse(r *usecases.BlockResult) BlockResponse {
	return BlockResponse{
		BlockID:  r.BlockID,
		TenantID: r.TenantID,
		Name:     r.Name,
	}
}

// Create handles POST /blocks
func (h *BlockHandler) Create(c *gin.Context) {
	var req CreateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateBlockCommand{
		TenantID: req.TenantID,
		Name:     req.Name,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toBlockResponse(result))
}

// List handles GET /blocks?tenant_id=N
func (h *BlockHandler) List(c *gin.Context) {
	tenantID, err := utils.ParseUintQuery(c, "tenant_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	results, err := h.listUC.Execute(c.Request.Context(), usecases.ListBlocksQuery{TenantID: tenantID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	responses := make([]BlockResponse, 0, len(results))
	for i := range results {
		responses = append(responses, toBlockResponse(&results[i]))
	}

	utils.SuccessResponse(c, http.StatusOK, "", responses)
}

// Update handles PUT /blocks/:id
func (h *BlockHandler) Update(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateBlockCommand{
		BlockID: id,
		Name:    req.Name,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toBlockResponse(result))
}

// Delete handles DELETE /blocks/:id
func (h *BlockHandler) Delete(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteBlockCommand{BlockID: id}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
