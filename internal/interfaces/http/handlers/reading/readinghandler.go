package reading

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"aquameter/internal/application/reading/usecases"
	"aquameter/internal/shared/errors"
	"aquameter/internal/shared/logger"
	"aquameter/internal/shared/utils"
)

// Handler serves the reading capture and history endpoints.
type Handler struct {
	captureUC usecases.CaptureReadingExecutor
	correctUC usecases.CorrectReadingExecutor
	listUC    usecases.ListReadingsExecutor
	deleteUC  usecases.DeleteReadingExecutor
	logger    logger.Interface
}

func NewHandler(
	captureUC usecases.CaptureReadingExecutor,
	correctUC usecases.CorrectReadingExecutor,
	listUC usecases.ListReadingsExecutor,
	deleteUC usecases.DeleteReadingExecutor,
	logger logger.Interface,
) *Handler {
	return &Handler{
		captureUC: captureUC,
		correctUC: correctUC,
		listUC:    listUC,
		deleteUC:  deleteUC,
		logger:    logger,
	}
}

// Capture handles POST /readings
func (h *Handler) Capture(c *gin.Context) {
	var req CaptureReadingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for capture reading", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := usecases.CaptureReadingCommand{
		MeterID:         req.MeterID,
		CapturedAt:      capturedAtOrNow(req.CapturedAt),
		Photo:           req.Photo,
		ManualValue:     req.ManualValue,
		IgnoreLastDigit: req.IgnoreLastDigit,
	}

	result, err := h.captureUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, ReadingResponse{
		ReadingID:  result.ReadingID,
		Status:     result.Status,
		FinalValue: result.FinalValue,
	})
}

// Correct handles PUT /readings/:id
func (h *Handler) Correct(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CorrectReadingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for correct reading", "reading_id", id, "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.correctUC.Execute(c.Request.Context(), usecases.CorrectReadingCommand{
		ReadingID: id,
		Value:     req.Value,
		Photo:     req.Photo,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", ReadingResponse{
		ReadingID:  result.ReadingID,
		Status:     result.Status,
		FinalValue: result.FinalValue,
	})
}

// List handles GET /readings
func (h *Handler) List(c *gin.Context) {
	query, err := parseListQuery(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	rows, err := h.listUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toListRowResponses(rows))
}

// Delete handles DELETE /readings/:id
func (h *Handler) Delete(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteReadingCommand{ReadingID: id}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func parseListQuery(c *gin.Context) (usecases.ListReadingsQuery, error) {
	var query usecases.ListReadingsQuery

	tenantID, err := utils.ParseUintQuery(c, "tenant_id")
	if err != nil {
		return query, err
	}
	query.TenantID = tenantID

	if raw := c.Query("month"); raw != "" {
		month, err := strconv.Atoi(raw)
		if err != nil || month < 1 || month > 12 {
			return query, errors.NewValidationError("invalid month parameter")
		}
		query.Month = month
	}
	if raw := c.Query("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil || year < 2000 || year > 2100 {
			return query, errors.NewValidationError("invalid year parameter")
		}
		query.Year = year
	}

	if raw := c.Query("start_date"); raw != "" {
		start, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return query, errors.NewValidationError("invalid start_date parameter, expected YYYY-MM-DD")
		}
		query.StartDate = start
	}
	if raw := c.Query("end_date"); raw != "" {
		end, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return query, errors.NewValidationError("invalid end_date parameter, expected YYYY-MM-DD")
		}
		// Make the end date inclusive for the whole day.
		query.EndDate = end.Add(24*time.Hour - time.Millisecond)
	}

	return query, nil
}
