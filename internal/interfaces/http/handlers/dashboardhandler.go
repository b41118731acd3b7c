package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"aquameter/internal/application/dashboard/usecases"
	"aquameter/internal/shared/logger"
	"aquameter/internal/shared/utils"
)

// DashboardHandler serves the collection status board for one tenant.
type DashboardHandler struct {
	getDashboardUC usecases.GetDashboardExecutor
	logger         logger.Interface
}

func NewDashboardHandler(getDashboardUC usecases.GetDashboardExecutor, logger logger.Interface) *DashboardHandler {
	return &DashboardHandler{
		getDashboardUC: getDashboardUC,
		logger:         logger,
	}
}

type MeterStatusResponse struct {
	MeterID     uint     `json:"meter_id"`
	UnitLabel   string   `json:"unit_label"`
	BlockName   string   `json:"block_name"`
	UtilityType string   `json:"utility_type"`
	Color       string   `json:"color"`
	ReadingID   *uint    `json:"reading_id,omitempty"`
	Value       *float64 `json:"value,omitempty"`
	CapturedAt  *int64   `json:"captured_at,omitempty"`
	Status      string   `json:"status,omitempty"`
}

type DashboardResponse struct {
	TenantID  uint                  `json:"tenant_id"`
	Period    string                `json:"period"`
	Collected int                   `json:"collected"`
	Pending   int                   `json:"pending"`
	Flagged   int                   `json:"flagged"`
	Meters    []MeterStatusResponse `json:"meters"`
}

// GetDashboard handles GET /dashboard?tenant_id=N
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	tenantID, err := utils.ParseUintQuery(c, "tenant_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getDashboardUC.Execute(c.Request.Context(), usecases.GetDashboardQuery{TenantID: tenantID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	meters := make([]MeterStatusResponse, 0, len(result.Meters))
	for _, m := range result.Meters {
		meters = append(meters, MeterStatusResponse{
			MeterID:     m.MeterID,
			UnitLabel:   m.UnitLabel,
			BlockName:   m.BlockName,
			UtilityType: m.UtilityType,
			Color:       m.Color,
			ReadingID:   m.ReadingID,
			Value:       m.Value,
			CapturedAt:  toMillis(m.CapturedAt),
			Status:      m.Status,
		})
	}

	utils.SuccessResponse(c, http.StatusOK, "", DashboardResponse{
		TenantID:  result.TenantID,
		Period:    result.Period,
		Collected: result.Totals.Collected,
		Pending:   result.Totals.Pending,
		Flagged:   result.Totals.Flagged,
		Meters:    meters,
	})
}

func toMillis(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	ms := t.UnixMilli()
	return &ms
}
