package reading

import (
	"time"

	"aquameter/internal/domain/reading"
)

// CaptureReadingRequest is the mobile capture payload. Photo carries the
// meter photo as base64, optionally as a data URL. CapturedAt defaults to
// the server clock when the client omits it.
type CaptureReadingRequest struct {
	MeterID         uint   `json:"meter_id" binding:"required"`
	Photo           string `json:"photo" binding:"required"`
	CapturedAt      *int64 `json:"captured_at"`
	ManualValue     string `json:"manual_value"`
	IgnoreLastDigit bool   `json:"ignore_last_digit"`
}

type CorrectReadingRequest struct {
	Value float64 `json:"value" binding:"required,gt=0"`
	Photo string  `json:"photo"`
}

type ReadingResponse struct {
	ReadingID  uint    `json:"reading_id"`
	Status     string  `json:"status"`
	FinalValue float64 `json:"final_value"`
}

type ListRowResponse struct {
	ID          uint    `json:"id"`
	Value       float64 `json:"value"`
	Consumption float64 `json:"consumption"`
	Total       float64 `json:"total"`
	CapturedAt  int64   `json:"captured_at"`
	Status      string  `json:"status"`
	Origin      string  `json:"origin"`
	PhotoRef    string  `json:"photo_ref,omitempty"`
	MeterID     uint    `json:"meter_id"`
	UtilityType string  `json:"utility_type"`
	UnitLabel   string  `json:"unit_label"`
	BlockName   string  `json:"block_name"`
}

func toListRowResponses(rows []reading.ListRow) []ListRowResponse {
	responses := make([]ListRowResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, ListRowResponse{
			ID:          row.ID,
			Value:       row.Value,
			Consumption: row.Consumption,
			Total:       row.Total,
			CapturedAt:  row.CapturedAt.UnixMilli(),
			Status:      row.Status.String(),
			Origin:      row.Origin.String(),
			PhotoRef:    row.PhotoRef,
			MeterID:     row.MeterID,
			UtilityType: row.UtilityType.String(),
			UnitLabel:   row.UnitLabel,
			BlockName:   row.BlockName,
		})
	}
	return responses
}

func capturedAtOrNow(ms *int64) time.Time {
	if ms == nil || *ms <= 0 {
		return time.Now()
	}
	return time.UnixMilli(*ms)
}
