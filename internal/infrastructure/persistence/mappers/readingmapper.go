package mappers

import (
	"time"

	"aquameter/internal/domain/reading"
	vo "aquameter/internal/domain/reading/valueobjects"
	"aquameter/internal/infrastructure/persistence/models"
)

// ReadingMapper handles the conversion between Reading domain entities and persistence models.
type ReadingMapper interface {
	ToModel(r *reading.Reading) *models.ReadingModel
	ToDomain(model *models.ReadingModel) (*reading.Reading, error)
}

type ReadingMapperImpl struct{}

func NewReadingMapper() ReadingMapper {
	return &ReadingMapperImpl{}
}

func (m *ReadingMapperImpl) ToModel(r *reading.Reading) *models.ReadingModel {
	return &models.ReadingModel{
		ID:            r.ID(),
		TenantID:      r.TenantID(),
		MeterID:       r.MeterID(),
		Value:         r.Value(),
		PreviousValue: r.PreviousValue(),
		Consumption:   r.Consumption(),
		Total:         r.Total(),
		Period:        r.Period(),
		CapturedAt:    r.CapturedAt().UnixMilli(),
		PhotoRef:      r.PhotoRef(),
		Origin:        r.Origin().String(),
		Status:        r.Status().String(),
		CreatedAt:     r.CreatedAt().UnixMilli(),
		UpdatedAt:     r.UpdatedAt().UnixMilli(),
	}
}

func (m *ReadingMapperImpl) ToDomain(model *models.ReadingModel) (*reading.Reading, error) {
	return reading.ReconstructReading(
		model.ID,
		model.TenantID,
		model.MeterID,
		model.Value,
		model.PreviousValue,
		model.Consumption,
		model.Total,
		model.Period,
		time.UnixMilli(model.CapturedAt),
		model.PhotoRef,
		vo.Origin(model.Origin),
		vo.Status(model.Status),
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}
