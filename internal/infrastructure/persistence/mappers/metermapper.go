package mappers

import (
	"time"

	"aquameter/internal/domain/meter"
	vo "aquameter/internal/domain/meter/valueobjects"
	"aquameter/internal/infrastructure/persistence/models"
)

// MeterMapper handles the conversion between Meter domain entities and persistence models.
type MeterMapper interface {
	ToModel(m *meter.Meter) *models.MeterModel
	ToDomain(model *models.MeterModel) (*meter.Meter, error)
}

type MeterMapperImpl struct{}

func NewMeterMapper() MeterMapper {
	return &MeterMapperImpl{}
}

func (mm *MeterMapperImpl) ToModel(m *meter.Meter) *models.MeterModel {
	return &models.MeterModel{
		ID:                 m.ID(),
		UnitID:             m.UnitID(),
		UtilityType:        m.UtilityType().String(),
		PreviousReading:    m.PreviousReading(),
		AverageConsumption: m.AverageConsumption(),
		CreatedAt:          m.CreatedAt().UnixMilli(),
		UpdatedAt:          m.UpdatedAt().UnixMilli(),
	}
}

func (mm *MeterMapperImpl) ToDomain(model *models.MeterModel) (*meter.Meter, error) {
	return meter.ReconstructMeter(
		model.ID,
		model.UnitID,
		vo.UtilityType(model.UtilityType),
		model.PreviousReading,
		model.AverageConsumption,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}
