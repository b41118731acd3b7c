package mappers

import (
	"time"

	"aquameter/internal/domain/unit"
	"aquameter/internal/infrastructure/persistence/models"
)

// UnitMapper handles the conversion between Unit domain entities and persistence models.
type UnitMapper interface {
	ToModel(u *unit.Unit) *models.UnitModel
	ToDomain(model *models.UnitModel) (*unit.Unit, error)
}

type UnitMapperImpl struct{}

func NewUnitMapper() UnitMapper {
	return &UnitMapperImpl{}
}

func (m *UnitMapperImpl) ToModel(u *unit.Unit) *models.UnitModel {
	return &models.UnitModel{
		ID:         u.ID(),
		BlockID:    u.BlockID(),
		Label:      u.Label(),
		FloorLabel: u.FloorLabel(),
		CreatedAt:  u.CreatedAt().UnixMilli(),
		UpdatedAt:  u.UpdatedAt().UnixMilli(),
	}
}

func (m *UnitMapperImpl) ToDomain(model *models.UnitModel) (*unit.Unit, error) {
	return unit.ReconstructUnit(
		model.ID,
		model.BlockID,
		model.Label,
		model.FloorLabel,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}
