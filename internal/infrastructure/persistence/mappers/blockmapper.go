package mappers

import (
	"time"

	"aquameter/internal/domain/block"
	"aquameter/internal/infrastructure/persistence/models"
)

// BlockMapper handles the conversion between Block domain entities and persistence models.
type BlockMapper interface {
	ToModel(b *block.Block) *models.BlockModel
	ToDomain(model *models.BlockModel) (*block.Block, error)
}

type BlockMapperImpl struct{}

func NewBlockMapper() BlockMapper {
	return &BlockMapperImpl{}
}

func (m *BlockMapperImpl) ToModel(b *block.Block) *models.BlockModel {
	return &models.BlockModel{
		ID:        b.ID(),
		TenantID:  b.TenantID(),
		Name:      b.Name(),
		CreatedAt: b.CreatedAt().UnixMilli(),
		UpdatedAt: b.UpdatedAt().UnixMilli(),
	}
}

func (m *BlockMapperImpl) ToDomain(model *models.BlockModel) (*block.Block, error) {
	return block.ReconstructBlock(
		model.ID,
		model.TenantID,
		model.Name,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}
