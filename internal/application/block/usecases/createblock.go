package usecases

import (
	"context"

	"aquameter/internal/domain/block"
	"aquameter/internal/domain/tenant"
	"aquameter/internal/shared/errors"
	"aquameter/internal/shared/logger"
)

type CreateBlockCommand struct {
	TenantID uint
	Name     string
}

type BlockResult struct {
	BlockID  uint
	TenantID uint
	Name     string
}

type CreateBlockUseCase struct {
	blockRepo  block.Repository
	tenantRepo tenant.Repository
	logger     logger.Interface
}

func NewCreateBlockUseCase(blockRepo block.Repository, tenantRepo tenant.Repository, logger logger.Interface) *CreateBlockUseCase {
	return &CreateBlockUseCase{
		blockRepo:  blockRepo,
		tenantRepo: tenantRepo,
		logger:     logger,
	}
}

func (uc *CreateBlockUseCase) Execute(ctx context.Context, cmd CreateBlockCommand) (*BlockResult, error) {
	// The tenant must exist before hanging a block under it.
	if _, err := uc.tenantRepo.FindByID(ctx, cmd.TenantID); err != nil {
		return nil, err
	}

	b, err := block.NewBlock(cmd.TenantID, cmd.Name)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.blockRepo.Create(ctx, b); err != nil {
		uc.logger.Errorw("failed to create block", "tenant_id", cmd.TenantID, "error", err)
		return nil, err
	}

	uc.logger.Infow("block created", "block_id", b.ID(), "tenant_id", b.TenantID())

	return blockToResult(b), nil
}

func blockToResult(b *block.Block) *BlockResult {
	return &BlockResult{
		BlockID:  b.ID(),
		TenantID: b.TenantID(),
		Name:     b.Name(),
	}
}
