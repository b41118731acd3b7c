package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"aquameter/internal/domain/user"
	"aquameter/internal/infrastructure/persistence/mappers"
	"aquameter/internal/infrastructure/persistence/models"
	"aquameter/internal/shared/db"
	"aquameter/internal/shared/errors"
)

type UserRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		db:     db,
		mapper: mappers.NewUserMapper(),
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("national ID already registered")
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return u.SetID(model.ID)
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("user not found")
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) FindByNationalID(ctx context.Context, nationalID string) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("national_id = ?", nationalID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("user not found")
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) List(ctx context.Context) ([]*user.User, error) {
	var modelList []models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("name").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]*user.User, 0, len(modelList))
	for i := range modelList {
		u, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.UserModel{}).
		Where("id = ?", model.ID).
		Select("Name", "PasswordHash", "Role", "AccessLevel", "Active", "UpdatedAt").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update user: %w", result.Error)
	}

	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	// Links are removed first so a deleted user leaves no dangling access.
	if err := tx.Where("user_id = ?", id).Delete(&models.UserTenantLinkModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete user links: %w", err)
	}

	result := tx.Delete(&models.UserModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("user not found")
	}

	return nil
}

func (r *UserRepository) LinkTenant(ctx context.Context, userID, tenantID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	link := models.UserTenantLinkModel{UserID: userID, TenantID: tenantID}
	if err := tx.Create(&link).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("user already linked to tenant")
		}
		return fmt.Errorf("failed to link user to tenant: %w", err)
	}

	return nil
}

func (r *UserRepository) UnlinkTenant(ctx context.Context, userID, tenantID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Where("user_id = ? AND tenant_id = ?", userID, tenantID).
		Delete(&models.UserTenantLinkModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to unlink user from tenant: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("link not found")
	}

	return nil
}

func (r *UserRepository) ListLinkedTenantIDs(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Model(&models.UserTenantLinkModel{}).
		Where("user_id = ?", userID).
		Pluck("tenant_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list linked tenants: %w", err)
	}

	return ids, nil
}
