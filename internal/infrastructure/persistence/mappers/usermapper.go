package mappers

import (
	"time"

	"aquameter/internal/domain/user"
	vo "aquameter/internal/domain/user/valueobjects"
	"aquameter/internal/infrastructure/persistence/models"
)

// UserMapper handles the conversion between User domain entities and persistence models.
type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		Name:         u.Name(),
		NationalID:   u.NationalID(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		AccessLevel:  u.AccessLevel().String(),
		Active:       u.IsActive(),
		CreatedAt:    u.CreatedAt().UnixMilli(),
		UpdatedAt:    u.UpdatedAt().UnixMilli(),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	return user.ReconstructUser(
		model.ID,
		model.Name,
		model.NationalID,
		model.PasswordHash,
		vo.Role(model.Role),
		vo.AccessLevel(model.AccessLevel),
		model.Active,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}
