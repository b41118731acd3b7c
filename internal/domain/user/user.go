package user

import (
	"fmt"
	"time"

	vo "aquameter/internal/domain/user/valueobjects"
)

// User is a back-office or field account, identified by a unique national
// ID. The password hash is produced outside the domain by the configured
// hasher.
type User struct {
	id           uint
	name         string
	nationalID   string
	passwordHash string
	role         vo.Role
	accessLevel  vo.AccessLevel
	active       bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(name, nationalID, passwordHash string, role vo.Role, accessLevel vo.AccessLevel) (*User, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(nationalID) < 5 {
		return nil, fmt.Errorf("national ID is too short")
	}
	if len(passwordHash) == 0 {
		return nil, fmt.Errorf("password hash is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role")
	}
	if !accessLevel.IsValid() {
		return nil, fmt.Errorf("invalid access level")
	}

	now := time.Now()
	return &User{
		name:         name,
		nationalID:   nationalID,
		passwordHash: passwordHash,
		role:         role,
		accessLevel:  accessLevel,
		active:       true,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(
	id uint,
	name, nationalID, passwordHash string,
	role vo.Role,
	accessLevel vo.AccessLevel,
	active bool,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if len(nationalID) == 0 {
		return nil, fmt.Errorf("national ID is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role")
	}
	if !accessLevel.IsValid() {
		return nil, fmt.Errorf("invalid access level")
	}

	return &User{
		id:           id,
		name:         name,
		nationalID:   nationalID,
		passwordHash: passwordHash,
		role:         role,
		accessLevel:  accessLevel,
		active:       active,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint                    { return u.id }
func (u *User) Name() string                { return u.name }
func (u *User) NationalID() string          { return u.nationalID }
func (u *User) PasswordHash() string        { return u.passwordHash }
func (u *User) Role() vo.Role               { return u.role }
func (u *User) AccessLevel() vo.AccessLevel { return u.accessLevel }
func (u *User) IsActive() bool              { return u.active }
func (u *User) CreatedAt() time.Time        { return u.createdAt }
func (u *User) UpdatedAt() time.Time        { return u.updatedAt }

// SetID assigns the store-generated identifier after insertion.
func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// UpdateProfile changes the user's display name and role assignment.
func (u *User) UpdateProfile(name string, role vo.Role, accessLevel vo.AccessLevel) error {
	if len(name) == 0 {
		return fmt.Errorf("name is required")
	}
	if !role.IsValid() {
		return fmt.Errorf("invalid role")
	}
	if !accessLevel.IsValid() {
		return fmt.Errorf("invalid access level")
	}
	u.name = name
	u.role = role
	u.accessLevel = accessLevel
	u.updatedAt = time.Now()
	return nil
}

// ChangePasswordHash replaces the stored credential hash.
func (u *User) ChangePasswordHash(hash string) error {
	if len(hash) == 0 {
		return fmt.Errorf("password hash is required")
	}
	u.passwordHash = hash
	u.updatedAt = time.Now()
	return nil
}

// Deactivate disables the account without deleting it.
func (u *User) Deactivate() {
	u.active = false
	u.updatedAt = time.Now()
}
