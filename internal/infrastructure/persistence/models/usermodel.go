package models

type UserModel struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:200;not null"`
	NationalID   string `gorm:"uniqueIndex;size:20;not null"`
	PasswordHash string `gorm:"size:100;not null"`
	Role         string `gorm:"size:30;not null"`
	AccessLevel  string `gorm:"size:20;not null"`
	Active       bool   `gorm:"not null;default:true"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (UserModel) TableName() string {
	return "users"
}
