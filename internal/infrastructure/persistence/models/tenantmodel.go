package models

type TenantModel struct {
	ID               uint    `gorm:"primaryKey"`
	Name             string  `gorm:"size:200;not null"`
	ColdWaterRate    float64 `gorm:"not null;default:0"`
	HotWaterRate     float64 `gorm:"not null;default:0"`
	GasRate          float64 `gorm:"not null;default:0"`
	BillingCutoffDay int     `gorm:"not null;default:1"`
	Active           bool    `gorm:"not null;default:true"`
	CreatedAt        int64   `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt        int64   `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TenantModel) TableName() string {
	return "tenants"
}
