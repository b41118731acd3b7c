package models

type MeterModel struct {
	ID                 uint    `gorm:"primaryKey"`
	UnitID             uint    `gorm:"not null;index"`
	UtilityType        string  `gorm:"size:20;not null;index"`
	PreviousReading    float64 `gorm:"not null;default:0"`
	AverageConsumption float64 `gorm:"not null;default:0"`
	CreatedAt          int64   `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt          int64   `gorm:"autoUpdateTime:milli;not null"`
}

func (MeterModel) TableName() string {
	return "meters"
}
