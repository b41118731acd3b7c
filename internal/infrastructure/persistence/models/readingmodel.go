package models

type ReadingModel struct {
	ID            uint    `gorm:"primaryKey"`
	TenantID      uint    `gorm:"not null;index"`
	MeterID       uint    `gorm:"not null;index"`
	Value         float64 `gorm:"not null;default:0"`
	PreviousValue float64 `gorm:"not null;default:0"`
	Consumption   float64 `gorm:"not null;default:0"`
	Total         float64 `gorm:"not null;default:0"`
	Period        string  `gorm:"size:10;not null;index"`
	CapturedAt    int64   `gorm:"not null;index"`
	PhotoRef      string  `gorm:"type:text"`
	Origin        string  `gorm:"size:20;not null"`
	Status        string  `gorm:"size:20;not null;index"`
	CreatedAt     int64   `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt     int64   `gorm:"autoUpdateTime:milli;not null"`
}

func (ReadingModel) TableName() string {
	return "readings"
}
