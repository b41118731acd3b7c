package models

type UnitModel struct {
	ID         uint   `gorm:"primaryKey"`
	BlockID    uint   `gorm:"not null;uniqueIndex:idx_units_block_label"`
	Label      string `gorm:"size:50;not null;uniqueIndex:idx_units_block_label"`
	FloorLabel string `gorm:"size:50"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt  int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (UnitModel) TableName() string {
	return "units"
}
