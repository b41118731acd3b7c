package models

type UserTenantLinkModel struct {
	ID        uint  `gorm:"primaryKey"`
	UserID    uint  `gorm:"not null;uniqueIndex:idx_user_tenant_links_pair"`
	TenantID  uint  `gorm:"not null;uniqueIndex:idx_user_tenant_links_pair"`
	CreatedAt int64 `gorm:"autoCreateTime:milli;not null"`
}

func (UserTenantLinkModel) TableName() string {
	return "user_tenant_links"
}
