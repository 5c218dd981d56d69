package model

import "time"

// TenantRoleUser assigns a user to a TenantRole. Users are referenced by
// id only; the user directory owns the user records.
type TenantRoleUser struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement"`
	TenantRoleID int64     `gorm:"column:tenant_role_id"`
	UserID       int64     `gorm:"column:user_id"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (TenantRoleUser) TableName() string {
	return "tenant_role_users"
}
