package model

import "time"

// TenantRolePermission assigns a permission to a TenantRole. Permissions
// are referenced by id only; the permission directory owns them and is
// consulted before an assignment is accepted.
type TenantRolePermission struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement"`
	TenantRoleID int64     `gorm:"column:tenant_role_id"`
	PermissionID int64     `gorm:"column:permission_id"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (TenantRolePermission) TableName() string {
	return "tenant_role_permissions"
}
