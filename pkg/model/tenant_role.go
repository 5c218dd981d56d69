package model

import "time"

// TenantRole binds one Role to one Tenant. The (tenant_id, role_id) pair
// is unique; the database constraint is the final guard.
type TenantRole struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	TenantID  int64     `gorm:"column:tenant_id"`
	RoleID    int64     `gorm:"column:role_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (TenantRole) TableName() string {
	return "tenant_roles"
}
