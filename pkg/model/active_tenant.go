package model

// ActiveTenant records which tenant a user currently works under. It is
// derived state: once the user loses the last role assignment under a
// tenant, the matching ActiveTenant rows are removed.
type ActiveTenant struct {
	ID       int64 `gorm:"column:id;primaryKey;autoIncrement"`
	UserID   int64 `gorm:"column:user_id"`
	TenantID int64 `gorm:"column:tenant_id"`
}

func (ActiveTenant) TableName() string {
	return "active_tenants"
}
