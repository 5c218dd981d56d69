package gorm

import (
	"gorm.io/gorm"

	"tenauth/pkg/model"
	"tenauth/pkg/server/store"
)

// Ensure ActiveTenantsStore implements store.ActiveTenantsStore
var _ store.ActiveTenantsStore = (*ActiveTenantsStore)(nil)

// ActiveTenantsStore implements store.ActiveTenantsStore using GORM
type ActiveTenantsStore struct {
	db *gorm.DB
}

// NewActiveTenantsStore creates a new ActiveTenantsStore
func NewActiveTenantsStore(db *gorm.DB) *ActiveTenantsStore {
	return &ActiveTenantsStore{db: db}
}

// Create records a tenant selection for a user
func (s *ActiveTenantsStore) Create(at *model.ActiveTenant) error {
	return translate(s.db.Create(at).Error)
}

// GetByUserAndTenant returns the selection records for a (user, tenant) pair
func (s *ActiveTenantsStore) GetByUserAndTenant(userID, tenantID int64) ([]model.ActiveTenant, error) {
	var ats []model.ActiveTenant
	err := s.db.Raw(
		`SELECT id, user_id, tenant_id FROM active_tenants WHERE user_id = ? AND tenant_id = ?`,
		userID, tenantID,
	).Scan(&ats).Error
	if err != nil {
		return nil, translate(err)
	}
	return ats, nil
}

// DeleteByUserAndTenant removes the selection records for a (user, tenant) pair
func (s *ActiveTenantsStore) DeleteByUserAndTenant(userID, tenantID int64) error {
	return translate(s.db.Exec(
		`DELETE FROM active_tenants WHERE user_id = ? AND tenant_id = ?`, userID, tenantID,
	).Error)
}
