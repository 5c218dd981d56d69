package store

import "tenauth/pkg/model"

// ActiveTenantsStore abstracts the derived active-tenant selection records
type ActiveTenantsStore interface {
	// Create records a tenant selection for a user.
	Create(at *model.ActiveTenant) error

	// GetByUserAndTenant returns the selection records for a (user,
	// tenant) pair.
	GetByUserAndTenant(userID, tenantID int64) ([]model.ActiveTenant, error)

	// DeleteByUserAndTenant removes the selection records for a (user,
	// tenant) pair. Removing an absent selection is not an error.
	DeleteByUserAndTenant(userID, tenantID int64) error
}
