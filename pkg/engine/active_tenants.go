package engine

import (
	"fmt"

	"tenauth/pkg/model"
	"tenauth/pkg/server/store"
)

// SetActiveTenant records a tenant selection for a user. The user must
// hold at least one role assignment under the tenant.
func (e *Engine) SetActiveTenant(userID, tenantID int64) error {
	if userID <= 0 || tenantID <= 0 {
		return fmt.Errorf("%w: user id and tenant id are mandatory", ErrInvalidArgument)
	}
	associated, err := e.users.IsAssociatedWithTenant(userID, tenantID)
	if err != nil {
		return err
	}
	if !associated {
		return fmt.Errorf("%w: user %d has no role under tenant %d", ErrInvalidArgument, userID, tenantID)
	}
	existing, err := e.active.GetByUserAndTenant(userID, tenantID)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return fmt.Errorf("%w: tenant %d is already active for user %d", store.ErrConflict, tenantID, userID)
	}
	return e.active.Create(&model.ActiveTenant{UserID: userID, TenantID: tenantID})
}

// ClearActiveTenant drops the tenant selection for a user. Clearing an
// absent selection is not an error.
func (e *Engine) ClearActiveTenant(userID, tenantID int64) error {
	if userID <= 0 || tenantID <= 0 {
		return fmt.Errorf("%w: user id and tenant id are mandatory", ErrInvalidArgument)
	}
	return e.active.DeleteByUserAndTenant(userID, tenantID)
}
