package engine

import (
	"context"
	"errors"
	"fmt"

	"tenauth/pkg/model"
	"tenauth/pkg/server/store"
)

// GetUserAssignment retrieves a user assignment by id.
func (e *Engine) GetUserAssignment(id int64) (*model.TenantRoleUser, error) {
	return e.users.Get(id)
}

// UpdateUserAssignment repoints an assignment at another tenant role or
// user. The same uniqueness rules as AssignUser apply.
func (e *Engine) UpdateUserAssignment(tru *model.TenantRoleUser) error {
	if tru.ID <= 0 || tru.TenantRoleID <= 0 || tru.UserID <= 0 {
		return fmt.Errorf("%w: id, tenant role id and user id are mandatory", ErrInvalidArgument)
	}
	if _, err := e.tenantRoles.Get(tru.TenantRoleID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("%w: tenant role %d does not exist", ErrInvalidArgument, tru.TenantRoleID)
		}
		return err
	}
	return e.users.Update(tru)
}

// ListUserAssignments returns user assignments, optionally narrowed by
// tenant role and/or user.
func (e *Engine) ListUserAssignments(tenantRoleID, userID *int64, limit, offset int) ([]model.TenantRoleUser, error) {
	return e.users.List(tenantRoleID, userID, limit, offset)
}

// CountUserAssignments counts all user assignments.
func (e *Engine) CountUserAssignments() (int64, error) {
	return e.users.Count()
}

// GetPermissionAssignment retrieves a permission assignment by id.
func (e *Engine) GetPermissionAssignment(id int64) (*model.TenantRolePermission, error) {
	return e.permissions.Get(id)
}

// UpdatePermissionAssignment repoints an assignment at another tenant
// role or permission. The permission must be known to the permission
// directory, as for AssignPermission.
func (e *Engine) UpdatePermissionAssignment(ctx context.Context, trp *model.TenantRolePermission) error {
	if trp.ID <= 0 || trp.TenantRoleID <= 0 || trp.PermissionID <= 0 {
		return fmt.Errorf("%w: id, tenant role id and permission id are mandatory", ErrInvalidArgument)
	}
	tr, err := e.tenantRoles.Get(trp.TenantRoleID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("%w: tenant role %d does not exist", ErrInvalidArgument, trp.TenantRoleID)
		}
		return err
	}
	known, err := e.checker.PermissionExists(ctx, trp.PermissionID, &tr.TenantID)
	if err != nil {
		return err
	}
	if !known {
		return fmt.Errorf("%w: permission %d does not exist", ErrInvalidArgument, trp.PermissionID)
	}
	return e.permissions.Update(trp)
}

// ListPermissionAssignments returns permission assignments, optionally
// narrowed by tenant role and/or permission.
func (e *Engine) ListPermissionAssignments(tenantRoleID, permissionID *int64, limit, offset int) ([]model.TenantRolePermission, error) {
	return e.permissions.List(tenantRoleID, permissionID, limit, offset)
}

// CountPermissionAssignments counts all permission assignments.
func (e *Engine) CountPermissionAssignments() (int64, error) {
	return e.permissions.Count()
}
