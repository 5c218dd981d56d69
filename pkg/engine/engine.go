package engine

import (
	"context"
	"errors"
	"fmt"

	"tenauth/pkg/model"
	"tenauth/pkg/server/store"
)

// PermissionChecker verifies permission ids against the authoritative
// permission directory.
type PermissionChecker interface {
	PermissionExists(ctx context.Context, permissionID int64, tenantID *int64) (bool, error)
}

// Engine coordinates tenant/role associations and their user and
// permission children. All precondition checks here are advisory; the
// database constraints make the final call, and constraint violations
// surface as store.ErrConflict.
type Engine struct {
	tenantRoles store.TenantRolesStore
	users       store.TenantRoleUsersStore
	permissions store.TenantRolePermissionsStore
	roles       store.RolesStore
	active      store.ActiveTenantsStore
	checker     PermissionChecker
}

// New creates an engine over the given stores and permission checker.
func New(
	tenantRoles store.TenantRolesStore,
	users store.TenantRoleUsersStore,
	permissions store.TenantRolePermissionsStore,
	roles store.RolesStore,
	active store.ActiveTenantsStore,
	checker PermissionChecker,
) *Engine {
	return &Engine{
		tenantRoles: tenantRoles,
		users:       users,
		permissions: permissions,
		roles:       roles,
		active:      active,
		checker:     checker,
	}
}

// CreateTenantRole binds a role to a tenant. A duplicate binding is a
// conflict.
func (e *Engine) CreateTenantRole(tr *model.TenantRole) error {
	if tr.TenantID <= 0 || tr.RoleID <= 0 {
		return fmt.Errorf("%w: tenant id and role id are mandatory", ErrInvalidArgument)
	}
	return e.tenantRoles.Create(tr)
}

// UpdateTenantRole repoints an association at another tenant or role.
func (e *Engine) UpdateTenantRole(tr *model.TenantRole) error {
	if tr.ID <= 0 || tr.TenantID <= 0 || tr.RoleID <= 0 {
		return fmt.Errorf("%w: id, tenant id and role id are mandatory", ErrInvalidArgument)
	}
	return e.tenantRoles.Update(tr)
}

// DeleteTenantRole removes an association. An association that still has
// user or permission children is not removable.
func (e *Engine) DeleteTenantRole(id int64) error {
	hasUsers, err := e.tenantRoles.HasUsers(id)
	if err != nil {
		return err
	}
	if hasUsers {
		return fmt.Errorf("%w: tenant role %d still has assigned users", store.ErrConflict, id)
	}
	hasPermissions, err := e.tenantRoles.HasPermissions(id)
	if err != nil {
		return err
	}
	if hasPermissions {
		return fmt.Errorf("%w: tenant role %d still has assigned permissions", store.ErrConflict, id)
	}
	return e.tenantRoles.Delete(id)
}

// GetTenantRole retrieves an association by id.
func (e *Engine) GetTenantRole(id int64) (*model.TenantRole, error) {
	return e.tenantRoles.Get(id)
}

// ExistsAssociation checks whether a (tenant, role) association exists.
func (e *Engine) ExistsAssociation(tenantID, roleID int64) (bool, error) {
	return e.tenantRoles.Exists(tenantID, roleID)
}

// GetTenantRoleID resolves the association id for a (tenant, role) pair.
func (e *Engine) GetTenantRoleID(tenantID, roleID int64) (int64, error) {
	return e.tenantRoles.GetID(tenantID, roleID)
}

// ListTenantRoles returns associations, optionally narrowed by tenant
// and/or role.
func (e *Engine) ListTenantRoles(tenantID, roleID *int64, limit, offset int) ([]model.TenantRole, error) {
	return e.tenantRoles.List(tenantID, roleID, limit, offset)
}

// CountAssociations counts all tenant/role associations.
func (e *Engine) CountAssociations() (int64, error) {
	return e.tenantRoles.Count()
}

// AssignUser assigns a user to an existing tenant/role association. A
// duplicate assignment is a conflict.
func (e *Engine) AssignUser(tru *model.TenantRoleUser) error {
	if tru.TenantRoleID <= 0 || tru.UserID <= 0 {
		return fmt.Errorf("%w: tenant role id and user id are mandatory", ErrInvalidArgument)
	}
	if _, err := e.tenantRoles.Get(tru.TenantRoleID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("%w: tenant role %d does not exist", ErrInvalidArgument, tru.TenantRoleID)
		}
		return err
	}
	exists, err := e.users.Exists(tru.TenantRoleID, tru.UserID)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: user %d is already assigned to tenant role %d", store.ErrConflict, tru.UserID, tru.TenantRoleID)
	}
	return e.users.Create(tru)
}

// UnassignUser removes the user's assignments under a tenant, optionally
// narrowed to specific roles. When the user loses the last assignment
// under the tenant, the tenant also stops being their active tenant.
func (e *Engine) UnassignUser(tenantID int64, roleIDs []int64, userID int64) error {
	if tenantID <= 0 || userID <= 0 {
		return fmt.Errorf("%w: tenant id and user id are mandatory", ErrInvalidArgument)
	}
	ids, err := e.users.IDs(tenantID, roleIDs, userID)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return fmt.Errorf("%w: user %d has no matching assignment under tenant %d", store.ErrNotFound, userID, tenantID)
	}
	if _, err := e.users.DeleteMany(ids); err != nil {
		return err
	}
	associated, err := e.users.IsAssociatedWithTenant(userID, tenantID)
	if err != nil {
		return err
	}
	if !associated {
		return e.active.DeleteByUserAndTenant(userID, tenantID)
	}
	return nil
}

// DeleteUserAssignment removes a single user assignment by id, applying
// the same active-tenant cleanup as UnassignUser.
func (e *Engine) DeleteUserAssignment(id int64) error {
	tru, err := e.users.Get(id)
	if err != nil {
		return err
	}
	tr, err := e.tenantRoles.Get(tru.TenantRoleID)
	if err != nil {
		return err
	}
	if err := e.users.Delete(id); err != nil {
		return err
	}
	associated, err := e.users.IsAssociatedWithTenant(tru.UserID, tr.TenantID)
	if err != nil {
		return err
	}
	if !associated {
		return e.active.DeleteByUserAndTenant(tru.UserID, tr.TenantID)
	}
	return nil
}

// AssignPermission assigns a permission to an existing tenant/role
// association. The permission must be known to the permission directory
// and must not already be assigned.
func (e *Engine) AssignPermission(ctx context.Context, trp *model.TenantRolePermission) error {
	if trp.TenantRoleID <= 0 || trp.PermissionID <= 0 {
		return fmt.Errorf("%w: tenant role id and permission id are mandatory", ErrInvalidArgument)
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
	exists, err := e.permissions.Exists(trp.TenantRoleID, trp.PermissionID)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: permission %d is already assigned to tenant role %d", store.ErrConflict, trp.PermissionID, trp.TenantRoleID)
	}
	return e.permissions.Create(trp)
}

// UnassignPermission removes a permission from the (tenant, role)
// association.
func (e *Engine) UnassignPermission(tenantID, roleID, permissionID int64) error {
	if tenantID <= 0 || roleID <= 0 || permissionID <= 0 {
		return fmt.Errorf("%w: tenant id, role id and permission id are mandatory", ErrInvalidArgument)
	}
	tenantRoleID, err := e.tenantRoles.GetID(tenantID, roleID)
	if err != nil {
		return err
	}
	id, err := e.permissions.GetID(tenantRoleID, permissionID)
	if err != nil {
		return err
	}
	return e.permissions.Delete(id)
}

// GetPermissionIDs returns the permission ids assigned to the (tenant,
// role) association, optionally narrowed to those a user holds.
func (e *Engine) GetPermissionIDs(tenantID, roleID int64, userID *int64) ([]int64, error) {
	if tenantID <= 0 || roleID <= 0 {
		return nil, fmt.Errorf("%w: tenant id and role id are mandatory", ErrInvalidArgument)
	}
	return e.permissions.PermissionIDs(tenantID, roleID, userID)
}

// GetRolesForUserTenant returns the roles the user holds under a tenant.
func (e *Engine) GetRolesForUserTenant(userID, tenantID int64) ([]model.Role, error) {
	if userID <= 0 || tenantID <= 0 {
		return nil, fmt.Errorf("%w: user id and tenant id are mandatory", ErrInvalidArgument)
	}
	ids, err := e.tenantRoles.RoleIDsForUserTenant(userID, tenantID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}
	return e.roles.GetRolesByIDs(ids)
}

// GetTenants returns the tenant ids a user is assigned under, optionally
// narrowed by role.
func (e *Engine) GetTenants(userID int64, roleID *int64) ([]int64, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: user id is mandatory", ErrInvalidArgument)
	}
	return e.users.Tenants(userID, roleID)
}

// GetAssignedUserIDs returns the user ids assigned to a tenant role.
func (e *Engine) GetAssignedUserIDs(tenantRoleID int64, limit, offset int) ([]int64, error) {
	return e.users.UserIDs(tenantRoleID, limit, offset)
}

// HasAnyRole reports whether the user holds any of the named roles,
// optionally narrowed to a tenant.
func (e *Engine) HasAnyRole(userID int64, roleNames []string, tenantID *int64) (bool, error) {
	if userID <= 0 || len(roleNames) == 0 {
		return false, fmt.Errorf("%w: user id and role names are mandatory", ErrInvalidArgument)
	}
	return e.tenantRoles.HasAnyRole(userID, roleNames, tenantID)
}

// HasPermission reports whether the user holds the permission through
// any of their role assignments, optionally narrowed to a tenant.
func (e *Engine) HasPermission(userID, permissionID int64, tenantID *int64) (bool, error) {
	if userID <= 0 || permissionID <= 0 {
		return false, fmt.Errorf("%w: user id and permission id are mandatory", ErrInvalidArgument)
	}
	return e.tenantRoles.HasPermission(userID, permissionID, tenantID)
}
