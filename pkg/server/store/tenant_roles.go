package store

import "tenauth/pkg/model"

// TenantRolesStore abstracts TenantRole association storage
type TenantRolesStore interface {
	// Create persists a new tenant/role association.
	Create(tr *model.TenantRole) error

	// Update updates an existing association.
	Update(tr *model.TenantRole) error

	// Delete removes an association by id. The association must have no
	// user or permission children.
	Delete(id int64) error

	// Get retrieves an association by id.
	Get(id int64) (*model.TenantRole, error)

	// GetID resolves the association id for a (tenant, role) pair.
	GetID(tenantID, roleID int64) (int64, error)

	// Exists checks whether a (tenant, role) association exists.
	Exists(tenantID, roleID int64) (bool, error)

	// List returns associations, optionally narrowed by tenant and/or role.
	List(tenantID, roleID *int64, limit, offset int) ([]model.TenantRole, error)

	// Count counts all associations.
	Count() (int64, error)

	// HasUsers reports whether the association has user children.
	HasUsers(tenantRoleID int64) (bool, error)

	// HasPermissions reports whether the association has permission children.
	HasPermissions(tenantRoleID int64) (bool, error)

	// RoleIDsForUserTenant returns the distinct role ids a user holds
	// under a tenant.
	RoleIDsForUserTenant(userID, tenantID int64) ([]int64, error)

	// HasAnyRole checks if the user holds any of the named roles,
	// optionally under a specific tenant.
	HasAnyRole(userID int64, roleNames []string, tenantID *int64) (bool, error)

	// HasPermission checks if the user holds the permission through any
	// of their role assignments, optionally under a specific tenant.
	HasPermission(userID, permissionID int64, tenantID *int64) (bool, error)
}
