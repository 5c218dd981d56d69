package store

import "tenauth/pkg/model"

// TenantRolePermissionsStore abstracts TenantRolePermission association storage
type TenantRolePermissionsStore interface {
	// Create persists a new permission assignment.
	Create(trp *model.TenantRolePermission) error

	// Update updates an existing assignment.
	Update(trp *model.TenantRolePermission) error

	// Get retrieves an assignment by id.
	Get(id int64) (*model.TenantRolePermission, error)

	// Delete removes an assignment by id.
	Delete(id int64) error

	// Exists checks whether a (tenant role, permission) assignment exists.
	Exists(tenantRoleID, permissionID int64) (bool, error)

	// GetID resolves the assignment id for a (tenant role, permission) pair.
	GetID(tenantRoleID, permissionID int64) (int64, error)

	// PermissionIDs returns the permission ids assigned to the (tenant,
	// role) association, optionally narrowed to those the user holds.
	PermissionIDs(tenantID, roleID int64, userID *int64) ([]int64, error)

	// List returns assignments, optionally narrowed by tenant role
	// and/or permission.
	List(tenantRoleID, permissionID *int64, limit, offset int) ([]model.TenantRolePermission, error)

	// Count counts all assignments.
	Count() (int64, error)
}
