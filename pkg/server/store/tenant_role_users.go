package store

import "tenauth/pkg/model"

// TenantRoleUsersStore abstracts TenantRoleUser association storage
type TenantRoleUsersStore interface {
	// Create persists a new user assignment.
	Create(tru *model.TenantRoleUser) error

	// Update updates an existing assignment.
	Update(tru *model.TenantRoleUser) error

	// Get retrieves an assignment by id.
	Get(id int64) (*model.TenantRoleUser, error)

	// Delete removes an assignment by id.
	Delete(id int64) error

	// DeleteMany removes assignments by id and returns how many were removed.
	DeleteMany(ids []int64) (int64, error)

	// Exists checks whether a (tenant role, user) assignment exists.
	Exists(tenantRoleID, userID int64) (bool, error)

	// IDs resolves the assignment ids matching the tenant, the roles
	// (optional) and the user.
	IDs(tenantID int64, roleIDs []int64, userID int64) ([]int64, error)

	// IsAssociatedWithTenant reports whether the user still has any
	// assignment under the tenant.
	IsAssociatedWithTenant(userID, tenantID int64) (bool, error)

	// Tenants returns the distinct tenant ids the user is assigned
	// under, optionally narrowed by role.
	Tenants(userID int64, roleID *int64) ([]int64, error)

	// UserIDs returns the user ids assigned to a tenant role.
	UserIDs(tenantRoleID int64, limit, offset int) ([]int64, error)

	// List returns assignments, optionally narrowed by tenant role
	// and/or user.
	List(tenantRoleID, userID *int64, limit, offset int) ([]model.TenantRoleUser, error)

	// Count counts all assignments.
	Count() (int64, error)
}
