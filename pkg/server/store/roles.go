package store

import "tenauth/pkg/model"

// RolesStore abstracts role storage operations
type RolesStore interface {
	// CreateRole persists a new role. Role names are unique.
	CreateRole(role *model.Role) error

	// UpdateRole updates name and description of an existing role.
	UpdateRole(role *model.Role) error

	// DeleteRole removes a role by id.
	DeleteRole(id int64) error

	// GetRole retrieves a role by id.
	GetRole(id int64) (*model.Role, error)

	// GetRoleByName retrieves a role by its unique name.
	GetRoleByName(name string) (*model.Role, error)

	// GetRolesByIDs retrieves the roles matching the given ids.
	GetRolesByIDs(ids []int64) ([]model.Role, error)

	// ListRoles returns roles, optionally filtered by a name substring.
	ListRoles(search string, limit, offset int) ([]model.Role, error)

	// CountRoles counts all roles.
	CountRoles() (int64, error)
}
