package engine

import (
	"fmt"
	"strings"

	"tenauth/pkg/model"
)

// CreateRole persists a new role. Role names are unique and mandatory.
func (e *Engine) CreateRole(role *model.Role) error {
	if strings.TrimSpace(role.Name) == "" {
		return fmt.Errorf("%w: role name is mandatory", ErrInvalidArgument)
	}
	return e.roles.CreateRole(role)
}

// UpdateRole updates the name and description of an existing role.
func (e *Engine) UpdateRole(role *model.Role) error {
	if role.ID <= 0 || strings.TrimSpace(role.Name) == "" {
		return fmt.Errorf("%w: role id and name are mandatory", ErrInvalidArgument)
	}
	return e.roles.UpdateRole(role)
}

// DeleteRole removes a role. A role still bound to a tenant cannot be
// removed; the foreign key reports that as a conflict.
func (e *Engine) DeleteRole(id int64) error {
	return e.roles.DeleteRole(id)
}

// GetRole retrieves a role by id.
func (e *Engine) GetRole(id int64) (*model.Role, error) {
	return e.roles.GetRole(id)
}

// GetRoleByName retrieves a role by its unique name.
func (e *Engine) GetRoleByName(name string) (*model.Role, error) {
	return e.roles.GetRoleByName(name)
}

// ListRoles returns roles, optionally filtered by a name substring.
func (e *Engine) ListRoles(search string, limit, offset int) ([]model.Role, error) {
	return e.roles.ListRoles(search, limit, offset)
}

// CountRoles counts all roles.
func (e *Engine) CountRoles() (int64, error) {
	return e.roles.CountRoles()
}
