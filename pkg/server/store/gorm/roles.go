package gorm

import (
	"gorm.io/gorm"

	"tenauth/pkg/model"
	"tenauth/pkg/server/store"
)

// Ensure RolesStore implements store.RolesStore
var _ store.RolesStore = (*RolesStore)(nil)

// RolesStore implements store.RolesStore using GORM
type RolesStore struct {
	db *gorm.DB
}

// NewRolesStore creates a new RolesStore
func NewRolesStore(db *gorm.DB) *RolesStore {
	return &RolesStore{db: db}
}

// CreateRole persists a new role
func (s *RolesStore) CreateRole(role *model.Role) error {
	return translate(s.db.Create(role).Error)
}

// UpdateRole updates name and description of an existing role
func (s *RolesStore) UpdateRole(role *model.Role) error {
	result := s.db.Exec(
		`UPDATE roles SET name = ?, description = ?, updated_at = NOW() WHERE id = ?`,
		role.Name, role.Description, role.ID,
	)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// DeleteRole removes a role by id
func (s *RolesStore) DeleteRole(id int64) error {
	result := s.db.Exec(`DELETE FROM roles WHERE id = ?`, id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// GetRole retrieves a role by id
func (s *RolesStore) GetRole(id int64) (*model.Role, error) {
	var role model.Role
	result := s.db.Raw(
		`SELECT id, name, description, created_at, updated_at FROM roles WHERE id = ?`, id,
	).Scan(&role)
	if result.Error != nil {
		return nil, translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, store.ErrNotFound
	}
	return &role, nil
}

// GetRoleByName retrieves a role by its unique name
func (s *RolesStore) GetRoleByName(name string) (*model.Role, error) {
	var role model.Role
	result := s.db.Raw(
		`SELECT id, name, description, created_at, updated_at FROM roles WHERE name = ?`, name,
	).Scan(&role)
	if result.Error != nil {
		return nil, translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, store.ErrNotFound
	}
	return &role, nil
}

// GetRolesByIDs retrieves the roles matching the given ids
func (s *RolesStore) GetRolesByIDs(ids []int64) ([]model.Role, error) {
	if len(ids) == 0 {
		return []model.Role{}, nil
	}
	var roles []model.Role
	err := s.db.Raw(
		`SELECT id, name, description, created_at, updated_at FROM roles WHERE id IN ? ORDER BY id`, ids,
	).Scan(&roles).Error
	if err != nil {
		return nil, translate(err)
	}
	return roles, nil
}

// ListRoles returns roles, optionally filtered by a name substring
func (s *RolesStore) ListRoles(search string, limit, offset int) ([]model.Role, error) {
	query := `SELECT id, name, description, created_at, updated_at FROM roles`
	args := []interface{}{}

	if search != "" {
		query += ` WHERE name ILIKE ?`
		args = append(args, "%"+search+"%")
	}

	query += ` ORDER BY name`

	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	if offset > 0 {
		query += ` OFFSET ?`
		args = append(args, offset)
	}

	var roles []model.Role
	err := s.db.Raw(query, args...).Scan(&roles).Error
	if err != nil {
		return nil, translate(err)
	}
	return roles, nil
}

// CountRoles counts all roles
func (s *RolesStore) CountRoles() (int64, error) {
	var count int64
	err := s.db.Raw(`SELECT COUNT(*) FROM roles`).Scan(&count).Error
	return count, translate(err)
}
