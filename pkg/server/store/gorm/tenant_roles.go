package gorm

import (
	"gorm.io/gorm"

	"tenauth/pkg/model"
	"tenauth/pkg/server/store"
)

// Ensure TenantRolesStore implements store.TenantRolesStore
var _ store.TenantRolesStore = (*TenantRolesStore)(nil)

// TenantRolesStore implements store.TenantRolesStore using GORM
type TenantRolesStore struct {
	db *gorm.DB
}

// NewTenantRolesStore creates a new TenantRolesStore
func NewTenantRolesStore(db *gorm.DB) *TenantRolesStore {
	return &TenantRolesStore{db: db}
}

// Create persists a new tenant/role association
func (s *TenantRolesStore) Create(tr *model.TenantRole) error {
	return translate(s.db.Create(tr).Error)
}

// Update updates an existing association
func (s *TenantRolesStore) Update(tr *model.TenantRole) error {
	result := s.db.Exec(
		`UPDATE tenant_roles SET tenant_id = ?, role_id = ?, updated_at = NOW() WHERE id = ?`,
		tr.TenantID, tr.RoleID, tr.ID,
	)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// Delete removes an association by id. The foreign keys on the child
// tables reject the delete while children exist.
func (s *TenantRolesStore) Delete(id int64) error {
	result := s.db.Exec(`DELETE FROM tenant_roles WHERE id = ?`, id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// Get retrieves an association by id
func (s *TenantRolesStore) Get(id int64) (*model.TenantRole, error) {
	var tr model.TenantRole
	result := s.db.Raw(
		`SELECT id, tenant_id, role_id, created_at, updated_at FROM tenant_roles WHERE id = ?`, id,
	).Scan(&tr)
	if result.Error != nil {
		return nil, translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, store.ErrNotFound
	}
	return &tr, nil
}

// GetID resolves the association id for a (tenant, role) pair
func (s *TenantRolesStore) GetID(tenantID, roleID int64) (int64, error) {
	var id int64
	result := s.db.Raw(
		`SELECT id FROM tenant_roles WHERE tenant_id = ? AND role_id = ?`, tenantID, roleID,
	).Scan(&id)
	if result.Error != nil {
		return 0, translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return 0, store.ErrNotFound
	}
	return id, nil
}

// Exists checks whether a (tenant, role) association exists
func (s *TenantRolesStore) Exists(tenantID, roleID int64) (bool, error) {
	var exists bool
	err := s.db.Raw(
		`SELECT EXISTS(SELECT 1 FROM tenant_roles WHERE tenant_id = ? AND role_id = ?)`,
		tenantID, roleID,
	).Scan(&exists).Error
	return exists, translate(err)
}

// List returns associations, optionally narrowed by tenant and/or role
func (s *TenantRolesStore) List(tenantID, roleID *int64, limit, offset int) ([]model.TenantRole, error) {
	query := `SELECT id, tenant_id, role_id, created_at, updated_at FROM tenant_roles WHERE 1=1`
	args := []interface{}{}

	if tenantID != nil {
		query += ` AND tenant_id = ?`
		args = append(args, *tenantID)
	}
	if roleID != nil {
		query += ` AND role_id = ?`
		args = append(args, *roleID)
	}

	query += ` ORDER BY id`

	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	if offset > 0 {
		query += ` OFFSET ?`
		args = append(args, offset)
	}

	var trs []model.TenantRole
	err := s.db.Raw(query, args...).Scan(&trs).Error
	if err != nil {
		return nil, translate(err)
	}
	return trs, nil
}

// Count counts all associations
func (s *TenantRolesStore) Count() (int64, error) {
	var count int64
	err := s.db.Raw(`SELECT COUNT(*) FROM tenant_roles`).Scan(&count).Error
	return count, translate(err)
}

// HasUsers reports whether the association has user children
func (s *TenantRolesStore) HasUsers(tenantRoleID int64) (bool, error) {
	var exists bool
	err := s.db.Raw(
		`SELECT EXISTS(SELECT 1 FROM tenant_role_users WHERE tenant_role_id = ?)`, tenantRoleID,
	).Scan(&exists).Error
	return exists, translate(err)
}

// HasPermissions reports whether the association has permission children
func (s *TenantRolesStore) HasPermissions(tenantRoleID int64) (bool, error) {
	var exists bool
	err := s.db.Raw(
		`SELECT EXISTS(SELECT 1 FROM tenant_role_permissions WHERE tenant_role_id = ?)`, tenantRoleID,
	).Scan(&exists).Error
	return exists, translate(err)
}

// RoleIDsForUserTenant returns the distinct role ids a user holds under a tenant
func (s *TenantRolesStore) RoleIDsForUserTenant(userID, tenantID int64) ([]int64, error) {
	var ids []int64
	err := s.db.Raw(`
		SELECT DISTINCT tr.role_id
		FROM tenant_roles tr
		JOIN tenant_role_users tru ON tru.tenant_role_id = tr.id
		WHERE tr.tenant_id = ? AND tru.user_id = ?
	`, tenantID, userID).Scan(&ids).Error
	if err != nil {
		return nil, translate(err)
	}
	return ids, nil
}

// HasAnyRole checks if the user holds any of the named roles, optionally
// under a specific tenant
func (s *TenantRolesStore) HasAnyRole(userID int64, roleNames []string, tenantID *int64) (bool, error) {
	query := `
		SELECT COUNT(*)
		FROM roles r
		JOIN tenant_roles tr ON tr.role_id = r.id
		JOIN tenant_role_users tru ON tru.tenant_role_id = tr.id
		WHERE r.name IN ? AND tru.user_id = ?
	`
	args := []interface{}{roleNames, userID}

	if tenantID != nil {
		query += ` AND tr.tenant_id = ?`
		args = append(args, *tenantID)
	}

	var count int64
	err := s.db.Raw(query, args...).Scan(&count).Error
	if err != nil {
		return false, translate(err)
	}
	return count > 0, nil
}

// HasPermission checks if the user holds the permission through any of
// their role assignments, optionally under a specific tenant
func (s *TenantRolesStore) HasPermission(userID, permissionID int64, tenantID *int64) (bool, error) {
	query := `
		SELECT COUNT(*)
		FROM tenant_roles tr
		JOIN tenant_role_permissions trp ON trp.tenant_role_id = tr.id
		JOIN tenant_role_users tru ON tru.tenant_role_id = tr.id
		WHERE trp.permission_id = ? AND tru.user_id = ?
	`
	args := []interface{}{permissionID, userID}

	if tenantID != nil {
		query += ` AND tr.tenant_id = ?`
		args = append(args, *tenantID)
	}

	var count int64
	err := s.db.Raw(query, args...).Scan(&count).Error
	if err != nil {
		return false, translate(err)
	}
	return count > 0, nil
}
