package gorm

import (
	"gorm.io/gorm"

	"tenauth/pkg/model"
	"tenauth/pkg/server/store"
)

// Ensure TenantRolePermissionsStore implements store.TenantRolePermissionsStore
var _ store.TenantRolePermissionsStore = (*TenantRolePermissionsStore)(nil)

// TenantRolePermissionsStore implements store.TenantRolePermissionsStore using GORM
type TenantRolePermissionsStore struct {
	db *gorm.DB
}

// NewTenantRolePermissionsStore creates a new TenantRolePermissionsStore
func NewTenantRolePermissionsStore(db *gorm.DB) *TenantRolePermissionsStore {
	return &TenantRolePermissionsStore{db: db}
}

// Create persists a new permission assignment
func (s *TenantRolePermissionsStore) Create(trp *model.TenantRolePermission) error {
	return translate(s.db.Create(trp).Error)
}

// Update updates an existing assignment
func (s *TenantRolePermissionsStore) Update(trp *model.TenantRolePermission) error {
	result := s.db.Exec(
		`UPDATE tenant_role_permissions SET tenant_role_id = ?, permission_id = ?, updated_at = NOW() WHERE id = ?`,
		trp.TenantRoleID, trp.PermissionID, trp.ID,
	)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// Get retrieves an assignment by id
func (s *TenantRolePermissionsStore) Get(id int64) (*model.TenantRolePermission, error) {
	var trp model.TenantRolePermission
	result := s.db.Raw(
		`SELECT id, tenant_role_id, permission_id, created_at, updated_at FROM tenant_role_permissions WHERE id = ?`, id,
	).Scan(&trp)
	if result.Error != nil {
		return nil, translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, store.ErrNotFound
	}
	return &trp, nil
}

// Delete removes an assignment by id
func (s *TenantRolePermissionsStore) Delete(id int64) error {
	result := s.db.Exec(`DELETE FROM tenant_role_permissions WHERE id = ?`, id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// Exists checks whether a (tenant role, permission) assignment exists
func (s *TenantRolePermissionsStore) Exists(tenantRoleID, permissionID int64) (bool, error) {
	var exists bool
	err := s.db.Raw(
		`SELECT EXISTS(SELECT 1 FROM tenant_role_permissions WHERE tenant_role_id = ? AND permission_id = ?)`,
		tenantRoleID, permissionID,
	).Scan(&exists).Error
	return exists, translate(err)
}

// GetID resolves the assignment id for a (tenant role, permission) pair
func (s *TenantRolePermissionsStore) GetID(tenantRoleID, permissionID int64) (int64, error) {
	var id int64
	result := s.db.Raw(
		`SELECT id FROM tenant_role_permissions WHERE tenant_role_id = ? AND permission_id = ?`,
		tenantRoleID, permissionID,
	).Scan(&id)
	if result.Error != nil {
		return 0, translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return 0, store.ErrNotFound
	}
	return id, nil
}

// PermissionIDs returns the permission ids assigned to the (tenant, role)
// association, optionally narrowed to those the user holds
func (s *TenantRolePermissionsStore) PermissionIDs(tenantID, roleID int64, userID *int64) ([]int64, error) {
	query := `
		SELECT DISTINCT trp.permission_id
		FROM tenant_role_permissions trp
		JOIN tenant_roles tr ON tr.id = trp.tenant_role_id
		WHERE tr.tenant_id = ? AND tr.role_id = ?
	`
	args := []interface{}{tenantID, roleID}

	if userID != nil {
		query += ` AND EXISTS(
			SELECT 1 FROM tenant_role_users tru
			WHERE tru.tenant_role_id = tr.id AND tru.user_id = ?
		)`
		args = append(args, *userID)
	}

	var ids []int64
	err := s.db.Raw(query, args...).Scan(&ids).Error
	if err != nil {
		return nil, translate(err)
	}
	return ids, nil
}

// List returns assignments, optionally narrowed by tenant role and/or permission
func (s *TenantRolePermissionsStore) List(tenantRoleID, permissionID *int64, limit, offset int) ([]model.TenantRolePermission, error) {
	query := `SELECT id, tenant_role_id, permission_id, created_at, updated_at FROM tenant_role_permissions WHERE 1=1`
	args := []interface{}{}

	if tenantRoleID != nil {
		query += ` AND tenant_role_id = ?`
		args = append(args, *tenantRoleID)
	}
	if permissionID != nil {
		query += ` AND permission_id = ?`
		args = append(args, *permissionID)
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

	var trps []model.TenantRolePermission
	err := s.db.Raw(query, args...).Scan(&trps).Error
	if err != nil {
		return nil, translate(err)
	}
	return trps, nil
}

// Count counts all assignments
func (s *TenantRolePermissionsStore) Count() (int64, error) {
	var count int64
	err := s.db.Raw(`SELECT COUNT(*) FROM tenant_role_permissions`).Scan(&count).Error
	return count, translate(err)
}
