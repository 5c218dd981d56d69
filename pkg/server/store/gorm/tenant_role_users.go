package gorm

import (
	"gorm.io/gorm"

	"tenauth/pkg/model"
	"tenauth/pkg/server/store"
)

// Ensure TenantRoleUsersStore implements store.TenantRoleUsersStore
var _ store.TenantRoleUsersStore = (*TenantRoleUsersStore)(nil)

// TenantRoleUsersStore implements store.TenantRoleUsersStore using GORM
type TenantRoleUsersStore struct {
	db *gorm.DB
}

// NewTenantRoleUsersStore creates a new TenantRoleUsersStore
func NewTenantRoleUsersStore(db *gorm.DB) *TenantRoleUsersStore {
	return &TenantRoleUsersStore{db: db}
}

// Create persists a new user assignment
func (s *TenantRoleUsersStore) Create(tru *model.TenantRoleUser) error {
	return translate(s.db.Create(tru).Error)
}

// Update updates an existing assignment
func (s *TenantRoleUsersStore) Update(tru *model.TenantRoleUser) error {
	result := s.db.Exec(
		`UPDATE tenant_role_users SET tenant_role_id = ?, user_id = ?, updated_at = NOW() WHERE id = ?`,
		tru.TenantRoleID, tru.UserID, tru.ID,
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
func (s *TenantRoleUsersStore) Get(id int64) (*model.TenantRoleUser, error) {
	var tru model.TenantRoleUser
	result := s.db.Raw(
		`SELECT id, tenant_role_id, user_id, created_at, updated_at FROM tenant_role_users WHERE id = ?`, id,
	).Scan(&tru)
	if result.Error != nil {
		return nil, translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, store.ErrNotFound
	}
	return &tru, nil
}

// Delete removes an assignment by id
func (s *TenantRoleUsersStore) Delete(id int64) error {
	result := s.db.Exec(`DELETE FROM tenant_role_users WHERE id = ?`, id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// DeleteMany removes assignments by id and returns how many were removed
func (s *TenantRoleUsersStore) DeleteMany(ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := s.db.Exec(`DELETE FROM tenant_role_users WHERE id IN ?`, ids)
	if result.Error != nil {
		return 0, translate(result.Error)
	}
	return result.RowsAffected, nil
}

// Exists checks whether a (tenant role, user) assignment exists
func (s *TenantRoleUsersStore) Exists(tenantRoleID, userID int64) (bool, error) {
	var exists bool
	err := s.db.Raw(
		`SELECT EXISTS(SELECT 1 FROM tenant_role_users WHERE tenant_role_id = ? AND user_id = ?)`,
		tenantRoleID, userID,
	).Scan(&exists).Error
	return exists, translate(err)
}

// IDs resolves the assignment ids matching the tenant, the roles
// (optional) and the user
func (s *TenantRoleUsersStore) IDs(tenantID int64, roleIDs []int64, userID int64) ([]int64, error) {
	query := `
		SELECT tru.id
		FROM tenant_role_users tru
		JOIN tenant_roles tr ON tr.id = tru.tenant_role_id
		WHERE tr.tenant_id = ? AND tru.user_id = ?
	`
	args := []interface{}{tenantID, userID}

	if len(roleIDs) > 0 {
		query += ` AND tr.role_id IN ?`
		args = append(args, roleIDs)
	}

	var ids []int64
	err := s.db.Raw(query, args...).Scan(&ids).Error
	if err != nil {
		return nil, translate(err)
	}
	return ids, nil
}

// IsAssociatedWithTenant reports whether the user still has any
// assignment under the tenant
func (s *TenantRoleUsersStore) IsAssociatedWithTenant(userID, tenantID int64) (bool, error) {
	var exists bool
	err := s.db.Raw(`
		SELECT EXISTS(
			SELECT 1
			FROM tenant_role_users tru
			JOIN tenant_roles tr ON tr.id = tru.tenant_role_id
			WHERE tru.user_id = ? AND tr.tenant_id = ?
		)
	`, userID, tenantID).Scan(&exists).Error
	return exists, translate(err)
}

// Tenants returns the distinct tenant ids the user is assigned under,
// optionally narrowed by role
func (s *TenantRoleUsersStore) Tenants(userID int64, roleID *int64) ([]int64, error) {
	query := `
		SELECT DISTINCT tr.tenant_id
		FROM tenant_roles tr
		JOIN tenant_role_users tru ON tru.tenant_role_id = tr.id
		WHERE tru.user_id = ?
	`
	args := []interface{}{userID}

	if roleID != nil {
		query += ` AND tr.role_id = ?`
		args = append(args, *roleID)
	}

	var ids []int64
	err := s.db.Raw(query, args...).Scan(&ids).Error
	if err != nil {
		return nil, translate(err)
	}
	return ids, nil
}

// UserIDs returns the user ids assigned to a tenant role
func (s *TenantRoleUsersStore) UserIDs(tenantRoleID int64, limit, offset int) ([]int64, error) {
	query := `SELECT user_id FROM tenant_role_users WHERE tenant_role_id = ? ORDER BY user_id`
	args := []interface{}{tenantRoleID}

	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	if offset > 0 {
		query += ` OFFSET ?`
		args = append(args, offset)
	}

	var ids []int64
	err := s.db.Raw(query, args...).Scan(&ids).Error
	if err != nil {
		return nil, translate(err)
	}
	return ids, nil
}

// List returns assignments, optionally narrowed by tenant role and/or user
func (s *TenantRoleUsersStore) List(tenantRoleID, userID *int64, limit, offset int) ([]model.TenantRoleUser, error) {
	query := `SELECT id, tenant_role_id, user_id, created_at, updated_at FROM tenant_role_users WHERE 1=1`
	args := []interface{}{}

	if tenantRoleID != nil {
		query += ` AND tenant_role_id = ?`
		args = append(args, *tenantRoleID)
	}
	if userID != nil {
		query += ` AND user_id = ?`
		args = append(args, *userID)
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

	var trus []model.TenantRoleUser
	err := s.db.Raw(query, args...).Scan(&trus).Error
	if err != nil {
		return nil, translate(err)
	}
	return trus, nil
}

// Count counts all assignments
func (s *TenantRoleUsersStore) Count() (int64, error) {
	var count int64
	err := s.db.Raw(`SELECT COUNT(*) FROM tenant_role_users`).Scan(&count).Error
	return count, translate(err)
}
