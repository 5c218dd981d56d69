package gorm

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tenauth/pkg/model"
	"tenauth/pkg/server/store"
)

func TestTenantRolesStoreCreateDuplicate(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewTenantRolesStore(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "tenant_roles"`).
		WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"})
	mock.ExpectRollback()

	err := s.Create(&model.TenantRole{TenantID: 1, RoleID: 2})
	assert.ErrorIs(t, err, store.ErrConflict)
}

func TestTenantRolesStoreGetID(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewTenantRolesStore(db)

	mock.ExpectQuery(`SELECT id FROM tenant_roles WHERE tenant_id = .* AND role_id =`).
		WithArgs(int64(1), int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))

	id, err := s.GetID(1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(9), id)
}

func TestTenantRolesStoreGetIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewTenantRolesStore(db)

	mock.ExpectQuery(`SELECT id FROM tenant_roles WHERE tenant_id = .* AND role_id =`).
		WithArgs(int64(1), int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := s.GetID(1, 99)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestTenantRolesStoreExists(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewTenantRolesStore(db)

	mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM tenant_roles`).
		WithArgs(int64(1), int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := s.Exists(1, 2)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestTenantRolesStoreDeleteWithChildren(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewTenantRolesStore(db)

	mock.ExpectExec(`DELETE FROM tenant_roles WHERE id =`).
		WithArgs(int64(9)).
		WillReturnError(&pq.Error{Code: "23503", Message: "violates foreign key constraint"})

	assert.ErrorIs(t, s.Delete(9), store.ErrConflict)
}

func TestTenantRolesStoreHasAnyRole(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewTenantRolesStore(db)

	tenantID := int64(1)
	// The IN clause expands its single element into one placeholder.
	mock.ExpectQuery(`SELECT COUNT\(\*\)`).
		WithArgs("System Administrator", int64(3), tenantID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	has, err := s.HasAnyRole(3, []string{"System Administrator"}, &tenantID)
	require.NoError(t, err)
	assert.True(t, has)
}
