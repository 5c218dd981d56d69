package engine

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tenauth/pkg/model"
)

// MockTenantRolesStore implements store.TenantRolesStore for testing using testify/mock
type MockTenantRolesStore struct {
	mock.Mock
}

func (m *MockTenantRolesStore) Create(tr *model.TenantRole) error {
	args := m.Called(tr)
	return args.Error(0)
}

func (m *MockTenantRolesStore) Update(tr *model.TenantRole) error {
	args := m.Called(tr)
	return args.Error(0)
}

func (m *MockTenantRolesStore) Delete(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockTenantRolesStore) Get(id int64) (*model.TenantRole, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TenantRole), args.Error(1)
}

func (m *MockTenantRolesStore) GetID(tenantID, roleID int64) (int64, error) {
	args := m.Called(tenantID, roleID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTenantRolesStore) Exists(tenantID, roleID int64) (bool, error) {
	args := m.Called(tenantID, roleID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTenantRolesStore) List(tenantID, roleID *int64, limit, offset int) ([]model.TenantRole, error) {
	args := m.Called(tenantID, roleID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TenantRole), args.Error(1)
}

func (m *MockTenantRolesStore) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTenantRolesStore) HasUsers(tenantRoleID int64) (bool, error) {
	args := m.Called(tenantRoleID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTenantRolesStore) HasPermissions(tenantRoleID int64) (bool, error) {
	args := m.Called(tenantRoleID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTenantRolesStore) RoleIDsForUserTenant(userID, tenantID int64) ([]int64, error) {
	args := m.Called(userID, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockTenantRolesStore) HasAnyRole(userID int64, roleNames []string, tenantID *int64) (bool, error) {
	args := m.Called(userID, roleNames, tenantID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTenantRolesStore) HasPermission(userID, permissionID int64, tenantID *int64) (bool, error) {
	args := m.Called(userID, permissionID, tenantID)
	return args.Bool(0), args.Error(1)
}

// MockTenantRoleUsersStore implements store.TenantRoleUsersStore for testing using testify/mock
type MockTenantRoleUsersStore struct {
	mock.Mock
}

func (m *MockTenantRoleUsersStore) Create(tru *model.TenantRoleUser) error {
	args := m.Called(tru)
	return args.Error(0)
}

func (m *MockTenantRoleUsersStore) Update(tru *model.TenantRoleUser) error {
	args := m.Called(tru)
	return args.Error(0)
}

func (m *MockTenantRoleUsersStore) Get(id int64) (*model.TenantRoleUser, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TenantRoleUser), args.Error(1)
}

func (m *MockTenantRoleUsersStore) Delete(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockTenantRoleUsersStore) DeleteMany(ids []int64) (int64, error) {
	args := m.Called(ids)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTenantRoleUsersStore) Exists(tenantRoleID, userID int64) (bool, error) {
	args := m.Called(tenantRoleID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTenantRoleUsersStore) IDs(tenantID int64, roleIDs []int64, userID int64) ([]int64, error) {
	args := m.Called(tenantID, roleIDs, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockTenantRoleUsersStore) IsAssociatedWithTenant(userID, tenantID int64) (bool, error) {
	args := m.Called(userID, tenantID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTenantRoleUsersStore) Tenants(userID int64, roleID *int64) ([]int64, error) {
	args := m.Called(userID, roleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockTenantRoleUsersStore) UserIDs(tenantRoleID int64, limit, offset int) ([]int64, error) {
	args := m.Called(tenantRoleID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockTenantRoleUsersStore) List(tenantRoleID, userID *int64, limit, offset int) ([]model.TenantRoleUser, error) {
	args := m.Called(tenantRoleID, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TenantRoleUser), args.Error(1)
}

func (m *MockTenantRoleUsersStore) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// MockTenantRolePermissionsStore implements store.TenantRolePermissionsStore for testing using testify/mock
type MockTenantRolePermissionsStore struct {
	mock.Mock
}

func (m *MockTenantRolePermissionsStore) Create(trp *model.TenantRolePermission) error {
	args := m.Called(trp)
	return args.Error(0)
}

func (m *MockTenantRolePermissionsStore) Update(trp *model.TenantRolePermission) error {
	args := m.Called(trp)
	return args.Error(0)
}

func (m *MockTenantRolePermissionsStore) Get(id int64) (*model.TenantRolePermission, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TenantRolePermission), args.Error(1)
}

func (m *MockTenantRolePermissionsStore) Delete(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockTenantRolePermissionsStore) Exists(tenantRoleID, permissionID int64) (bool, error) {
	args := m.Called(tenantRoleID, permissionID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTenantRolePermissionsStore) GetID(tenantRoleID, permissionID int64) (int64, error) {
	args := m.Called(tenantRoleID, permissionID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTenantRolePermissionsStore) PermissionIDs(tenantID, roleID int64, userID *int64) ([]int64, error) {
	args := m.Called(tenantID, roleID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockTenantRolePermissionsStore) List(tenantRoleID, permissionID *int64, limit, offset int) ([]model.TenantRolePermission, error) {
	args := m.Called(tenantRoleID, permissionID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TenantRolePermission), args.Error(1)
}

func (m *MockTenantRolePermissionsStore) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// MockRolesStore implements store.RolesStore for testing using testify/mock
type MockRolesStore struct {
	mock.Mock
}

func (m *MockRolesStore) CreateRole(role *model.Role) error {
	args := m.Called(role)
	return args.Error(0)
}

func (m *MockRolesStore) UpdateRole(role *model.Role) error {
	args := m.Called(role)
	return args.Error(0)
}

func (m *MockRolesStore) DeleteRole(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockRolesStore) GetRole(id int64) (*model.Role, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Role), args.Error(1)
}

func (m *MockRolesStore) GetRoleByName(name string) (*model.Role, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Role), args.Error(1)
}

func (m *MockRolesStore) GetRolesByIDs(ids []int64) ([]model.Role, error) {
	args := m.Called(ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Role), args.Error(1)
}

func (m *MockRolesStore) ListRoles(search string, limit, offset int) ([]model.Role, error) {
	args := m.Called(search, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Role), args.Error(1)
}

func (m *MockRolesStore) CountRoles() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// MockActiveTenantsStore implements store.ActiveTenantsStore for testing using testify/mock
type MockActiveTenantsStore struct {
	mock.Mock
}

func (m *MockActiveTenantsStore) Create(at *model.ActiveTenant) error {
	args := m.Called(at)
	return args.Error(0)
}

func (m *MockActiveTenantsStore) GetByUserAndTenant(userID, tenantID int64) ([]model.ActiveTenant, error) {
	args := m.Called(userID, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ActiveTenant), args.Error(1)
}

func (m *MockActiveTenantsStore) DeleteByUserAndTenant(userID, tenantID int64) error {
	args := m.Called(userID, tenantID)
	return args.Error(0)
}

// MockPermissionChecker implements PermissionChecker for testing using testify/mock
type MockPermissionChecker struct {
	mock.Mock
}

func (m *MockPermissionChecker) PermissionExists(ctx context.Context, permissionID int64, tenantID *int64) (bool, error) {
	args := m.Called(ctx, permissionID, tenantID)
	return args.Bool(0), args.Error(1)
}
