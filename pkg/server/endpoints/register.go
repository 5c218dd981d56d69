package endpoints

import (
	"tenauth/pkg/server"
)

// RegisterAll registers all API endpoints on the server
func RegisterAll(srv *server.Server) {
	RegisterRolesEndpoints(srv)
	RegisterTenantRolesEndpoints(srv)
	RegisterTenantRoleUsersEndpoints(srv)
	RegisterTenantRolePermissionsEndpoints(srv)
	RegisterStatusEndpoints(srv)
}
