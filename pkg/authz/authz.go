package authz

import (
	"context"

	"tenauth/pkg/client"
	"tenauth/pkg/credentials"
)

// Role names with built-in meaning for access decisions.
const (
	RoleSystemAdministrator     = "System Administrator"
	RolePermissionAdministrator = "Permission Administrator"
	RoleRoleAdministrator       = "Role Administrator"
	RoleTenantAdministrator     = "Tenant Administrator"
)

// UserResolver resolves the calling user's directory id.
type UserResolver interface {
	CurrentUserID(ctx context.Context) (int64, error)
}

// Checker answers grant questions about the current caller. Every check
// resolves the caller's user id first and then probes the role
// management service with the caller's own credentials, recovering once
// from an expired access token.
type Checker struct {
	resolver  UserResolver
	roles     *client.TenantRoleClient
	refresher client.Refresher
}

// NewChecker creates a checker over the given resolver, role management
// client and refresher.
func NewChecker(resolver UserResolver, roles *client.TenantRoleClient, refresher client.Refresher) *Checker {
	return &Checker{resolver: resolver, roles: roles, refresher: refresher}
}

// HasGrant reports whether the caller holds the named role, optionally
// narrowed to a tenant. An unknown caller has no grants.
func (c *Checker) HasGrant(ctx context.Context, roleName string, tenantID *int64) (bool, error) {
	return c.check(ctx, func(ctx context.Context, invoker *client.Invoker, userID int64) (bool, error) {
		return client.Invoke(ctx, invoker, func(ctx context.Context, accessToken string) (bool, error) {
			return c.roles.IsRoleExistentForUser(ctx, accessToken, userID, roleName, tenantID)
		})
	})
}

// HasAnyGrant reports whether the caller holds any of the named roles,
// optionally narrowed to a tenant.
func (c *Checker) HasAnyGrant(ctx context.Context, roleNames []string, tenantID *int64) (bool, error) {
	return c.check(ctx, func(ctx context.Context, invoker *client.Invoker, userID int64) (bool, error) {
		return client.Invoke(ctx, invoker, func(ctx context.Context, accessToken string) (bool, error) {
			return c.roles.IsAnyRoleExistentForUser(ctx, accessToken, userID, roleNames, tenantID)
		})
	})
}

// HasGrantForPermission reports whether the caller holds the
// permission, optionally narrowed to a tenant.
func (c *Checker) HasGrantForPermission(ctx context.Context, permissionID int64, tenantID *int64) (bool, error) {
	return c.check(ctx, func(ctx context.Context, invoker *client.Invoker, userID int64) (bool, error) {
		return client.Invoke(ctx, invoker, func(ctx context.Context, accessToken string) (bool, error) {
			return c.roles.IsPermissionExistentForUser(ctx, accessToken, userID, permissionID, tenantID)
		})
	})
}

// check resolves the calling user and runs the probe with the caller's
// own credentials. An unresolvable caller is a terminal error; only the
// probe itself may degrade to a plain "no".
func (c *Checker) check(ctx context.Context, probe func(ctx context.Context, invoker *client.Invoker, userID int64) (bool, error)) (bool, error) {
	holder, ok := credentials.HolderFromContext(ctx)
	if !ok {
		return false, client.ErrNoCurrentUser
	}
	userID, err := c.resolver.CurrentUserID(ctx)
	if err != nil {
		return false, err
	}
	return probe(ctx, client.NewInvoker(holder, c.refresher), userID)
}
