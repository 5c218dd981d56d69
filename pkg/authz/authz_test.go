package authz

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tenauth/pkg/client"
	"tenauth/pkg/credentials"
)

type staticResolver struct {
	id  int64
	err error
}

func (r staticResolver) CurrentUserID(ctx context.Context) (int64, error) {
	return r.id, r.err
}

type staticRefresher struct {
	calls       int
	accessToken string
	err         error
}

func (r *staticRefresher) Refresh(ctx context.Context, refreshToken string) (string, error) {
	r.calls++
	return r.accessToken, r.err
}

func contextWithCredential(accessToken string) context.Context {
	holder := credentials.NewHolder()
	holder.Set(credentials.Credential{AccessToken: accessToken, RefreshToken: "refresh-token"})
	return credentials.WithHolder(context.Background(), holder)
}

func TestCheckerHasGrant(t *testing.T) {
	t.Run("grants the role the service confirms", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/tenantrole/exists/role", r.URL.Path)
			assert.Equal(t, "Bearer caller-token", r.Header.Get("Authorization"))
			assert.Equal(t, "7", r.URL.Query().Get("userId"))
			assert.Equal(t, RoleTenantAdministrator, r.URL.Query().Get("roleName"))
			w.WriteHeader(http.StatusNoContent)
		}))
		defer srv.Close()

		checker := NewChecker(staticResolver{id: 7}, client.NewTenantRoleClient(srv.URL), &staticRefresher{})
		ok, err := checker.HasGrant(contextWithCredential("caller-token"), RoleTenantAdministrator, nil)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("a refused probe denies without error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		checker := NewChecker(staticResolver{id: 7}, client.NewTenantRoleClient(srv.URL), &staticRefresher{})
		ok, err := checker.HasGrant(contextWithCredential("caller-token"), RoleSystemAdministrator, nil)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("a caller without a credential holder is a terminal error", func(t *testing.T) {
		checker := NewChecker(staticResolver{id: 7}, client.NewTenantRoleClient("http://localhost:0"), &staticRefresher{})
		ok, err := checker.HasGrant(context.Background(), RoleSystemAdministrator, nil)
		assert.ErrorIs(t, err, client.ErrNoCurrentUser)
		assert.False(t, ok)
	})

	t.Run("an unresolvable caller propagates, not degrades", func(t *testing.T) {
		checker := NewChecker(staticResolver{err: client.ErrUserNotFound}, client.NewTenantRoleClient("http://localhost:0"), &staticRefresher{})
		ok, err := checker.HasGrant(contextWithCredential("caller-token"), RoleSystemAdministrator, nil)
		assert.ErrorIs(t, err, client.ErrUserNotFound)
		assert.False(t, ok)
	})

	t.Run("a caller with an empty credential is a terminal error", func(t *testing.T) {
		checker := NewChecker(staticResolver{err: client.ErrNoCurrentUser}, client.NewTenantRoleClient("http://localhost:0"), &staticRefresher{})
		ok, err := checker.HasGrant(contextWithCredential("caller-token"), RoleSystemAdministrator, nil)
		assert.ErrorIs(t, err, client.ErrNoCurrentUser)
		assert.False(t, ok)
	})

	t.Run("recovers once from an expired access token", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != "Bearer fresh-token" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			w.WriteHeader(http.StatusNoContent)
		}))
		defer srv.Close()

		refresher := &staticRefresher{accessToken: "fresh-token"}
		checker := NewChecker(staticResolver{id: 7}, client.NewTenantRoleClient(srv.URL), refresher)
		ok, err := checker.HasGrant(contextWithCredential("stale-token"), RoleSystemAdministrator, nil)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, 1, refresher.calls)
	})
}

func TestCheckerHasAnyGrant(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tenantrole/exists/roles", r.URL.Path)
		assert.Equal(t, "Role Administrator,Tenant Administrator", r.URL.Query().Get("roleNames"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	checker := NewChecker(staticResolver{id: 7}, client.NewTenantRoleClient(srv.URL), &staticRefresher{})
	ok, err := checker.HasAnyGrant(contextWithCredential("caller-token"),
		[]string{RoleRoleAdministrator, RoleTenantAdministrator}, nil)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCheckerHasGrantForPermission(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tenantrole/exists/permission", r.URL.Path)
		assert.Equal(t, "42", r.URL.Query().Get("permissionId"))
		assert.Equal(t, "3", r.URL.Query().Get("tenantId"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	tenantID := int64(3)
	checker := NewChecker(staticResolver{id: 7}, client.NewTenantRoleClient(srv.URL), &staticRefresher{})
	ok, err := checker.HasGrantForPermission(contextWithCredential("caller-token"), 42, &tenantID)
	require.NoError(t, err)
	assert.True(t, ok)
}
