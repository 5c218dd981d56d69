package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTenantRoleClientGrantProbes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/tenantrole/exists/role":
			if r.URL.Query().Get("roleName") == "System Administrator" {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			w.WriteHeader(http.StatusNotFound)
		case "/tenantrole/exists/roles":
			w.WriteHeader(http.StatusNoContent)
		case "/tenantrole/exists/permission":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := NewTenantRoleClient(srv.URL)
	ctx := context.Background()

	has, err := c.IsRoleExistentForUser(ctx, "token", 3, "System Administrator", nil)
	require.NoError(t, err)
	assert.True(t, has)

	has, err = c.IsRoleExistentForUser(ctx, "token", 3, "Auditor", nil)
	require.NoError(t, err)
	assert.False(t, has)

	has, err = c.IsAnyRoleExistentForUser(ctx, "token", 3, []string{"Auditor", "System Administrator"}, nil)
	require.NoError(t, err)
	assert.True(t, has)

	// A refused probe is an answer, not an error.
	has, err = c.IsPermissionExistentForUser(ctx, "token", 3, 4, nil)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestTenantRoleClientExpiredToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewTenantRoleClient(srv.URL)
	_, err := c.IsRoleExistentForUser(context.Background(), "stale", 3, "Auditor", nil)
	assert.ErrorIs(t, err, ErrCredentialExpired)
}
