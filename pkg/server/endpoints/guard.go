package endpoints

import (
	"context"
	"net/http"

	"tenauth/pkg/authz"
	"tenauth/pkg/server"
)

// callerMayManage reports whether the caller may mutate associations:
// either the System Administrator role or, when configured, the admin
// permission.
func callerMayManage(ctx context.Context, s *server.Server) (bool, error) {
	ok, err := s.Checker.HasGrant(ctx, authz.RoleSystemAdministrator, nil)
	if err != nil || ok {
		return ok, err
	}
	if s.AdminPermissionID > 0 {
		return s.Checker.HasGrantForPermission(ctx, s.AdminPermissionID, nil)
	}
	return false, nil
}

// createAllowed decides whether the caller may create a record. The very
// first record of each kind is always allowed so a fresh installation
// can bootstrap its first administrator: the first role, the first
// association and the first user assignment each short-circuit on their
// own count.
func createAllowed(ctx context.Context, s *server.Server, count func() (int64, error)) (bool, error) {
	n, err := count()
	if err != nil {
		return false, err
	}
	if n == 0 {
		return true, nil
	}
	return callerMayManage(ctx, s)
}

// requireCreate runs the create guard and reports the refusal, returning
// false when the handler must stop.
func requireCreate(w http.ResponseWriter, r *http.Request, s *server.Server, count func() (int64, error)) bool {
	ok, err := createAllowed(r.Context(), s, count)
	if err != nil {
		respondWithEngineError(w, err)
		return false
	}
	if !ok {
		respondWithError(w, http.StatusForbidden, "caller is not allowed to manage associations")
		return false
	}
	return true
}

// requireManage guards updates and deletions. There is no bootstrap
// bypass here; existing records are only managed by privileged callers.
func requireManage(w http.ResponseWriter, r *http.Request, s *server.Server) bool {
	ok, err := callerMayManage(r.Context(), s)
	if err != nil {
		respondWithEngineError(w, err)
		return false
	}
	if !ok {
		respondWithError(w, http.StatusForbidden, "caller is not allowed to manage associations")
		return false
	}
	return true
}
