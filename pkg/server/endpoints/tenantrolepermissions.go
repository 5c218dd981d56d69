package endpoints

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"tenauth/pkg/client"
	"tenauth/pkg/engine"
	"tenauth/pkg/model"
	"tenauth/pkg/server"
	"tenauth/pkg/server/middleware"
)

// TenantRolePermissionRequest is the request body for assigning a
// permission to a tenant/role association.
type TenantRolePermissionRequest struct {
	TenantRoleID int64 `json:"tenantRoleId"`
	PermissionID int64 `json:"permissionId"`
}

// UnassignPermissionRequest is the request body for removing a
// permission from a (tenant, role) association.
type UnassignPermissionRequest struct {
	TenantID     int64 `json:"tenantId"`
	RoleID       int64 `json:"roleId"`
	PermissionID int64 `json:"permissionId"`
}

// TenantRolePermissionResponse represents a permission assignment in the
// API response.
type TenantRolePermissionResponse struct {
	ID           int64 `json:"id"`
	TenantRoleID int64 `json:"tenantRoleId"`
	PermissionID int64 `json:"permissionId"`
}

func toTenantRolePermissionResponse(trp *model.TenantRolePermission) TenantRolePermissionResponse {
	return TenantRolePermissionResponse{ID: trp.ID, TenantRoleID: trp.TenantRoleID, PermissionID: trp.PermissionID}
}

// RegisterTenantRolePermissionsEndpoints registers the permission
// assignment endpoints
func RegisterTenantRolePermissionsEndpoints(s *server.Server) {
	eng := s.Engine

	bearer := middleware.NewBearerCredentials()

	router := s.Router.PathPrefix("/tenantrolepermission").Subrouter()
	router.Use(bearer.Middleware)

	router.HandleFunc("", handleAssignPermission(s)).Methods("POST")
	router.HandleFunc("", handleListPermissionAssignments(eng)).Methods("GET")
	router.HandleFunc("/{id}", handleGetPermissionAssignment(eng)).Methods("GET")
	router.HandleFunc("/{id}", handleUpdatePermissionAssignment(s)).Methods("PUT")
	router.HandleFunc("/unassign", handleUnassignPermission(s)).Methods("POST")
	router.HandleFunc("/permissionids", handlePermissionIDs(eng)).Methods("GET")
	router.HandleFunc("/permissions", handlePermissions(s)).Methods("GET")
}

func handleAssignPermission(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireManage(w, r, s) {
			return
		}
		var body TenantRolePermissionRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			respondWithError(w, http.StatusBadRequest, "malformed request body")
			return
		}
		trp := &model.TenantRolePermission{TenantRoleID: body.TenantRoleID, PermissionID: body.PermissionID}
		if err := s.Engine.AssignPermission(r.Context(), trp); err != nil {
			respondWithEngineError(w, err)
			return
		}
		respondWithJSON(w, http.StatusCreated, toTenantRolePermissionResponse(trp))
	}
}

func handleListPermissionAssignments(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenantRoleID, okT := queryInt64(r, "tenantRoleId")
		permissionID, okP := queryInt64(r, "permissionId")
		if !okT || !okP {
			respondWithError(w, http.StatusBadRequest, "malformed tenantRoleId or permissionId")
			return
		}
		limit, offset := queryPage(r)
		items, err := eng.ListPermissionAssignments(tenantRoleID, permissionID, limit, offset)
		if err != nil {
			respondWithEngineError(w, err)
			return
		}
		responses := make([]TenantRolePermissionResponse, len(items))
		for i := range items {
			responses[i] = toTenantRolePermissionResponse(&items[i])
		}
		respondWithJSON(w, http.StatusOK, responses)
	}
}

func handleGetPermissionAssignment(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(mux.Vars(r)["id"])
		if !ok {
			respondWithError(w, http.StatusBadRequest, "malformed id")
			return
		}
		trp, err := eng.GetPermissionAssignment(id)
		if err != nil {
			respondWithEngineError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, toTenantRolePermissionResponse(trp))
	}
}

func handleUpdatePermissionAssignment(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireManage(w, r, s) {
			return
		}
		id, ok := parseID(mux.Vars(r)["id"])
		if !ok {
			respondWithError(w, http.StatusBadRequest, "malformed id")
			return
		}
		var body TenantRolePermissionRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			respondWithError(w, http.StatusBadRequest, "malformed request body")
			return
		}
		trp := &model.TenantRolePermission{ID: id, TenantRoleID: body.TenantRoleID, PermissionID: body.PermissionID}
		if err := s.Engine.UpdatePermissionAssignment(r.Context(), trp); err != nil {
			respondWithEngineError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, toTenantRolePermissionResponse(trp))
	}
}

func handleUnassignPermission(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireManage(w, r, s) {
			return
		}
		var body UnassignPermissionRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			respondWithError(w, http.StatusBadRequest, "malformed request body")
			return
		}
		if err := s.Engine.UnassignPermission(body.TenantID, body.RoleID, body.PermissionID); err != nil {
			respondWithEngineError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// handlePermissions resolves the assigned permission ids into full
// permission records through the permission management service, using
// the caller's own credentials.
func handlePermissions(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenantID, okT := parseID(r.URL.Query().Get("tenantId"))
		roleID, okR := parseID(r.URL.Query().Get("roleId"))
		if !okT || !okR {
			respondWithError(w, http.StatusBadRequest, "malformed tenantId or roleId")
			return
		}
		userID, okU := queryInt64(r, "userId")
		if !okU {
			respondWithError(w, http.StatusBadRequest, "malformed userId")
			return
		}
		ids, err := s.Engine.GetPermissionIDs(tenantID, roleID, userID)
		if err != nil {
			respondWithEngineError(w, err)
			return
		}
		permissions, err := s.Permissions.Permissions(r.Context(), ids)
		if err != nil {
			respondWithEngineError(w, err)
			return
		}
		if permissions == nil {
			permissions = []client.Permission{}
		}
		respondWithJSON(w, http.StatusOK, permissions)
	}
}

func handlePermissionIDs(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenantID, okT := parseID(r.URL.Query().Get("tenantId"))
		roleID, okR := parseID(r.URL.Query().Get("roleId"))
		if !okT || !okR {
			respondWithError(w, http.StatusBadRequest, "malformed tenantId or roleId")
			return
		}
		userID, okU := queryInt64(r, "userId")
		if !okU {
			respondWithError(w, http.StatusBadRequest, "malformed userId")
			return
		}
		ids, err := eng.GetPermissionIDs(tenantID, roleID, userID)
		if err != nil {
			respondWithEngineError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, ids)
	}
}
