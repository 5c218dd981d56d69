package endpoints

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"tenauth/pkg/engine"
	"tenauth/pkg/model"
	"tenauth/pkg/server"
	"tenauth/pkg/server/middleware"
)

// TenantRoleRequest is the request body for creating or updating a
// tenant/role association.
type TenantRoleRequest struct {
	TenantID int64 `json:"tenantId"`
	RoleID   int64 `json:"roleId"`
}

// TenantRoleResponse represents an association in the API response.
type TenantRoleResponse struct {
	ID       int64 `json:"id"`
	TenantID int64 `json:"tenantId"`
	RoleID   int64 `json:"roleId"`
}

func toTenantRoleResponse(tr *model.TenantRole) TenantRoleResponse {
	return TenantRoleResponse{ID: tr.ID, TenantID: tr.TenantID, RoleID: tr.RoleID}
}

// RegisterTenantRolesEndpoints registers the tenant/role association endpoints
func RegisterTenantRolesEndpoints(s *server.Server) {
	eng := s.Engine

	bearer := middleware.NewBearerCredentials()

	router := s.Router.PathPrefix("/tenantrole").Subrouter()
	router.Use(bearer.Middleware)

	router.HandleFunc("", handleCreateTenantRole(s)).Methods("POST")
	router.HandleFunc("", handleListTenantRoles(eng)).Methods("GET")
	router.HandleFunc("/{id}", handleGetTenantRole(eng)).Methods("GET")
	router.HandleFunc("/{id}", handleUpdateTenantRole(s)).Methods("PUT")
	router.HandleFunc("/{id}", handleDeleteTenantRole(s)).Methods("DELETE")

	router.HandleFunc("/exists/{tenantId}/{roleId}", handleExistsTenantRole(eng)).Methods("HEAD", "GET")
	router.HandleFunc("/id/{tenantId}/{roleId}", handleGetTenantRoleID(eng)).Methods("GET")

	router.HandleFunc("/exists/role", handleExistsAnyRoleForUser(eng)).Methods("GET")
	router.HandleFunc("/exists/roles", handleExistsAnyRoleForUser(eng)).Methods("GET")
	router.HandleFunc("/exists/permission", handleExistsPermissionForUser(eng)).Methods("GET")

	router.HandleFunc("/roles", handleRolesForUserTenant(eng)).Methods("GET")
	router.HandleFunc("/tenants", handleTenantsForUser(eng)).Methods("GET")
}

func handleCreateTenantRole(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireCreate(w, r, s, s.Engine.CountAssociations) {
			return
		}
		var body TenantRoleRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			respondWithError(w, http.StatusBadRequest, "malformed request body")
			return
		}
		tr := &model.TenantRole{TenantID: body.TenantID, RoleID: body.RoleID}
		if err := s.Engine.CreateTenantRole(tr); err != nil {
			respondWithEngineError(w, err)
			return
		}
		respondWithJSON(w, http.StatusCreated, toTenantRoleResponse(tr))
	}
}

func handleListTenantRoles(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenantID, ok := queryInt64(r, "tenantId")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "malformed tenantId")
			return
		}
		roleID, ok := queryInt64(r, "roleId")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "malformed roleId")
			return
		}
		limit, offset := queryPage(r)
		items, err := eng.ListTenantRoles(tenantID, roleID, limit, offset)
		if err != nil {
			respondWithEngineError(w, err)
			return
		}
		responses := make([]TenantRoleResponse, len(items))
		for i := range items {
			responses[i] = toTenantRoleResponse(&items[i])
		}
		respondWithJSON(w, http.StatusOK, responses)
	}
}

func handleGetTenantRole(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(mux.Vars(r)["id"])
		if !ok {
			respondWithError(w, http.StatusBadRequest, "malformed id")
			return
		}
		tr, err := eng.GetTenantRole(id)
		if err != nil {
			respondWithEngineError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, toTenantRoleResponse(tr))
	}
}

func handleUpdateTenantRole(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireManage(w, r, s) {
			return
		}
		id, ok := parseID(mux.Vars(r)["id"])
		if !ok {
			respondWithError(w, http.StatusBadRequest, "malformed id")
			return
		}
		var body TenantRoleRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			respondWithError(w, http.StatusBadRequest, "malformed request body")
			return
		}
		tr := &model.TenantRole{ID: id, TenantID: body.TenantID, RoleID: body.RoleID}
		if err := s.Engine.UpdateTenantRole(tr); err != nil {
			respondWithEngineError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, toTenantRoleResponse(tr))
	}
}

func handleDeleteTenantRole(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireManage(w, r, s) {
			return
		}
		id, ok := parseID(mux.Vars(r)["id"])
		if !ok {
			respondWithError(w, http.StatusBadRequest, "malformed id")
			return
		}
		if err := s.Engine.DeleteTenantRole(id); err != nil {
			respondWithEngineError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleExistsTenantRole(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		tenantID, okT := parseID(vars["tenantId"])
		roleID, okR := parseID(vars["roleId"])
		if !okT || !okR {
			respondWithError(w, http.StatusBadRequest, "malformed tenant or role id")
			return
		}
		exists, err := eng.ExistsAssociation(tenantID, roleID)
		if err != nil {
			respondWithEngineError(w, err)
			return
		}
		if !exists {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleGetTenantRoleID(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		tenantID, okT := parseID(vars["tenantId"])
		roleID, okR := parseID(vars["roleId"])
		if !okT || !okR {
			respondWithError(w, http.StatusBadRequest, "malformed tenant or role id")
			return
		}
		id, err := eng.GetTenantRoleID(tenantID, roleID)
		if err != nil {
			respondWithEngineError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, id)
	}
}

func handleExistsAnyRoleForUser(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := parseID(r.URL.Query().Get("userId"))
		if !ok {
			respondWithError(w, http.StatusBadRequest, "malformed userId")
			return
		}
		roleNames := splitQueryList(r, "roleNames")
		if name := r.URL.Query().Get("roleName"); name != "" {
			roleNames = append(roleNames, name)
		}
		tenantID, okT := queryInt64(r, "tenantId")
		if !okT {
			respondWithError(w, http.StatusBadRequest, "malformed tenantId")
			return
		}
		has, err := eng.HasAnyRole(userID, roleNames, tenantID)
		if err != nil {
			respondWithEngineError(w, err)
			return
		}
		if !has {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleExistsPermissionForUser(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, okU := parseID(r.URL.Query().Get("userId"))
		permissionID, okP := parseID(r.URL.Query().Get("permissionId"))
		if !okU || !okP {
			respondWithError(w, http.StatusBadRequest, "malformed userId or permissionId")
			return
		}
		tenantID, okT := queryInt64(r, "tenantId")
		if !okT {
			respondWithError(w, http.StatusBadRequest, "malformed tenantId")
			return
		}
		has, err := eng.HasPermission(userID, permissionID, tenantID)
		if err != nil {
			respondWithEngineError(w, err)
			return
		}
		if !has {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleRolesForUserTenant(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, okU := parseID(r.URL.Query().Get("userId"))
		tenantID, okT := parseID(r.URL.Query().Get("tenantId"))
		if !okU || !okT {
			respondWithError(w, http.StatusBadRequest, "malformed userId or tenantId")
			return
		}
		roles, err := eng.GetRolesForUserTenant(userID, tenantID)
		if err != nil {
			respondWithEngineError(w, err)
			return
		}
		responses := make([]RoleResponse, len(roles))
		for i := range roles {
			responses[i] = toRoleResponse(&roles[i])
		}
		respondWithJSON(w, http.StatusOK, responses)
	}
}

func handleTenantsForUser(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := parseID(r.URL.Query().Get("userId"))
		if !ok {
			respondWithError(w, http.StatusBadRequest, "malformed userId")
			return
		}
		roleID, okR := queryInt64(r, "roleId")
		if !okR {
			respondWithError(w, http.StatusBadRequest, "malformed roleId")
			return
		}
		tenants, err := eng.GetTenants(userID, roleID)
		if err != nil {
			respondWithEngineError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, tenants)
	}
}
