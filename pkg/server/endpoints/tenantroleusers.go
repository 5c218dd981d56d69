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

// TenantRoleUserRequest is the request body for assigning a user to a
// tenant/role association.
type TenantRoleUserRequest struct {
	TenantRoleID int64 `json:"tenantRoleId"`
	UserID       int64 `json:"userId"`
}

// UnassignUserRequest is the request body for removing a user's
// assignments under a tenant.
type UnassignUserRequest struct {
	TenantID int64   `json:"tenantId"`
	RoleIDs  []int64 `json:"roleIds"`
	UserID   int64   `json:"userId"`
}

// TenantRoleUserResponse represents a user assignment in the API response.
type TenantRoleUserResponse struct {
	ID           int64 `json:"id"`
	TenantRoleID int64 `json:"tenantRoleId"`
	UserID       int64 `json:"userId"`
}

func toTenantRoleUserResponse(tru *model.TenantRoleUser) TenantRoleUserResponse {
	return TenantRoleUserResponse{ID: tru.ID, TenantRoleID: tru.TenantRoleID, UserID: tru.UserID}
}

// RegisterTenantRoleUsersEndpoints registers the user assignment endpoints
func RegisterTenantRoleUsersEndpoints(s *server.Server) {
	eng := s.Engine

	bearer := middleware.NewBearerCredentials()

	router := s.Router.PathPrefix("/tenantroleuser").Subrouter()
	router.Use(bearer.Middleware)

	router.HandleFunc("", handleAssignUser(s)).Methods("POST")
	router.HandleFunc("", handleListUserAssignments(eng)).Methods("GET")
	router.HandleFunc("/{id}", handleGetUserAssignment(eng)).Methods("GET")
	router.HandleFunc("/{id}", handleUpdateUserAssignment(s)).Methods("PUT")
	router.HandleFunc("/{id}", handleDeleteUserAssignment(s)).Methods("DELETE")
	router.HandleFunc("/unassign", handleUnassignUser(s)).Methods("POST")
	router.HandleFunc("/userids/{tenantRoleId}", handleAssignedUserIDs(eng)).Methods("GET")

	activeRouter := s.Router.PathPrefix("/activetenant").Subrouter()
	activeRouter.Use(bearer.Middleware)
	activeRouter.HandleFunc("/{userId}/{tenantId}", handleSetActiveTenant(eng)).Methods("POST")
	activeRouter.HandleFunc("/{userId}/{tenantId}", handleClearActiveTenant(eng)).Methods("DELETE")
}

func handleAssignUser(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireCreate(w, r, s, s.Engine.CountUserAssignments) {
			return
		}
		var body TenantRoleUserRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			respondWithError(w, http.StatusBadRequest, "malformed request body")
			return
		}
		tru := &model.TenantRoleUser{TenantRoleID: body.TenantRoleID, UserID: body.UserID}
		if err := s.Engine.AssignUser(tru); err != nil {
			respondWithEngineError(w, err)
			return
		}
		respondWithJSON(w, http.StatusCreated, toTenantRoleUserResponse(tru))
	}
}

func handleListUserAssignments(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenantRoleID, okT := queryInt64(r, "tenantRoleId")
		userID, okU := queryInt64(r, "userId")
		if !okT || !okU {
			respondWithError(w, http.StatusBadRequest, "malformed tenantRoleId or userId")
			return
		}
		limit, offset := queryPage(r)
		items, err := eng.ListUserAssignments(tenantRoleID, userID, limit, offset)
		if err != nil {
			respondWithEngineError(w, err)
			return
		}
		responses := make([]TenantRoleUserResponse, len(items))
		for i := range items {
			responses[i] = toTenantRoleUserResponse(&items[i])
		}
		respondWithJSON(w, http.StatusOK, responses)
	}
}

func handleGetUserAssignment(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(mux.Vars(r)["id"])
		if !ok {
			respondWithError(w, http.StatusBadRequest, "malformed id")
			return
		}
		tru, err := eng.GetUserAssignment(id)
		if err != nil {
			respondWithEngineError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, toTenantRoleUserResponse(tru))
	}
}

func handleUpdateUserAssignment(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireManage(w, r, s) {
			return
		}
		id, ok := parseID(mux.Vars(r)["id"])
		if !ok {
			respondWithError(w, http.StatusBadRequest, "malformed id")
			return
		}
		var body TenantRoleUserRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			respondWithError(w, http.StatusBadRequest, "malformed request body")
			return
		}
		tru := &model.TenantRoleUser{ID: id, TenantRoleID: body.TenantRoleID, UserID: body.UserID}
		if err := s.Engine.UpdateUserAssignment(tru); err != nil {
			respondWithEngineError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, toTenantRoleUserResponse(tru))
	}
}

func handleDeleteUserAssignment(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireManage(w, r, s) {
			return
		}
		id, ok := parseID(mux.Vars(r)["id"])
		if !ok {
			respondWithError(w, http.StatusBadRequest, "malformed id")
			return
		}
		if err := s.Engine.DeleteUserAssignment(id); err != nil {
			respondWithEngineError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleUnassignUser(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireManage(w, r, s) {
			return
		}
		var body UnassignUserRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			respondWithError(w, http.StatusBadRequest, "malformed request body")
			return
		}
		if err := s.Engine.UnassignUser(body.TenantID, body.RoleIDs, body.UserID); err != nil {
			respondWithEngineError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleAssignedUserIDs(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenantRoleID, ok := parseID(mux.Vars(r)["tenantRoleId"])
		if !ok {
			respondWithError(w, http.StatusBadRequest, "malformed tenantRoleId")
			return
		}
		limit, offset := queryPage(r)
		ids, err := eng.GetAssignedUserIDs(tenantRoleID, limit, offset)
		if err != nil {
			respondWithEngineError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, ids)
	}
}

func handleSetActiveTenant(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		userID, okU := parseID(vars["userId"])
		tenantID, okT := parseID(vars["tenantId"])
		if !okU || !okT {
			respondWithError(w, http.StatusBadRequest, "malformed userId or tenantId")
			return
		}
		if err := eng.SetActiveTenant(userID, tenantID); err != nil {
			respondWithEngineError(w, err)
			return
		}
		w.WriteHeader(http.StatusCreated)
	}
}

func handleClearActiveTenant(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		userID, okU := parseID(vars["userId"])
		tenantID, okT := parseID(vars["tenantId"])
		if !okU || !okT {
			respondWithError(w, http.StatusBadRequest, "malformed userId or tenantId")
			return
		}
		if err := eng.ClearActiveTenant(userID, tenantID); err != nil {
			respondWithEngineError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
