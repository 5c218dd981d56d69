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

// RoleRequest is the request body for creating or updating a role.
type RoleRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// RoleResponse represents a role in the API response.
type RoleResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func toRoleResponse(role *model.Role) RoleResponse {
	return RoleResponse{ID: role.ID, Name: role.Name, Description: role.Description}
}

// RegisterRolesEndpoints registers the role CRUD endpoints
func RegisterRolesEndpoints(s *server.Server) {
	eng := s.Engine

	bearer := middleware.NewBearerCredentials()

	router := s.Router.PathPrefix("/role").Subrouter()
	router.Use(bearer.Middleware)

	router.HandleFunc("", handleCreateRole(s)).Methods("POST")
	router.HandleFunc("", handleListRoles(eng)).Methods("GET")
	router.HandleFunc("/{id}", handleGetRole(eng)).Methods("GET")
	router.HandleFunc("/{id}", handleUpdateRole(s)).Methods("PUT")
	router.HandleFunc("/{id}", handleDeleteRole(s)).Methods("DELETE")
	router.HandleFunc("/name/{name}", handleGetRoleByName(eng)).Methods("GET")
}

func handleCreateRole(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireCreate(w, r, s, s.Engine.CountRoles) {
			return
		}
		var body RoleRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			respondWithError(w, http.StatusBadRequest, "malformed request body")
			return
		}
		role := &model.Role{Name: body.Name, Description: body.Description}
		if err := s.Engine.CreateRole(role); err != nil {
			respondWithEngineError(w, err)
			return
		}
		respondWithJSON(w, http.StatusCreated, toRoleResponse(role))
	}
}

func handleListRoles(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, offset := queryPage(r)
		roles, err := eng.ListRoles(r.URL.Query().Get("search"), limit, offset)
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

func handleGetRole(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(mux.Vars(r)["id"])
		if !ok {
			respondWithError(w, http.StatusBadRequest, "malformed id")
			return
		}
		role, err := eng.GetRole(id)
		if err != nil {
			respondWithEngineError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, toRoleResponse(role))
	}
}

func handleGetRoleByName(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := mux.Vars(r)["name"]
		role, err := eng.GetRoleByName(name)
		if err != nil {
			respondWithEngineError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, toRoleResponse(role))
	}
}

func handleUpdateRole(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireManage(w, r, s) {
			return
		}
		id, ok := parseID(mux.Vars(r)["id"])
		if !ok {
			respondWithError(w, http.StatusBadRequest, "malformed id")
			return
		}
		var body RoleRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			respondWithError(w, http.StatusBadRequest, "malformed request body")
			return
		}
		role := &model.Role{ID: id, Name: body.Name, Description: body.Description}
		if err := s.Engine.UpdateRole(role); err != nil {
			respondWithEngineError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, toRoleResponse(role))
	}
}

func handleDeleteRole(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireManage(w, r, s) {
			return
		}
		id, ok := parseID(mux.Vars(r)["id"])
		if !ok {
			respondWithError(w, http.StatusBadRequest, "malformed id")
			return
		}
		if err := s.Engine.DeleteRole(id); err != nil {
			respondWithEngineError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
