package endpoints

import (
	"encoding/json"
	"net/http"
	"os"

	"tenauth/pkg/server"
)

// StatusResponse represents the response from the health endpoint
type StatusResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// StatusErrorResponse represents a failing health check
type StatusErrorResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

// RegisterStatusEndpoints registers the status and info endpoints
func RegisterStatusEndpoints(s *server.Server) {
	db := s.DB

	// GET /health - liveness plus database connectivity (no auth required)
	s.Router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		version := os.Getenv("TENAUTH_VERSION_DISPLAY")
		if version == "" {
			version = "0.1.0"
		}

		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.Ping()
		}
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(StatusErrorResponse{
				Status: "error",
				Error:  "database connectivity check failed",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(StatusResponse{
			Status:  "ok",
			Version: version,
		})
	}).Methods("GET")
}
