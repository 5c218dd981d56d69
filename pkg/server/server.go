package server

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"tenauth/pkg/authz"
	"tenauth/pkg/client"
	"tenauth/pkg/engine"
)

// PermissionResolver resolves permission ids into full permission
// records via the permission management service.
type PermissionResolver interface {
	Permissions(ctx context.Context, ids []int64) ([]client.Permission, error)
}

type Server struct {
	Engine  *engine.Engine
	Checker *authz.Checker
	Router  *mux.Router
	DB      *gorm.DB

	// Permissions resolves permission ids for the read endpoints that
	// return full permission records.
	Permissions PermissionResolver

	// AdminPermissionID is the directory id of the permission that, like
	// the System Administrator role, grants write access to the
	// association endpoints. Zero disables the permission leg.
	AdminPermissionID int64

	srv *http.Server
}

func NewServer(
	eng *engine.Engine,
	checker *authz.Checker,
	db *gorm.DB,
	host string,
	port string,
) *Server {

	router := mux.NewRouter().UseEncodedPath()
	srv := &http.Server{
		Handler: handlers.LoggingHandler(os.Stdout, router),
		Addr:    host + ":" + port,
		// Good practice: enforce timeouts for servers you create!
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	return &Server{
		Engine:  eng,
		Checker: checker,
		Router:  router,
		DB:      db,
		srv:     srv,
	}
}

func (s Server) Start() error {
	return s.srv.ListenAndServe()
}
