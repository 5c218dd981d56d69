package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"tenauth/pkg/authz"
	"tenauth/pkg/client"
	"tenauth/pkg/config"
	"tenauth/pkg/db"
	"tenauth/pkg/engine"
	"tenauth/pkg/server"
	"tenauth/pkg/server/endpoints"
	gormstore "tenauth/pkg/server/store/gorm"
)

func defaultBindAddress() string {
	if addr := os.Getenv("TENAUTH_BIND_ADDRESS"); addr != "" {
		return addr
	}
	return "0.0.0.0"
}

func defaultPort() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "8087"
}

func defaultPortInt() int {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			return p
		}
	}
	return 8087
}

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the tenant role management server",
	Long: `Run the tenant role management server

To run the server requires the environment variable DATABASE_URL.

By default, database migrations are run on startup. Use --no-migrate to skip.`,
	Run: func(cmd *cobra.Command, args []string) {
		if os.Getenv("DATABASE_URL") == "" {
			fmt.Fprintln(os.Stderr, "DATABASE_URL environment variable is required")
			os.Exit(1)
		}

		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
			os.Exit(1)
		}
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Configuration validation failed: %v\n", err)
			os.Exit(1)
		}

		// Run migrations unless --no-migrate is set
		noMigrate, _ := cmd.Flags().GetBool("no-migrate")
		if !noMigrate {
			log.Println("Running database migrations...")
			if err := runMigrations(); err != nil {
				fmt.Fprintf(os.Stderr, "Migration failed: %v\n", err)
				os.Exit(1)
			}
		}

		database, err := db.Connect(db.Config{})
		if err != nil {
			fmt.Println("Unable to connect to DB:", err)
			os.Exit(1)
		}

		host, _ := cmd.Flags().GetString("bind-address")
		port, _ := cmd.Flags().GetString("port")

		refresher := client.NewHTTPRefresher(cfg.IdentityURL)
		users := client.NewUserDirectory(cfg.UserManagementURL)
		permissions := client.NewPermissionDirectory(cfg.PermissionManagementURL)

		roleManagementURL := cfg.RoleManagementURL
		if roleManagementURL == "" {
			roleManagementURL = fmt.Sprintf("http://localhost:%s", port)
		}
		tenantRoles := client.NewTenantRoleClient(roleManagementURL)

		resolver := client.NewUserResolver(users, refresher)
		verifier := client.NewPermissionVerifier(permissions, refresher)
		checker := authz.NewChecker(resolver, tenantRoles, refresher)

		eng := engine.New(
			gormstore.NewTenantRolesStore(database),
			gormstore.NewTenantRoleUsersStore(database),
			gormstore.NewTenantRolePermissionsStore(database),
			gormstore.NewRolesStore(database),
			gormstore.NewActiveTenantsStore(database),
			verifier,
		)

		s := server.NewServer(eng, checker, database, host, port)
		s.AdminPermissionID = cfg.AdminPermissionID
		s.Permissions = verifier

		endpoints.RegisterAll(s)

		log.Printf("Running server at http://%s:%s...\n", host, port)
		log.Fatal(s.Start())
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)

	serverCmd.Flags().StringP("port", "p", defaultPort(), "server listen port")
	serverCmd.Flags().StringP("bind-address", "b", defaultBindAddress(), "server bind address")
	serverCmd.Flags().Bool("no-migrate", false, "skip running database migrations on start")
}
