// Package main provides the tenauthctl CLI for the tenant role
// management server.
//
// The server keeps the associations between tenants, roles, users and
// permissions, and answers grant questions for its collaborating
// services.
//
// # Architecture
//
// The server is organized into several packages:
//
//   - pkg/server: HTTP server and routing
//   - pkg/server/endpoints: REST API endpoint handlers
//   - pkg/engine: Association rules and consistency obligations
//   - pkg/authz: Grant checks for the current caller
//   - pkg/client: Clients for the collaborating services
//   - pkg/credentials: Per-request credential handling
//   - pkg/model: Database models
//   - pkg/db: Database connection utilities
//   - pkg/config: Configuration management
//
// # Quick Start
//
//	# Run database migrations
//	tenauthctl db migrate
//
//	# Start the server
//	tenauthctl server
//
// # Environment Variables
//
//   - DATABASE_URL: PostgreSQL connection string
//   - TENAUTH_IDENTITY_URL: Identity service base URL
//   - TENAUTH_USER_MANAGEMENT_URL: User management service base URL
//   - TENAUTH_PERMISSION_MANAGEMENT_URL: Permission management service base URL
//   - TENAUTH_LOG_LEVEL: Log level (debug, info, warn, error)
//   - PORT: Server port (default: 8087)
package main
