// Package config provides configuration management for the server.
//
// This package handles loading and validating server configuration from
// environment variables and configuration files.
//
// # Configuration Sources
//
// Configuration is loaded from:
//
//   - Environment variables (primary)
//   - Configuration files (optional)
//
// # Key Configuration Options
//
//   - TENAUTH_IDENTITY_URL: Identity service base URL
//   - TENAUTH_USER_MANAGEMENT_URL: User management service base URL
//   - TENAUTH_PERMISSION_MANAGEMENT_URL: Permission management service base URL
//   - TENAUTH_LOG_LEVEL: Logging verbosity
//   - DATABASE_URL: Database connection
//   - PORT: Server listen port
package config
