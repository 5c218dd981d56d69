package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "/etc/tenauth/config"
	ConfigFileName    = "tenauth.yml"
)

// Config holds all server configuration settings
type Config struct {
	// BindAddress is the address the HTTP server listens on
	BindAddress string `yaml:"bind_address" json:"bind_address"`

	// Port is the port the HTTP server listens on
	Port string `yaml:"port" json:"port"`

	// IdentityURL is the base URL of the identity service
	IdentityURL string `yaml:"identity_url" json:"identity_url"`

	// UserManagementURL is the base URL of the user management service
	UserManagementURL string `yaml:"user_management_url" json:"user_management_url"`

	// PermissionManagementURL is the base URL of the permission management service
	PermissionManagementURL string `yaml:"permission_management_url" json:"permission_management_url"`

	// RoleManagementURL is the base URL used for remote grant checks.
	// Empty means grant checks run against this instance's own address.
	RoleManagementURL string `yaml:"role_management_url" json:"role_management_url"`

	// AdminPermissionID is the directory id of the permission that grants
	// write access to the association endpoints. Zero disables the
	// permission leg of the write guard.
	AdminPermissionID int64 `yaml:"admin_permission_id" json:"admin_permission_id"`

	// APIResourceListLimitMax is the maximum number of results for listing requests
	APIResourceListLimitMax int `yaml:"api_resource_list_limit_max" json:"api_resource_list_limit_max"`

	// sources tracks where each value came from
	sources map[string]string

	// configFilePath is the path to the config file
	configFilePath string
}

// Attribute represents a configuration attribute with its value and source
type Attribute struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

// Global singleton config
var (
	globalConfig *Config
	configMu     sync.RWMutex
)

// Get returns the global configuration, loading it if necessary
func Get() *Config {
	configMu.RLock()
	if globalConfig != nil {
		configMu.RUnlock()
		return globalConfig
	}
	configMu.RUnlock()

	// Load config
	configMu.Lock()
	defer configMu.Unlock()

	if globalConfig == nil {
		cfg, err := Load()
		if err != nil {
			// Return defaults on error
			globalConfig = newDefault()
		} else {
			globalConfig = cfg
		}
	}
	return globalConfig
}

// Reload reloads the configuration from file and environment
func Reload() error {
	cfg, err := Load()
	if err != nil {
		return err
	}

	configMu.Lock()
	globalConfig = cfg
	configMu.Unlock()
	return nil
}

// newDefault returns a config with default values
func newDefault() *Config {
	return &Config{
		BindAddress:             "0.0.0.0",
		Port:                    "8087",
		IdentityURL:             "http://localhost:8081",
		UserManagementURL:       "http://localhost:8082",
		PermissionManagementURL: "http://localhost:8085",
		RoleManagementURL:       "",
		AdminPermissionID:       0,
		APIResourceListLimitMax: 1000,
		sources:                 make(map[string]string),
	}
}

// Load loads configuration from file and environment variables
// Environment variables take precedence over file values
func Load() (*Config, error) {
	config := newDefault()

	// Initialize all sources as "default"
	for _, name := range attributeNames() {
		config.sources[name] = "default"
	}

	// Determine config file path
	configPath := os.Getenv("TENAUTH_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	config.configFilePath = filepath.Join(configPath, ConfigFileName)

	// Try to load from config file
	if data, err := os.ReadFile(config.configFilePath); err == nil {
		var fileConfig Config
		if err := yaml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", config.configFilePath, err)
		}
		config.applyFileConfig(&fileConfig)
	}

	// Override with environment variables
	config.applyEnvConfig()

	return config, nil
}

func attributeNames() []string {
	return []string{
		"bind_address", "port", "identity_url", "user_management_url",
		"permission_management_url", "role_management_url",
		"admin_permission_id", "api_resource_list_limit_max",
	}
}

func (c *Config) applyFileConfig(file *Config) {
	if file.BindAddress != "" {
		c.BindAddress = file.BindAddress
		c.sources["bind_address"] = "file"
	}
	if file.Port != "" {
		c.Port = file.Port
		c.sources["port"] = "file"
	}
	if file.IdentityURL != "" {
		c.IdentityURL = file.IdentityURL
		c.sources["identity_url"] = "file"
	}
	if file.UserManagementURL != "" {
		c.UserManagementURL = file.UserManagementURL
		c.sources["user_management_url"] = "file"
	}
	if file.PermissionManagementURL != "" {
		c.PermissionManagementURL = file.PermissionManagementURL
		c.sources["permission_management_url"] = "file"
	}
	if file.RoleManagementURL != "" {
		c.RoleManagementURL = file.RoleManagementURL
		c.sources["role_management_url"] = "file"
	}
	if file.AdminPermissionID != 0 {
		c.AdminPermissionID = file.AdminPermissionID
		c.sources["admin_permission_id"] = "file"
	}
	if file.APIResourceListLimitMax != 0 {
		c.APIResourceListLimitMax = file.APIResourceListLimitMax
		c.sources["api_resource_list_limit_max"] = "file"
	}
}

func (c *Config) applyEnvConfig() {
	if val := os.Getenv("TENAUTH_BIND_ADDRESS"); val != "" {
		c.BindAddress = val
		c.sources["bind_address"] = "environment"
	}
	if val := os.Getenv("PORT"); val != "" {
		c.Port = val
		c.sources["port"] = "environment"
	}
	if val := os.Getenv("TENAUTH_IDENTITY_URL"); val != "" {
		c.IdentityURL = val
		c.sources["identity_url"] = "environment"
	}
	if val := os.Getenv("TENAUTH_USER_MANAGEMENT_URL"); val != "" {
		c.UserManagementURL = val
		c.sources["user_management_url"] = "environment"
	}
	if val := os.Getenv("TENAUTH_PERMISSION_MANAGEMENT_URL"); val != "" {
		c.PermissionManagementURL = val
		c.sources["permission_management_url"] = "environment"
	}
	if val := os.Getenv("TENAUTH_ROLE_MANAGEMENT_URL"); val != "" {
		c.RoleManagementURL = val
		c.sources["role_management_url"] = "environment"
	}
	if val := os.Getenv("TENAUTH_ADMIN_PERMISSION_ID"); val != "" {
		if i, err := strconv.ParseInt(val, 10, 64); err == nil {
			c.AdminPermissionID = i
			c.sources["admin_permission_id"] = "environment"
		}
	}
	if val := os.Getenv("TENAUTH_API_RESOURCE_LIST_LIMIT_MAX"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.APIResourceListLimitMax = i
			c.sources["api_resource_list_limit_max"] = "environment"
		}
	}
}

// ConfigFilePath returns the path to the config file
func (c *Config) ConfigFilePath() string {
	return c.configFilePath
}

// Source returns the source of a configuration attribute
func (c *Config) Source(name string) string {
	if c.sources == nil {
		return "default"
	}
	if s, ok := c.sources[name]; ok {
		return s
	}
	return "default"
}

// Validate validates the configuration
func (c *Config) Validate() error {
	for name, raw := range map[string]string{
		"identity_url":              c.IdentityURL,
		"user_management_url":       c.UserManagementURL,
		"permission_management_url": c.PermissionManagementURL,
		"role_management_url":       c.RoleManagementURL,
	} {
		if raw == "" {
			continue
		}
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid %s value: %s", name, raw)
		}
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("invalid port value: %s", c.Port)
	}
	return nil
}

// Attributes returns all configuration attributes with their values and sources
func (c *Config) Attributes() []Attribute {
	return []Attribute{
		{Name: "bind_address", Value: c.BindAddress, Source: c.Source("bind_address")},
		{Name: "port", Value: c.Port, Source: c.Source("port")},
		{Name: "identity_url", Value: c.IdentityURL, Source: c.Source("identity_url")},
		{Name: "user_management_url", Value: c.UserManagementURL, Source: c.Source("user_management_url")},
		{Name: "permission_management_url", Value: c.PermissionManagementURL, Source: c.Source("permission_management_url")},
		{Name: "role_management_url", Value: c.RoleManagementURL, Source: c.Source("role_management_url")},
		{Name: "admin_permission_id", Value: strconv.FormatInt(c.AdminPermissionID, 10), Source: c.Source("admin_permission_id")},
		{Name: "api_resource_list_limit_max", Value: strconv.Itoa(c.APIResourceListLimitMax), Source: c.Source("api_resource_list_limit_max")},
	}
}

// FormatText returns a text representation of the configuration
func (c *Config) FormatText() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Config file: %s\n\n", c.configFilePath))
	sb.WriteString(fmt.Sprintf("%-40s %-40s %s\n", "NAME", "VALUE", "SOURCE"))
	sb.WriteString(fmt.Sprintf("%-40s %-40s %s\n", "----", "-----", "------"))

	for _, attr := range c.Attributes() {
		value := attr.Value
		if value == "" {
			value = "(not set)"
		}
		sb.WriteString(fmt.Sprintf("%-40s %-40s %s\n", attr.Name, value, attr.Source))
	}
	return sb.String()
}

// FormatJSON returns a JSON representation of the configuration
func (c *Config) FormatJSON() (string, error) {
	result := map[string]interface{}{
		"config_file": c.configFilePath,
		"attributes":  c.Attributes(),
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
