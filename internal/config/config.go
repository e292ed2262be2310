// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "path/filepath"

// Default locations of the startup documents, relative to the install root.
const (
	DefaultRootDir          = "."
	DefaultServerConfigPath = "config/server-config.json"
	DefaultPermissionsPath  = "permissions/permissions.json"

	DefaultLogLevel  = "info"
	DefaultLogFormat = LogFormatJSON
)

// Supported values of [Logging.Format].
const (
	LogFormatJSON    = "json"
	LogFormatConsole = "console"
)

// StructuredConfig is the bootstrap configuration of the server binary. It
// tells the process where the startup documents live and how to log; it is
// not the server configuration itself, which is read from
// server-config.json by the loader.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Files locates server-config.json and permissions.json.
	Files Files `envPrefix:"BEDROCK_"`

	// Logging controls the level and encoding of the process logger.
	Logging Logging `envPrefix:"BEDROCK_LOG_"`
}

// Files holds the install root and the locations of both startup documents.
type Files struct {
	// RootDir is the install root. Relative document paths are resolved
	// against it.
	// Env: BEDROCK_ROOT_DIR
	RootDir string `env:"ROOT_DIR"`

	// ServerConfigPath is the location of server-config.json.
	// Env: BEDROCK_SERVER_CONFIG
	ServerConfigPath string `env:"SERVER_CONFIG"`

	// PermissionsPath is the location of permissions.json.
	// Env: BEDROCK_PERMISSIONS
	PermissionsPath string `env:"PERMISSIONS"`
}

// Logging holds logger settings.
type Logging struct {
	// Level is a zerolog level name, one of trace, debug or info.
	// Env: BEDROCK_LOG_LEVEL
	Level string `env:"LEVEL"`

	// Format is either "json" or "console".
	// Env: BEDROCK_LOG_FORMAT
	Format string `env:"FORMAT"`
}

// ServerConfigFile returns the resolved path of server-config.json.
func (f Files) ServerConfigFile() string {
	return f.resolve(f.ServerConfigPath)
}

// PermissionsFile returns the resolved path of permissions.json.
func (f Files) PermissionsFile() string {
	return f.resolve(f.PermissionsPath)
}

func (f Files) resolve(p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}

	return filepath.Join(f.RootDir, p)
}

// GetStructuredConfig loads, merges, and validates the bootstrap
// configuration in the following priority order (last source wins for
// non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags parsed from args
//
// Returns a fully populated *StructuredConfig, or an error if a source fails
// to parse or the merged result is invalid. When args ask for usage the
// returned error wraps [flag.ErrHelp].
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		build()
}
