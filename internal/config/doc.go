// Package config provides loading, merging, and validation of the bootstrap
// configuration of the server binary: where the install root is, where the
// two startup documents live under it, and how to log.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables (BEDROCK_*)
//  3. Command-line flags
//
// The main entry point is [GetStructuredConfig].
package config
