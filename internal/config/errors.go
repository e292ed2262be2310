package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when the merged
// configuration is incomplete or invalid.
var (
	// ErrInvalidFilesConfigs indicates a missing install root or document
	// path.
	ErrInvalidFilesConfigs = errors.New("invalid files configuration")
	// ErrInvalidLoggingConfigs indicates an unknown or too quiet log level,
	// or an unknown format.
	ErrInvalidLoggingConfigs = errors.New("invalid logging configuration")
)
