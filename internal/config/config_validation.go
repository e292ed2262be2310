// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] can be used at
// startup. It does not touch the file system: whether the documents exist is
// for the loader to find out.
func (cfg *StructuredConfig) validate() error {
	if cfg.Files.RootDir == "" || cfg.Files.ServerConfigPath == "" || cfg.Files.PermissionsPath == "" {
		return ErrInvalidFilesConfigs
	}

	if !isAllowedLogLevel(strings.ToLower(cfg.Logging.Level)) {
		return fmt.Errorf("%w: level %q", ErrInvalidLoggingConfigs, cfg.Logging.Level)
	}

	if !isKnownLogFormat(strings.ToLower(cfg.Logging.Format)) {
		return fmt.Errorf("%w: format %q", ErrInvalidLoggingConfigs, cfg.Logging.Format)
	}

	return nil
}

// isAllowedLogLevel accepts trace, debug and info. Anything above info would
// hide the startup lines and the load-failure diagnostic.
func isAllowedLogLevel(name string) bool {
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return false
	}

	return level >= zerolog.TraceLevel && level <= zerolog.InfoLevel
}
