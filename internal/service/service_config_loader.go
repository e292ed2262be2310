// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/bedrock-server-manager/internal/logger"
	"github.com/MKhiriev/bedrock-server-manager/internal/store"
	"github.com/MKhiriev/bedrock-server-manager/models"
)

type configLoader struct {
	documentReader store.DocumentReader

	logger *logger.Logger
}

// NewConfigLoader constructs a [ConfigLoader] on top of documentReader.
func NewConfigLoader(documentReader store.DocumentReader, logger *logger.Logger) ConfigLoader {
	return &configLoader{
		documentReader: documentReader,
		logger:         logger,
	}
}

// Load reads server-config.json first and permissions.json second. There is
// no retry and no fallback to defaults: the first failure ends the load.
func (l *configLoader) Load(ctx context.Context) (models.LoadedConfig, error) {
	serverCfg, err := l.documentReader.ReadServerConfig(ctx)
	if err != nil {
		return models.LoadedConfig{}, &ConfigLoadError{
			Document: DocumentServerConfig,
			Path:     l.documentReader.ServerConfigPath(),
			Err:      err,
		}
	}

	permissions, err := l.documentReader.ReadPermissions(ctx)
	if err != nil {
		return models.LoadedConfig{}, &ConfigLoadError{
			Document: DocumentPermissions,
			Path:     l.documentReader.PermissionsPath(),
			Err:      err,
		}
	}

	l.logger.Debug().
		Str("server_name", serverCfg.Name).
		Int("permissions_bytes", len(permissions.Raw())).
		Msg("configuration files loaded")

	return models.LoadedConfig{
		Server:      serverCfg,
		Permissions: permissions,
	}, nil
}
