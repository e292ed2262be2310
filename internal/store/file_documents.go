// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/MKhiriev/bedrock-server-manager/internal/config"
	"github.com/MKhiriev/bedrock-server-manager/internal/logger"
	"github.com/MKhiriev/bedrock-server-manager/models"
	"github.com/rs/zerolog"
)

// jsonFileReader is the default implementation of [DocumentReader]. It reads
// each document from a flat JSON file on the local file system, the whole
// file at once, on every call. Nothing is cached.
type jsonFileReader struct {
	serverConfigPath string
	permissionsPath  string
}

// NewJSONFileReader constructs a [DocumentReader] for the document paths
// resolved from files.
func NewJSONFileReader(files config.Files) DocumentReader {
	return &jsonFileReader{
		serverConfigPath: files.ServerConfigFile(),
		permissionsPath:  files.PermissionsFile(),
	}
}

func (r *jsonFileReader) ServerConfigPath() string {
	return r.serverConfigPath
}

func (r *jsonFileReader) PermissionsPath() string {
	return r.permissionsPath
}

func (r *jsonFileReader) ReadServerConfig(ctx context.Context) (models.ServerConfig, error) {
	var cfg models.ServerConfig
	if err := readJSONFile(ctx, r.serverConfigPath, &cfg); err != nil {
		return models.ServerConfig{}, err
	}

	return cfg, nil
}

func (r *jsonFileReader) ReadPermissions(ctx context.Context) (models.PermissionsDocument, error) {
	var doc models.PermissionsDocument
	if err := readJSONFile(ctx, r.permissionsPath, &doc); err != nil {
		return models.PermissionsDocument{}, err
	}

	return doc, nil
}

// readJSONFile reads path and unmarshals the whole content into dst.
// Trailing data after the first JSON value is rejected. Progress is logged
// at debug level through the logger attached to ctx.
func readJSONFile(ctx context.Context, path string, dst any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	log := logger.FromContext(ctx).GetChildLogger()
	log.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("path", path)
	})

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadDocument, err)
	}
	log.Debug().Int("bytes", len(data)).Msg("json document read")

	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("%w %s: %w", ErrDecodeDocument, path, err)
	}
	log.Debug().Msg("json document decoded")

	return nil
}
