package service

import (
	"context"

	"github.com/MKhiriev/bedrock-server-manager/models"
)

// ConfigLoader reads both startup documents and returns them as one value.
type ConfigLoader interface {
	// Load returns the loaded documents, or a *ConfigLoadError on the first
	// read or parse failure. No partial result is returned.
	Load(ctx context.Context) (models.LoadedConfig, error)
}

// StartupReporter emits the informational startup lines derived from the
// loaded documents.
type StartupReporter interface {
	Report(loaded models.LoadedConfig)
	ReportServer(cfg models.ServerConfig)
	ReportPermissions(doc models.PermissionsDocument)
	ReportBuildInfo(info models.AppBuildInfo)
}
