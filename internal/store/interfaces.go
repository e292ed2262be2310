//go:generate mockgen -source=interfaces.go -destination=../mock/document_reader_mock.go -package=mock

package store

import (
	"context"

	"github.com/MKhiriev/bedrock-server-manager/models"
)

// DocumentReader reads the two startup documents from wherever they are kept.
type DocumentReader interface {
	// ReadServerConfig reads and parses server-config.json.
	ReadServerConfig(ctx context.Context) (models.ServerConfig, error)
	// ReadPermissions reads and parses permissions.json.
	ReadPermissions(ctx context.Context) (models.PermissionsDocument, error)

	// ServerConfigPath returns the resolved location of server-config.json.
	ServerConfigPath() string
	// PermissionsPath returns the resolved location of permissions.json.
	PermissionsPath() string
}
