package store

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MKhiriev/bedrock-server-manager/internal/config"
	"github.com/MKhiriev/bedrock-server-manager/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newInstallRoot lays out an install root with the given document bodies.
// An empty body means the file is not created.
func newInstallRoot(t *testing.T, serverConfig, permissions string) config.Files {
	t.Helper()
	files := config.Files{
		RootDir:          t.TempDir(),
		ServerConfigPath: config.DefaultServerConfigPath,
		PermissionsPath:  config.DefaultPermissionsPath,
	}

	write := func(path, body string) {
		if body == "" {
			return
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	}
	write(files.ServerConfigFile(), serverConfig)
	write(files.PermissionsFile(), permissions)

	return files
}

func TestJSONFileReader_ReadServerConfig_Success(t *testing.T) {
	// Arrange
	files := newInstallRoot(t, `{"name": "Survival World", "port": 19132, "maxPlayers": 10, "motd": "ignored"}`, "")
	reader := NewJSONFileReader(files)

	// Act
	cfg, err := reader.ReadServerConfig(context.Background())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, models.ServerConfig{Name: "Survival World", Port: 19132, MaxPlayers: 10}, cfg)
}

func TestJSONFileReader_ReadServerConfig_MissingKeysAreZero(t *testing.T) {
	files := newInstallRoot(t, `{"name": "Creative"}`, "")

	cfg, err := NewJSONFileReader(files).ReadServerConfig(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Creative", cfg.Name)
	assert.Zero(t, cfg.Port)
	assert.Zero(t, cfg.MaxPlayers)
}

func TestJSONFileReader_ReadServerConfig_Errors(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectedErr error
	}{
		{name: "missing file", body: "", expectedErr: ErrReadDocument},
		{name: "trailing comma", body: `{"name": "x", "port": 1,}`, expectedErr: ErrDecodeDocument},
		{name: "unterminated string", body: `{"name": "x`, expectedErr: ErrDecodeDocument},
		{name: "trailing data", body: `{"name": "x"} {}`, expectedErr: ErrDecodeDocument},
		{name: "wrong type", body: `{"port": "19132"}`, expectedErr: ErrDecodeDocument},
		{name: "whitespace only", body: "  \n", expectedErr: ErrDecodeDocument},
		{name: "null root", body: "null", expectedErr: models.ErrServerConfigNotObject},
		{name: "array root", body: `[]`, expectedErr: ErrDecodeDocument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files := newInstallRoot(t, tt.body, "")

			cfg, err := NewJSONFileReader(files).ReadServerConfig(context.Background())

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.expectedErr)
			assert.Equal(t, models.ServerConfig{}, cfg)
		})
	}
}

func TestJSONFileReader_ReadServerConfig_MissingFileKeepsCause(t *testing.T) {
	files := newInstallRoot(t, "", "")

	_, err := NewJSONFileReader(files).ReadServerConfig(context.Background())

	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "server-config.json")
}

func TestJSONFileReader_ReadPermissions(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{name: "empty object", body: `{}`, expected: `{}`},
		{name: "nested object is compacted", body: "{\n  \"ops\": [\"Steve\"],\n  \"default\": \"member\"\n}", expected: `{"ops":["Steve"],"default":"member"}`},
		{name: "array root", body: `[1, 2]`, expected: `[1,2]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files := newInstallRoot(t, "", tt.body)

			doc, err := NewJSONFileReader(files).ReadPermissions(context.Background())

			require.NoError(t, err)
			assert.JSONEq(t, tt.expected, string(doc.Raw()))
			assert.Equal(t, tt.expected, string(doc.Raw()))
		})
	}
}

func TestJSONFileReader_ReadPermissions_Malformed(t *testing.T) {
	files := newInstallRoot(t, "", `{"ops": [}`)

	doc, err := NewJSONFileReader(files).ReadPermissions(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecodeDocument)
	assert.Nil(t, doc.Raw())

	var syntaxErr *json.SyntaxError
	assert.ErrorAs(t, err, &syntaxErr)
}

func TestJSONFileReader_CancelledContext(t *testing.T) {
	files := newInstallRoot(t, `{"name": "x"}`, `{}`)
	reader := NewJSONFileReader(files)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := reader.ReadServerConfig(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = reader.ReadPermissions(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewStorages_WiresDocumentReader(t *testing.T) {
	files := newInstallRoot(t, `{"name": "x"}`, `{}`)

	storages := NewStorages(files)

	require.NotNil(t, storages)
	require.NotNil(t, storages.DocumentReader)
	cfg, err := storages.DocumentReader.ReadServerConfig(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "x", cfg.Name)
}

func TestJSONFileReader_Paths(t *testing.T) {
	files := newInstallRoot(t, "", "")

	reader := NewJSONFileReader(files)

	assert.Equal(t, files.ServerConfigFile(), reader.ServerConfigPath())
	assert.Equal(t, files.PermissionsFile(), reader.PermissionsPath())
}

func TestJSONFileReader_LogsThroughContextLogger(t *testing.T) {
	files := newInstallRoot(t, `{"name": "x"}`, `{}`)
	var buf bytes.Buffer
	ctx := zerolog.New(&buf).Level(zerolog.DebugLevel).WithContext(context.Background())

	_, err := NewJSONFileReader(files).ReadServerConfig(ctx)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		assert.Equal(t, files.ServerConfigFile(), entry["path"])
	}
	assert.Contains(t, lines[0], `"bytes":13`)
	assert.Contains(t, lines[1], "json document decoded")
}
