package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerConfig_JSONKeys(t *testing.T) {
	var cfg ServerConfig

	require.NoError(t, json.Unmarshal([]byte(`{"name": "Survival World", "port": 19132, "maxPlayers": 10, "difficulty": "hard"}`), &cfg))

	assert.Equal(t, ServerConfig{Name: "Survival World", Port: 19132, MaxPlayers: 10}, cfg)
}

func TestServerConfig_RoundTrip(t *testing.T) {
	original := ServerConfig{Name: "Creative", Port: 19133, MaxPlayers: 0}

	b, err := json.Marshal(original)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name": "Creative", "port": 19133, "maxPlayers": 0}`, string(b))

	var decoded ServerConfig
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, original, decoded)
}

func TestServerConfig_WrongTypeFails(t *testing.T) {
	var cfg ServerConfig

	err := json.Unmarshal([]byte(`{"maxPlayers": "ten"}`), &cfg)

	var typeErr *json.UnmarshalTypeError
	assert.ErrorAs(t, err, &typeErr)
}

func TestServerConfig_NullRejected(t *testing.T) {
	cfg := ServerConfig{Name: "kept"}

	err := json.Unmarshal([]byte(" null "), &cfg)

	require.ErrorIs(t, err, ErrServerConfigNotObject)
	assert.Equal(t, "kept", cfg.Name, "target is left untouched")
}

func TestServerConfig_NonObjectRootFails(t *testing.T) {
	for _, body := range []string{`[]`, `"Survival World"`, `19132`, `true`} {
		var cfg ServerConfig

		err := json.Unmarshal([]byte(body), &cfg)

		var typeErr *json.UnmarshalTypeError
		assert.ErrorAs(t, err, &typeErr, body)
	}
}

func TestServerConfig_FractionalPortFails(t *testing.T) {
	var cfg ServerConfig

	err := json.Unmarshal([]byte(`{"name": "x", "port": 19132.0}`), &cfg)

	var typeErr *json.UnmarshalTypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "port", typeErr.Field)
}
