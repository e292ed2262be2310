// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"errors"
)

// ErrServerConfigNotObject is returned when server-config.json holds a JSON
// null instead of an object.
var ErrServerConfigNotObject = errors.New("server config must be a JSON object")

// ServerConfig is the parsed representation of server-config.json.
//
// Only the three keys below are mapped; any other key present in the file is
// ignored. Values are not range-checked: a document that decodes is accepted.
type ServerConfig struct {
	// Name is the human-readable server name shown in the startup banner.
	Name string `json:"name"`

	// Port is the UDP port the server is meant to listen on (19132 for a
	// default Bedrock install).
	Port int `json:"port"`

	// MaxPlayers is the configured player cap.
	MaxPlayers int `json:"maxPlayers"`
}

// UnmarshalJSON decodes an object into c. A null document is rejected rather
// than treated as a no-op, since it carries none of the required keys.
func (c *ServerConfig) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		return ErrServerConfigNotObject
	}

	type plain ServerConfig
	var decoded plain
	if err := json.Unmarshal(b, &decoded); err != nil {
		return err
	}

	*c = ServerConfig(decoded)
	return nil
}

// LoadedConfig holds both startup documents once they have been read and
// parsed. It is created by a successful load and passed by value to whatever
// needs it; nothing mutates it afterwards.
type LoadedConfig struct {
	Server      ServerConfig
	Permissions PermissionsDocument
}
