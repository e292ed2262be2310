// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// bedrock-server-manager startup path.
//
// Msg* constants are the human-readable log messages written at startup.
// Keeping them in one place ensures consistent wording between the
// reporter, the entry point and their tests.
package app

const (
	// MsgStartingServer announces the server by name; takes the name.
	MsgStartingServer = "Starting Minecraft Bedrock Server: %s"

	// MsgListeningOnPort names the configured port; takes the port.
	MsgListeningOnPort = "Listening on port: %d"

	// MsgMaxPlayers names the configured player cap; takes the count.
	MsgMaxPlayers = "Max players: %d"

	// MsgSettingUpPermissions is the static permissions setup notice.
	MsgSettingUpPermissions = "Setting up permissions..."

	// MsgConfigLoadFailed is the single diagnostic written to stderr when a
	// startup document cannot be read or parsed.
	MsgConfigLoadFailed = "Error loading configuration files"

	// MsgConfigsFailed is written when the bootstrap settings are invalid.
	MsgConfigsFailed = "error getting configs"
)
