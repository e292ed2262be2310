// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the BEDROCK_* environment variables:
// BEDROCK_ROOT_DIR, BEDROCK_SERVER_CONFIG and BEDROCK_PERMISSIONS for the
// document locations, BEDROCK_LOG_LEVEL and BEDROCK_LOG_FORMAT for the
// logger. An unset or empty variable leaves its field empty, so the
// built-in default survives the merge. Values are checked later by
// [StructuredConfig.validate], not here.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting BEDROCK_* env configs: %w", err)
	}

	return nil
}
