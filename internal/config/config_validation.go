// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The merged container itself is permissive: each binary validates only the
// projected view it actually consumes ([ClientConfig.validate],
// [StubServerConfig.validate]), so a client does not fail on stub-only
// settings and vice versa.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.BaseURL == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.App.UserID <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Workers.RefreshInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Connectivity.ProbeInterval <= 0 || cfg.Connectivity.ProbeTimeout <= 0 {
		return ErrInvalidConnectivityConfigs
	}

	return nil
}

func (cfg *StubServerConfig) validate() error {
	if cfg.HTTPAddress == "" || cfg.PageSize <= 0 {
		return ErrInvalidStubServerConfigs
	}

	return nil
}
