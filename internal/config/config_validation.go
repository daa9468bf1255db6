// SPDX-License-Identifier: Apache-2.0

package config

import "strings"

// validate checks that the merged and defaulted [StructuredConfig] satisfies
// the invariants the client runtime relies on.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if !strings.HasPrefix(cfg.Adapter.HTTPAddress, "http://") &&
		!strings.HasPrefix(cfg.Adapter.HTTPAddress, "https://") {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Storage.DB.DSN == "" && cfg.Storage.Snapshots.Dir == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.ProbeInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
