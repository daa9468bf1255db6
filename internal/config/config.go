// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"

	"github.com/google/uuid"
)

// StructuredConfig is the top-level configuration for the Spajzka client. It
// is populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Adapter holds network settings for the Spajzka REST backend.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds settings for the local replica/ledger persistence.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds background worker settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file. When
	// non-empty, the file is parsed and merged on top of the values already
	// loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level client settings.
type App struct {
	// DeviceID identifies this client installation in logs and requests.
	// Generated once per process when left empty.
	// Env: APP_DEVICE_ID
	DeviceID string `env:"DEVICE_ID"`
}

// Adapter holds network settings used by the client transport layer.
type Adapter struct {
	// HTTPAddress is the base URL of the Spajzka REST backend
	// (e.g. "http://localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the default timeout for outbound requests.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DB contains local database settings for the snapshot cache.
type DB struct {
	// DSN is the SQLite connection string for the local snapshot database.
	// When empty, snapshots are kept in per-namespace JSON files instead.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Snapshots contains file-based snapshot storage settings.
type Snapshots struct {
	// Dir is the directory holding per-namespace snapshot files. Used only
	// when no database DSN is configured.
	// Env: STORAGE_SNAPSHOTS_DIR
	Dir string `env:"DIR"`
}

// Storage groups local persistence settings.
type Storage struct {
	// DB holds local database settings.
	DB DB `envPrefix:"DB_"`

	// Snapshots holds file snapshot settings.
	Snapshots Snapshots `envPrefix:"SNAPSHOTS_"`
}

// Workers contains background worker settings.
type Workers struct {
	// ProbeInterval defines how often the connectivity monitor probes the
	// backend.
	// Env: WORKERS_PROBE_INTERVAL
	ProbeInterval time.Duration `env:"PROBE_INTERVAL"`
}

// Defaults applied by GetClientConfig when the merged configuration leaves a
// field empty.
const (
	DefaultHTTPAddress    = "http://localhost:8080"
	DefaultRequestTimeout = 15 * time.Second
	DefaultProbeInterval  = 30 * time.Second
	DefaultSnapshotDir    = "spajzka-data"
)

// GetClientConfig builds the client configuration by merging environment
// variables, command-line flags, and an optional JSON file (env wins over
// flags, flags win over the file), then fills defaults and validates the
// result.
func GetClientConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return cfg, cfg.validate()
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.DeviceID == "" {
		cfg.App.DeviceID = uuid.NewString()
	}
	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Workers.ProbeInterval <= 0 {
		cfg.Workers.ProbeInterval = DefaultProbeInterval
	}
	if cfg.Storage.DB.DSN == "" && cfg.Storage.Snapshots.Dir == "" {
		cfg.Storage.Snapshots.Dir = DefaultSnapshotDir
	}
}
