// SPDX-License-Identifier: Apache-2.0

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_DEVICE_ID": "device-42",

		"ADAPTER_ADDRESS":         "http://localhost:8080",
		"ADAPTER_REQUEST_TIMEOUT": "30s",

		// Storage has nested prefixes: STORAGE_ + DB_ / SNAPSHOTS_
		"STORAGE_DB_DATABASE_URI": "file:spajzka.db",
		"STORAGE_SNAPSHOTS_DIR":   "/var/spajzka",

		"WORKERS_PROBE_INTERVAL": "10s",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "device-42", cfg.App.DeviceID)
	assert.Equal(t, "http://localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "file:spajzka.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/var/spajzka", cfg.Storage.Snapshots.Dir)
	assert.Equal(t, 10*time.Second, cfg.Workers.ProbeInterval)
}

func TestParseEnv_EmptyEnvironment(t *testing.T) {
	for _, k := range []string{
		"CONFIG", "APP_DEVICE_ID", "ADAPTER_ADDRESS", "ADAPTER_REQUEST_TIMEOUT",
		"STORAGE_DB_DATABASE_URI", "STORAGE_SNAPSHOTS_DIR", "WORKERS_PROBE_INTERVAL",
	} {
		t.Setenv(k, "")
	}

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"ADAPTER_REQUEST_TIMEOUT": "not-a-duration",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
}
