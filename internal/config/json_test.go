// SPDX-License-Identifier: Apache-2.0

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_AllFields(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"device_id": "json-device"},
		"adapter": map[string]any{
			"http_address":    "http://json-host:8080",
			"request_timeout": "25s",
		},
		"storage": map[string]any{
			"db":        map[string]any{"dsn": "file:json.db"},
			"snapshots": map[string]any{"dir": "/tmp/json-snapshots"},
		},
		"workers": map[string]any{"probe_interval": "2m"},
	})

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "json-device", cfg.App.DeviceID)
	assert.Equal(t, "http://json-host:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 25*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "file:json.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/tmp/json-snapshots", cfg.Storage.Snapshots.Dir)
	assert.Equal(t, 2*time.Minute, cfg.Workers.ProbeInterval)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON("/nonexistent/config.json")
	require.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{name: "string duration", input: `"1h"`, expected: time.Hour},
		{name: "numeric nanoseconds", input: `1000000000`, expected: time.Second},
		{name: "invalid string", input: `"later"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalJSON([]byte(tt.input))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, time.Duration(d))
		})
	}
}
