// SPDX-License-Identifier: Apache-2.0

package config

import (
	"flag"
	"time"
)

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a server base URL, e.g. http://localhost:8080
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-d local snapshot database DSN (SQLite)
//	-snapshot-dir directory for file-based snapshots
//	-probe-interval connectivity probe interval (e.g., "30s")
//	-device-id client installation identifier
//	-c/-config json file path with configs
func parseFlags(args []string) *StructuredConfig {
	var serverAddress string
	var requestTimeout time.Duration
	var databaseDSN string
	var snapshotDir string
	var probeInterval time.Duration
	var deviceID string
	var jsonConfigPath string

	fs := flag.NewFlagSet("spajzka", flag.ExitOnError)
	fs.StringVar(&serverAddress, "a", "", "Server base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&databaseDSN, "d", "", "Local snapshot database DSN")
	fs.StringVar(&snapshotDir, "snapshot-dir", "", "Snapshot files directory")
	fs.DurationVar(&probeInterval, "probe-interval", 0, "Connectivity probe interval (e.g., 30s)")
	fs.StringVar(&deviceID, "device-id", "", "Client installation identifier")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	_ = fs.Parse(args)

	return &StructuredConfig{
		App: App{
			DeviceID: deviceID,
		},
		Adapter: Adapter{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Snapshots: Snapshots{
				Dir: snapshotDir,
			},
		},
		Workers:      Workers{ProbeInterval: probeInterval},
		JSONFilePath: jsonConfigPath,
	}
}
