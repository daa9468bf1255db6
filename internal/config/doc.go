// SPDX-License-Identifier: Apache-2.0

// Package config assembles the Spajzka client configuration from environment
// variables, command-line flags, and an optional JSON file.
//
// The three sources are merged with mergo in priority order (environment,
// flags, file), missing values are filled with sensible defaults, and the
// result is validated before use. [GetClientConfig] is the single entry point.
package config
