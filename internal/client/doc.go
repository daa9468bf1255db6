// SPDX-License-Identifier: Apache-2.0

// Package client implements the client application runtime.
//
// It wires the resource stores, the events bus, and the background
// connectivity monitor into a single process lifecycle.
package client
