// SPDX-License-Identifier: Apache-2.0

package client

import "context"

// Syncable is the slice of a resource store the runtime drives: bulk resync
// on group changes and pending-change replay on reconnect.
type Syncable interface {
	// FetchAll refreshes the store's collection from the server.
	FetchAll(ctx context.Context)

	// SyncPendingChanges replays the store's queued offline mutations.
	SyncPendingChanges(ctx context.Context)
}
