// Package store holds the client's local view of server state: one replica
// per resource type, the pending-change ledger, and the snapshot persistence
// backing both across restarts.
//
// Persistence is deliberately best-effort: replica and ledger mutations are
// applied in memory first and snapshot write failures are logged and
// swallowed, never propagated to the caller.
package store

//go:generate mockgen -source=interfaces.go -destination=../mock/snapshot_store_mock.go -package=mock

// SnapshotStore persists opaque per-namespace payloads across process
// restarts. Namespaces follow the "<resource>.replica" / "<resource>.ledger"
// convention.
type SnapshotStore interface {
	// Load returns the last saved payload for the namespace, or (nil, nil)
	// when nothing has been saved yet.
	Load(namespace string) ([]byte, error)

	// Save overwrites the payload stored for the namespace.
	Save(namespace string, data []byte) error

	// Close releases the underlying storage.
	Close() error
}
