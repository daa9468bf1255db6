package store

import (
	"context"
	"fmt"

	"github.com/PsyChonek/spajzka-client/internal/config"
	"github.com/PsyChonek/spajzka-client/internal/logger"
)

// ClientStorages bundles the local persistence backends of the client.
type ClientStorages struct {
	Snapshots SnapshotStore
}

// NewClientStorages picks the snapshot backend from the storage configuration:
// a SQLite database when a DSN is configured, per-namespace JSON files
// otherwise.
func NewClientStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*ClientStorages, error) {
	if cfg.DB.DSN != "" {
		snapshots, err := NewSQLiteSnapshotStore(ctx, cfg.DB, log)
		if err != nil {
			return nil, fmt.Errorf("create sqlite snapshot store: %w", err)
		}
		return &ClientStorages{Snapshots: snapshots}, nil
	}

	return &ClientStorages{Snapshots: NewFileSnapshotStore(cfg.Snapshots.Dir)}, nil
}

// Close releases the underlying storage.
func (s *ClientStorages) Close() error {
	return s.Snapshots.Close()
}
