package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// fileSnapshotStore keeps one JSON file per namespace under a data directory.
type fileSnapshotStore struct {
	dir string
}

// NewFileSnapshotStore builds a [SnapshotStore] writing per-namespace files
// under dir. The directory is created lazily on the first save.
func NewFileSnapshotStore(dir string) SnapshotStore {
	return &fileSnapshotStore{dir: dir}
}

func (s *fileSnapshotStore) path(namespace string) string {
	return filepath.Join(s.dir, namespace+".json")
}

func (s *fileSnapshotStore) Load(namespace string) ([]byte, error) {
	data, err := os.ReadFile(s.path(namespace))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read snapshot file: %w", err)
	}
	return data, nil
}

func (s *fileSnapshotStore) Save(namespace string, data []byte) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}
	if err := os.WriteFile(s.path(namespace), data, 0o600); err != nil {
		return fmt.Errorf("write snapshot file: %w", err)
	}
	return nil
}

func (s *fileSnapshotStore) Close() error {
	return nil
}
