package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PsyChonek/spajzka-client/internal/config"
	"github.com/PsyChonek/spajzka-client/internal/logger"
)

func newSQLiteStore(t *testing.T) SnapshotStore {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "snapshots.db")

	s, err := NewSQLiteSnapshotStore(context.Background(), config.DB{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLiteSnapshotStore_SaveAndLoad(t *testing.T) {
	s := newSQLiteStore(t)

	require.NoError(t, s.Save("pantry.replica", []byte(`{"records":[]}`)))

	data, err := s.Load("pantry.replica")
	require.NoError(t, err)
	assert.JSONEq(t, `{"records":[]}`, string(data))
}

func TestSQLiteSnapshotStore_LoadMissing(t *testing.T) {
	s := newSQLiteStore(t)

	data, err := s.Load("never.saved")
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestSQLiteSnapshotStore_SaveUpserts(t *testing.T) {
	s := newSQLiteStore(t)

	require.NoError(t, s.Save("ns", []byte("first")))
	require.NoError(t, s.Save("ns", []byte("second")))

	data, err := s.Load("ns")
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

// ── error paths via sqlmock ──────────────────────────────────────────────────

func TestSQLiteSnapshotStore_LoadQueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT payload FROM snapshots`).
		WithArgs("pantry.replica").
		WillReturnError(assert.AnError)

	s := &sqliteSnapshotStore{db: db, logger: logger.Nop()}
	_, err = s.Load("pantry.replica")

	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteSnapshotStore_SaveExecError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO snapshots`).
		WillReturnError(assert.AnError)

	s := &sqliteSnapshotStore{db: db, logger: logger.Nop()}
	err = s.Save("pantry.replica", []byte("x"))

	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── storage selection ────────────────────────────────────────────────────────

func TestNewClientStorages_FileBackend(t *testing.T) {
	storages, err := NewClientStorages(context.Background(),
		config.Storage{Snapshots: config.Snapshots{Dir: t.TempDir()}}, logger.Nop())
	require.NoError(t, err)
	defer storages.Close()

	require.NoError(t, storages.Snapshots.Save("ns", []byte("x")))
}

func TestNewClientStorages_SQLiteBackend(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "spajzka.db")

	storages, err := NewClientStorages(context.Background(),
		config.Storage{DB: config.DB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	defer storages.Close()

	require.NoError(t, storages.Snapshots.Save("ns", []byte("x")))
	data, err := storages.Snapshots.Load("ns")
	require.NoError(t, err)
	assert.Equal(t, "x", string(data))
}
