package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/PsyChonek/spajzka-client/internal/config"
	"github.com/PsyChonek/spajzka-client/internal/logger"
	"github.com/PsyChonek/spajzka-client/migrations"
)

// sqliteSnapshotStore keeps snapshots in a local SQLite database, one row per
// namespace.
type sqliteSnapshotStore struct {
	db     *sql.DB
	logger *logger.Logger
}

// NewSQLiteSnapshotStore opens (creating when needed) the snapshot database at
// cfg.DSN and migrates its schema.
func NewSQLiteSnapshotStore(ctx context.Context, cfg config.DB, log *logger.Logger) (SnapshotStore, error) {
	if err := createLocalDBFileIfNotExists(cfg.DSN); err != nil {
		log.Err(err).Str("func", "NewSQLiteSnapshotStore").Msg("error creating database file")
		return nil, fmt.Errorf("create snapshot database file: %w", err)
	}

	db, err := sql.Open("sqlite3", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open snapshot database: %w", err)
	}

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping snapshot database: %w", err)
	}

	if err = migrations.Migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate snapshot database: %w", err)
	}

	log.Debug().Str("func", "NewSQLiteSnapshotStore").Msg("connected to snapshot database")
	return &sqliteSnapshotStore{db: db, logger: log}, nil
}

func createLocalDBFileIfNotExists(dsn string) error {
	if dsn == "" || dsn == ":memory:" {
		return nil
	}

	if _, err := os.Stat(dsn); os.IsNotExist(err) {
		f, err := os.Create(dsn)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	return nil
}

func (s *sqliteSnapshotStore) Load(namespace string) ([]byte, error) {
	query, args, err := sq.Select("payload").
		From("snapshots").
		Where(sq.Eq{"namespace": namespace}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build snapshot select: %w", err)
	}

	var payload []byte
	err = s.db.QueryRow(query, args...).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query snapshot (namespace=%s): %w", namespace, err)
	}

	return payload, nil
}

func (s *sqliteSnapshotStore) Save(namespace string, data []byte) error {
	query, args, err := sq.Insert("snapshots").
		Columns("namespace", "payload", "updated_at").
		Values(namespace, data, time.Now().UTC()).
		Suffix("ON CONFLICT(namespace) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build snapshot upsert: %w", err)
	}

	if _, err = s.db.Exec(query, args...); err != nil {
		return fmt.Errorf("save snapshot (namespace=%s): %w", namespace, err)
	}

	return nil
}

func (s *sqliteSnapshotStore) Close() error {
	return s.db.Close()
}
