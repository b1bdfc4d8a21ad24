package storage

import (
	"database/sql"
	"os"
	"path/filepath"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	// sqlite driver
	_ "modernc.org/sqlite"
)

const sqliteDriver = "sqlite"

func NewSQLiteStorage(path string) (*SQLStorage, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrap(err, "create db directory")
	}

	db, err := sql.Open(sqliteDriver, path)
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite database")
	}
	// one writer at a time
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "ping database")
	}
	if err = runMigrations(sqliteDriver, path); err != nil {
		db.Close()
		return nil, err
	}
	return newSQLStorage(db, sq.Question), nil
}
