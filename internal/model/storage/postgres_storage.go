package storage

import (
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	// postgres driver
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
)

const (
	postgresDriver = "postgres"
	dsnTemplate    = "user=%s password=%s host=%s dbname=%s sslmode=%s"
)

type postgresConfig interface {
	Host() string
	Username() string
	Password() string
	Database() string
	SSLMode() string
}

func NewPostgresStorage(config postgresConfig) (*SQLStorage, error) {
	dsn := fmt.Sprintf(dsnTemplate,
		config.Username(),
		config.Password(),
		config.Host(),
		config.Database(),
		config.SSLMode())

	db, err := sql.Open(postgresDriver, dsn)
	if err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	if err = runMigrations(postgresDriver, dsn); err != nil {
		db.Close()
		return nil, err
	}
	return newSQLStorage(db, sq.Dollar), nil
}
