package storage

import (
	"database/sql"
	"embed"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/pkg/errors"
)

//go:embed migrations
var migrationsFS embed.FS

// runMigrations opens its own connection, since closing a migrate instance
// closes the database handle it was given.
func runMigrations(driverName, dsn string) error {
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return errors.Wrap(err, "open migration database")
	}
	defer db.Close()

	var driver database.Driver
	switch driverName {
	case postgresDriver:
		driver, err = postgres.WithInstance(db, &postgres.Config{})
	case sqliteDriver:
		driver, err = sqlite.WithInstance(db, &sqlite.Config{})
	default:
		return errors.Errorf("no migrations for driver %s", driverName)
	}
	if err != nil {
		return errors.Wrap(err, "create migration driver")
	}

	src, err := iofs.New(migrationsFS, "migrations/"+driverName)
	if err != nil {
		return errors.Wrap(err, "create iofs source")
	}

	m, err := migrate.NewWithInstance("iofs", src, driverName, driver)
	if err != nil {
		return errors.Wrap(err, "create migrate instance")
	}
	defer m.Close()

	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "run migrations")
	}
	return nil
}
