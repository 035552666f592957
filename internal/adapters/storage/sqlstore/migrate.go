package sqlstore

import (
	"embed"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	sqlitemigrate "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/juju/errors"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationsFS embed.FS

// Migrate aplica las migraciones embebidas del dialecto. Sin cambios no es error.
//
// No se llama a (*migrate.Migrate).Close: cerraría también el *sql.DB compartido.
func Migrate(db *DB) error {
	var (
		dir    string
		driver database.Driver
		err    error
	)
	switch db.driver {
	case Postgres:
		dir = "migrations/postgres"
		driver, err = pgxmigrate.WithInstance(db.DB, &pgxmigrate.Config{})
	case SQLite:
		dir = "migrations/sqlite"
		driver, err = sqlitemigrate.WithInstance(db.DB, &sqlitemigrate.Config{})
	default:
		return errors.NotSupportedf("migrations for %q", db.driver)
	}
	if err != nil {
		return errors.Annotate(err, "migration driver")
	}

	src, err := iofs.New(migrationsFS, dir)
	if err != nil {
		return errors.Annotate(err, "migration source")
	}

	m, err := migrate.NewWithInstance("iofs", src, string(db.driver), driver)
	if err != nil {
		return errors.Annotate(err, "migrate instance")
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Annotate(err, "apply migrations")
	}
	return nil
}
