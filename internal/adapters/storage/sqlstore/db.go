package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/juju/errors"
	_ "modernc.org/sqlite"
)

// Driver es el nombre con el que database/sql registra cada driver.
type Driver string

const (
	Postgres Driver = "pgx"
	SQLite   Driver = "sqlite"
)

// ParseDriver acepta los alias de config (postgres, pgx, sqlite, sqlite3).
func ParseDriver(s string) (Driver, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "postgres", "postgresql", "pgx":
		return Postgres, nil
	case "sqlite", "sqlite3":
		return SQLite, nil
	default:
		return "", errors.NotSupportedf("db driver %q", s)
	}
}

// DB junta el pool con el dialecto, que los repos necesitan para los placeholders.
type DB struct {
	*sql.DB
	driver Driver
}

func (d *DB) Driver() Driver { return d.driver }

// Open abre el pool, verifica la conexión y aplica las migraciones pendientes.
func Open(ctx context.Context, driver Driver, dsn string) (*DB, error) {
	if driver == SQLite {
		dsn = sqliteDSN(dsn)
	}

	db, err := sql.Open(string(driver), dsn)
	if err != nil {
		return nil, errors.Annotatef(err, "open %s", driver)
	}

	switch driver {
	case SQLite:
		// un solo writer; evita SQLITE_BUSY entre transacciones del mismo proceso
		db.SetMaxOpenConns(1)
	default:
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)
		db.SetConnMaxIdleTime(5 * time.Minute)
		db.SetConnMaxLifetime(30 * time.Minute)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, errors.Annotatef(err, "ping %s", driver)
	}

	out := &DB{DB: db, driver: driver}
	if err := Migrate(out); err != nil {
		_ = db.Close()
		return nil, err
	}
	return out, nil
}

// sqliteDSN acepta un path suelto y le agrega los pragmas que usamos.
func sqliteDSN(dsn string) string {
	if strings.HasPrefix(dsn, "file:") {
		return dsn
	}
	return fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", dsn)
}

// rebind pasa los placeholders "?" a "$n" en Postgres.
func (d *DB) rebind(query string) string {
	if d.driver != Postgres {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			fmt.Fprintf(&b, "$%d", n)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// placeholders devuelve "?, ?, ?" para cláusulas IN.
func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}
