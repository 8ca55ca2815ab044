// Package migrations embeds the relational character schema and applies it
// with golang-migrate
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5" // registers pgx5://
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	herr "github.com/KirkDiggler/herald-bot/internal/errors"
)

//go:embed postgres/*.sql
var postgresFS embed.FS

//go:embed sqlite/*.sql
var sqliteFS embed.FS

// Status is the schema state after a run
type Status struct {
	Version uint
	Dirty   bool
	// Changed is false when the schema was already current
	Changed bool
}

// UpPostgres applies every pending migration to the database at databaseURL
func UpPostgres(databaseURL string) (*Status, error) {
	src, err := iofs.New(postgresFS, "postgres")
	if err != nil {
		return nil, herr.Wrap(err, "open embedded postgres migrations")
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, pgx5URL(databaseURL))
	if err != nil {
		return nil, herr.WrapWithCode(err, herr.CodeUnavailable, "create postgres migrator")
	}
	defer m.Close()

	return run(m)
}

// UpSQLite applies every pending migration through an open SQLite handle.
// The handle stays open.
func UpSQLite(db *sql.DB) (*Status, error) {
	src, err := iofs.New(sqliteFS, "sqlite")
	if err != nil {
		return nil, herr.Wrap(err, "open embedded sqlite migrations")
	}

	driver, err := sqlite.WithInstance(db, &sqlite.Config{})
	if err != nil {
		return nil, herr.Wrap(err, "create sqlite migration driver")
	}

	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return nil, herr.Wrap(err, "create sqlite migrator")
	}
	// m.Close would close db along with the driver

	return run(m)
}

func run(m *migrate.Migrate) (*Status, error) {
	err := m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return nil, herr.Wrap(err, "apply migrations")
	}

	version, dirty, verr := m.Version()
	if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
		return nil, herr.Wrap(verr, "read migration version")
	}

	return &Status{Version: version, Dirty: dirty, Changed: err == nil}, nil
}

// pgx5URL rewrites a postgres:// URL to the scheme the pgx/v5 driver registers
func pgx5URL(databaseURL string) string {
	for _, prefix := range []string{"postgresql://", "postgres://"} {
		if rest, ok := strings.CutPrefix(databaseURL, prefix); ok {
			return "pgx5://" + rest
		}
	}
	return databaseURL
}
