package archive

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/entolab/bugtally/internal/contract"
	"github.com/entolab/bugtally/schema"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*/*.sql
var migrationsFS embed.FS

// MigrateArchive runs database migrations for the run archive.
// - If targetVersion < 0, it migrates to the latest version.
// - If targetVersion == 0, it rolls back all migrations (to initial state).
// - If targetVersion > 0, it migrates to the specified version.
func MigrateArchive(backend schema.StoreBackend, connStr string, targetVersion int) error {
	if backend == schema.NoneBackend {
		return fmt.Errorf("migrations are not supported for NoneBackend")
	}

	db, err := openMigrationDB(backend, connStr)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	m, err := newMigrator(backend, db)
	if err != nil {
		return err
	}

	currentVersion, dirty, err := m.Version()
	if err != nil && err != migrate.ErrNilVersion {
		return fmt.Errorf("failed to get current migration version: %w", err)
	}
	if dirty {
		return fmt.Errorf("database is in a dirty state at version %d. Please fix manually or force version", currentVersion)
	}

	return applyMigrationTarget(m, currentVersion, targetVersion)
}

// openMigrationDB opens a plain database/sql handle for the backend.
// SQLite treats the connection string as the database path and falls
// back to the default archive location.
func openMigrationDB(backend schema.StoreBackend, connStr string) (*sql.DB, error) {
	var driverName, dsn string

	switch backend {
	case schema.SQLiteBackend:
		driverName = "sqlite"
		dsn = connStr
		if dsn == "" {
			dsn = contract.GetArchiveDBFilePath()
		}
	case schema.MySQLBackend:
		driverName = "mysql"
		dsn = connStr
	case schema.PostgreSQLBackend:
		driverName = "pgx"
		dsn = connStr
	default:
		return nil, fmt.Errorf("unsupported backend: %s", backend)
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", backend, err)
	}
	return db, nil
}

// newMigrator builds a migrate instance for the backend. Each backend has
// its own SQL dialect, so each one also has its own migration directory
// inside the embedded FS.
func newMigrator(backend schema.StoreBackend, db *sql.DB) (*migrate.Migrate, error) {
	var driver database.Driver
	var dialectDir string
	var err error

	switch backend {
	case schema.SQLiteBackend:
		dialectDir = "sqlite"
		driver, err = sqlite.WithInstance(db, &sqlite.Config{})
	case schema.MySQLBackend:
		dialectDir = "mysql"
		driver, err = mysql.WithInstance(db, &mysql.Config{})
	case schema.PostgreSQLBackend:
		dialectDir = "postgres"
		driver, err = postgres.WithInstance(db, &postgres.Config{})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create %s migrate driver: %w", backend, err)
	}

	migrationFS, err := fs.Sub(migrationsFS, "migrations/"+dialectDir)
	if err != nil {
		return nil, fmt.Errorf("failed to access migrations directory: %w", err)
	}
	sourceDriver, err := iofs.New(migrationFS, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to create migration source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, "bugtally", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	return m, nil
}

// applyMigrationTarget moves the schema to the requested version and
// reports what happened. migrate.ErrNoChange is a no-op, not a failure.
func applyMigrationTarget(m *migrate.Migrate, currentVersion uint, targetVersion int) error {
	var err error
	var action string

	switch {
	case targetVersion < 0:
		action = "migrate to latest version"
		err = m.Up()
	case targetVersion == 0:
		action = "roll back to version 0"
		err = m.Down()
	default:
		action = fmt.Sprintf("migrate to version %d", targetVersion)
		err = m.Migrate(uint(targetVersion))
	}

	if err == migrate.ErrNoChange {
		fmt.Printf("Archive schema unchanged at version %d.\n", currentVersion)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to %s: %w", action, err)
	}

	newVersion, _, _ := m.Version()
	fmt.Printf("Archive schema migrated: version %d -> %d\n", currentVersion, newVersion)
	return nil
}
