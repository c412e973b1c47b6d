package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/mentorly/internal/db"
	"github.com/yigit/mentorly/internal/pkg/helpers"
)

//go:embed sql/*.sql
var embedded embed.FS

// Files returns the SQL migrations shipped with the binary
func Files() fs.FS {
	sub, err := fs.Sub(embedded, "sql")
	if err != nil {
		panic(err)
	}
	return sub
}

const createTrackingTableSQL = `
CREATE TABLE IF NOT EXISTS schema_migrations (
	version VARCHAR(255) PRIMARY KEY,
	applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`

// Migrator applies versioned SQL files in lexical order
type Migrator struct {
	db     db.DB
	files  fs.FS
	logger zerolog.Logger
}

// NewMigrator creates a new migrator over a directory of NNN_name.sql files
func NewMigrator(database db.DB, files fs.FS, lgr zerolog.Logger) *Migrator {
	return &Migrator{
		db:     database,
		files:  files,
		logger: lgr,
	}
}

// ensureMigrationTableExists creates the migration tracking table if it doesn't exist
func (m *Migrator) ensureMigrationTableExists(ctx context.Context) error {
	if _, err := m.db.Exec(ctx, createTrackingTableSQL); err != nil {
		return fmt.Errorf("failed to create migration tracking table: %w", err)
	}
	return nil
}

func (m *Migrator) isMigrationApplied(ctx context.Context, version string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)`
	if err := m.db.QueryRow(ctx, query, version).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check migration status: %w", err)
	}
	return exists, nil
}

// Version extracts the version prefix of a migration file ("001_init.sql" => "001")
func Version(filename string) string {
	return strings.SplitN(path.Base(filename), "_", 2)[0]
}

// Pending lists migration files in the order they would be applied
func (m *Migrator) Pending() ([]string, error) {
	entries, err := fs.ReadDir(m.files, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to read migration directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			names = append(names, entry.Name())
		}
	}
	slices.Sort(names)
	return names, nil
}

// Apply runs a single migration file unless it was already recorded
func (m *Migrator) Apply(ctx context.Context, filename string) (bool, error) {
	version := Version(filename)

	applied, err := m.isMigrationApplied(ctx, version)
	if err != nil {
		return false, err
	}
	if applied {
		m.logger.Debug().Str("file", filename).Msg("Migration already applied, skipping")
		return false, nil
	}

	content, err := fs.ReadFile(m.files, filename)
	if err != nil {
		return false, fmt.Errorf("failed to read migration file %s: %w", filename, err)
	}

	tx, err := m.db.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, string(content)); err != nil {
		return false, fmt.Errorf("migration %s failed: %w", filename, err)
	}

	if _, err := tx.Exec(ctx, `INSERT INTO schema_migrations (version, applied_at) VALUES ($1, $2)`,
		version, helpers.NowUTC()); err != nil {
		return false, fmt.Errorf("failed to record migration %s: %w", filename, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("failed to commit migration %s: %w", filename, err)
	}

	m.logger.Info().Str("file", filename).Msg("Migration applied")
	return true, nil
}

// Migrate applies every pending migration and returns how many ran
func (m *Migrator) Migrate(ctx context.Context) (int, error) {
	if err := m.ensureMigrationTableExists(ctx); err != nil {
		return 0, err
	}

	names, err := m.Pending()
	if err != nil {
		return 0, err
	}

	count := 0
	for _, name := range names {
		applied, err := m.Apply(ctx, name)
		if err != nil {
			m.logger.Error().Err(err).Str("file", name).Msg("Database migration error")
			return count, err
		}
		if applied {
			count++
		}
	}
	return count, nil
}
