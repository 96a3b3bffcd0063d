package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"quizera/internal/logger"

	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

const (
	upSuffix   = ".up.sql"
	downSuffix = ".down.sql"

	// ORA-00955: name is already used by an existing object
	oraObjectExists = "ORA-00955"
	// ORA-00942: table or view does not exist
	oraObjectMissing = "ORA-00942"
	// ORA-01418: specified index does not exist
	oraIndexMissing = "ORA-01418"
)

// Migration is one embedded schema change.
type Migration struct {
	Name string
	SQL  string
}

// Migrations returns the embedded migrations with the given suffix, ordered
// by file name. Down migrations are returned newest first.
func Migrations(down bool) ([]Migration, error) {
	suffix := upSuffix
	if down {
		suffix = downSuffix
	}

	entries, err := fs.ReadDir(migrationFiles, "migrations")
	if err != nil {
		return nil, fmt.Errorf("could not read migrations directory: %w", err)
	}

	var migrations []Migration
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), suffix) {
			continue
		}
		content, err := fs.ReadFile(migrationFiles, "migrations/"+entry.Name())
		if err != nil {
			return nil, fmt.Errorf("could not read migration file %s: %w", entry.Name(), err)
		}
		migrations = append(migrations, Migration{
			Name: entry.Name(),
			SQL:  strings.TrimSuffix(strings.TrimSpace(string(content)), ";"),
		})
	}

	sort.Slice(migrations, func(i, j int) bool {
		if down {
			return migrations[i].Name > migrations[j].Name
		}
		return migrations[i].Name < migrations[j].Name
	})
	return migrations, nil
}

// RunMigrations applies every up migration in order. Objects that already
// exist are skipped so the command can be re-run.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	return run(ctx, db, false, oraObjectExists)
}

// RollbackMigrations applies every down migration, newest first. Objects
// that are already gone are skipped.
func RollbackMigrations(ctx context.Context, db *sql.DB) error {
	return run(ctx, db, true, oraObjectMissing, oraIndexMissing)
}

func run(ctx context.Context, db *sql.DB, down bool, ignorable ...string) error {
	migrations, err := Migrations(down)
	if err != nil {
		return err
	}

	log := logger.Get()
	for _, m := range migrations {
		if _, err := db.ExecContext(ctx, m.SQL); err != nil {
			if hasOracleCode(err, ignorable...) {
				log.Info("Skipping migration, already applied", zap.String("migration", m.Name), zap.Error(err))
				continue
			}
			return fmt.Errorf("could not execute migration %s: %w", m.Name, err)
		}
		log.Info("Executed migration", zap.String("migration", m.Name))
	}

	log.Info("Migrations completed successfully", zap.Int("count", len(migrations)), zap.Bool("down", down))
	return nil
}

func hasOracleCode(err error, codes ...string) bool {
	msg := err.Error()
	for _, code := range codes {
		if strings.Contains(msg, code) {
			return true
		}
	}
	return false
}
