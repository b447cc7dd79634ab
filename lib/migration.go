package lib

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"
)

//go:embed migrations/*.sql
var embeddedMigrations embed.FS

type Migration struct {
	Name    string
	UpSQL   string
	DownSQL string
}

// ReadMigrations loads NAME.up.sql and NAME.down.sql pairs from dir in fsys,
// sorted by name.
func ReadMigrations(fsys fs.FS, dir string) ([]*Migration, error) {
	files, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}

	migrations := map[string]*Migration{}

	withMigration := func(name string) *Migration {
		m, ok := migrations[name]
		if !ok {
			m = &Migration{
				Name: name,
			}
			migrations[name] = m
		}
		return m
	}

	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".sql") {
			continue
		}
		bytes, err := fs.ReadFile(fsys, path.Join(dir, file.Name()))
		if err != nil {
			return nil, err
		}

		name, isUp := parseMigrationFileName(file.Name())
		migration := withMigration(name)
		if isUp {
			migration.UpSQL = string(bytes)
		} else {
			migration.DownSQL = string(bytes)
		}
	}

	keys := []string{}
	for k := range migrations {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	result := []*Migration{}
	for _, k := range keys {
		result = append(result, migrations[k])
	}
	return result, nil
}

// JournalMigrations returns the migrations that build the journal schema.
func JournalMigrations() ([]*Migration, error) {
	return ReadMigrations(embeddedMigrations, "migrations")
}

func parseMigrationFileName(fileName string) (string, bool) {
	return getMigrationName(fileName), getUpness(fileName)
}

func getMigrationName(fileName string) string {
	dotParts := strings.Split(fileName, ".")
	return dotParts[0]
}

func getUpness(fileName string) bool {
	return !strings.HasSuffix(fileName, ".down.sql")
}

// runMigrations applies every migration not yet recorded in the migrations
// table and returns the names it applied.
func runMigrations(ctx context.Context, db *sql.DB, d dialect, migrations []*Migration) ([]string, error) {
	if err := requireMigrationsTable(ctx, db); err != nil {
		return nil, err
	}

	applied, err := appliedMigrations(ctx, db)
	if err != nil {
		return nil, err
	}

	ran := []string{}
	for _, migration := range migrations {
		if applied[migration.Name] {
			continue
		}
		if err := execMigration(ctx, db, d, migration); err != nil {
			return ran, err
		}
		ran = append(ran, migration.Name)
	}
	return ran, nil
}

func requireMigrationsTable(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx,
		"CREATE TABLE IF NOT EXISTS migrations (version VARCHAR(255) PRIMARY KEY, applied_at TIMESTAMP NOT NULL)")
	if err != nil {
		return fmt.Errorf("creating migrations table: %w", err)
	}
	return nil
}

func appliedMigrations(ctx context.Context, db *sql.DB) (map[string]bool, error) {
	rows, err := db.QueryContext(ctx, "SELECT version FROM migrations")
	if err != nil {
		return nil, fmt.Errorf("reading migrations table: %w", err)
	}
	defer rows.Close()

	applied := map[string]bool{}
	for rows.Next() {
		var version string
		if err := rows.Scan(&version); err != nil {
			return nil, err
		}
		applied[version] = true
	}
	return applied, rows.Err()
}

func execMigration(ctx context.Context, db *sql.DB, d dialect, migration *Migration) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, migration.UpSQL); err != nil {
		return fmt.Errorf("migration %s: %w", migration.Name, err)
	}

	insert := fmt.Sprintf("INSERT INTO migrations (version, applied_at) VALUES (%s, %s)",
		d.placeholder(1), d.placeholder(2))
	if _, err := tx.ExecContext(ctx, insert, migration.Name, time.Now().UTC()); err != nil {
		return fmt.Errorf("migration %s: %w", migration.Name, err)
	}

	return tx.Commit()
}
