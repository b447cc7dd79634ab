package lib

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

type dialect string

func (d dialect) placeholder(n int) string {
	if d == DriverPostgres {
		return "$" + strconv.Itoa(n)
	}
	return "?"
}

// Entry is one recorded evaluation.
type Entry struct {
	ID          string
	Filename    string
	Source      string
	Result      float64
	EvaluatedAt time.Time
}

// Journal records evaluations in a SQL database.
type Journal struct {
	db      *sql.DB
	dialect dialect
}

// OpenJournal connects to the database. Call Migrate before first use.
func OpenJournal(ctx context.Context, driver string, dsn string) (*Journal, error) {
	if driver != DriverPostgres && driver != DriverSQLite {
		return nil, fmt.Errorf("journal: unsupported driver '%s'", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("journal: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("journal: %w", err)
	}

	return &Journal{db: db, dialect: dialect(driver)}, nil
}

// Migrate applies pending journal migrations and returns their names.
func (j *Journal) Migrate(ctx context.Context) ([]string, error) {
	migrations, err := JournalMigrations()
	if err != nil {
		return nil, fmt.Errorf("journal: %w", err)
	}
	ran, err := runMigrations(ctx, j.db, j.dialect, migrations)
	if err != nil {
		return ran, fmt.Errorf("journal: %w", err)
	}
	return ran, nil
}

// Record stores e, filling in ID and EvaluatedAt when they are empty.
func (j *Journal) Record(ctx context.Context, e Entry) (Entry, error) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.EvaluatedAt.IsZero() {
		e.EvaluatedAt = time.Now().UTC()
	}

	query := fmt.Sprintf(
		"INSERT INTO evaluations (id, filename, source, result, evaluated_at) VALUES (%s, %s, %s, %s, %s)",
		j.dialect.placeholder(1),
		j.dialect.placeholder(2),
		j.dialect.placeholder(3),
		j.dialect.placeholder(4),
		j.dialect.placeholder(5))

	// Results are stored as text: SQLite turns NaN into NULL.
	result := strconv.FormatFloat(e.Result, 'g', -1, 64)
	_, err := j.db.ExecContext(ctx, query, e.ID, e.Filename, e.Source, result, e.EvaluatedAt)
	if err != nil {
		return Entry{}, fmt.Errorf("journal: recording evaluation: %w", err)
	}
	return e, nil
}

// Recent returns up to limit entries, newest first.
func (j *Journal) Recent(ctx context.Context, limit int) ([]Entry, error) {
	query := fmt.Sprintf(
		"SELECT id, filename, source, result, evaluated_at FROM evaluations ORDER BY evaluated_at DESC, id LIMIT %s",
		j.dialect.placeholder(1))

	rows, err := j.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("journal: reading evaluations: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var e Entry
		var result string
		if err := rows.Scan(&e.ID, &e.Filename, &e.Source, &result, &e.EvaluatedAt); err != nil {
			return nil, fmt.Errorf("journal: reading evaluations: %w", err)
		}
		e.Result, err = strconv.ParseFloat(result, 64)
		if err != nil {
			return nil, fmt.Errorf("journal: bad result '%s' for %s: %w", result, e.ID, err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (j *Journal) Close() error {
	return j.db.Close()
}
