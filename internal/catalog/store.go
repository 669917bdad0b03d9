package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	_ "modernc.org/sqlite"
)

// Store persists the film catalog in SQLite. It backs the import workflow
// and serves as an alternative catalog source to the JSON file.
type Store struct {
	db   *sql.DB
	path string
}

const storeSchema = `
CREATE TABLE IF NOT EXISTS films (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    original_title TEXT NOT NULL DEFAULT '',
    year INTEGER NOT NULL DEFAULT 0,
    countries TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS film_aliases (
    film_id TEXT NOT NULL REFERENCES films(id) ON DELETE CASCADE,
    alias TEXT NOT NULL,
    locale TEXT NOT NULL DEFAULT '',
    PRIMARY KEY (film_id, alias, locale)
);

CREATE INDEX IF NOT EXISTS idx_film_aliases_film ON film_aliases(film_id);
`

// OpenStore initializes or connects to the catalog database at path and
// applies the schema.
func OpenStore(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("ensure catalog dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(storeSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply catalog schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Import upserts the provided records inside a single transaction. Alias and
// localized-title rows are replaced wholesale per film.
func (s *Store) Import(ctx context.Context, records []Record) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin import: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC().Format(time.RFC3339Nano)
	for _, record := range records {
		if record.ID == "" {
			return fmt.Errorf("import record %q: missing id", record.Title)
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO films (id, title, original_title, year, countries, created_at, updated_at)
             VALUES (?, ?, ?, ?, ?, ?, ?)
             ON CONFLICT(id) DO UPDATE SET
                 title = excluded.title,
                 original_title = excluded.original_title,
                 year = excluded.year,
                 countries = excluded.countries,
                 updated_at = excluded.updated_at`,
			record.ID, record.Title, record.OriginalTitle, record.Year, record.Countries, now, now,
		)
		if err != nil {
			return fmt.Errorf("upsert film %s: %w", record.ID, err)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM film_aliases WHERE film_id = ?`, record.ID); err != nil {
			return fmt.Errorf("clear aliases for %s: %w", record.ID, err)
		}
		for _, alias := range record.Aliases {
			if alias == "" {
				continue
			}
			if _, err := tx.ExecContext(ctx,
				`INSERT OR IGNORE INTO film_aliases (film_id, alias, locale) VALUES (?, ?, '')`,
				record.ID, alias,
			); err != nil {
				return fmt.Errorf("insert alias for %s: %w", record.ID, err)
			}
		}
		for locale, title := range record.LocalizedTitles {
			if locale == "" || title == "" {
				continue
			}
			if _, err := tx.ExecContext(ctx,
				`INSERT OR IGNORE INTO film_aliases (film_id, alias, locale) VALUES (?, ?, ?)`,
				record.ID, title, locale,
			); err != nil {
				return fmt.Errorf("insert localized title for %s: %w", record.ID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}
	return nil
}

// Records loads the full catalog in stable film-ID order.
func (s *Store) Records(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, original_title, year, countries FROM films ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query films: %w", err)
	}
	defer rows.Close()

	var records []Record
	byID := make(map[string]int)
	for rows.Next() {
		var record Record
		if err := rows.Scan(&record.ID, &record.Title, &record.OriginalTitle, &record.Year, &record.Countries); err != nil {
			return nil, fmt.Errorf("scan film: %w", err)
		}
		byID[record.ID] = len(records)
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate films: %w", err)
	}

	aliasRows, err := s.db.QueryContext(ctx,
		`SELECT film_id, alias, locale FROM film_aliases ORDER BY film_id, locale, alias`)
	if err != nil {
		return nil, fmt.Errorf("query aliases: %w", err)
	}
	defer aliasRows.Close()

	for aliasRows.Next() {
		var filmID, alias, locale string
		if err := aliasRows.Scan(&filmID, &alias, &locale); err != nil {
			return nil, fmt.Errorf("scan alias: %w", err)
		}
		idx, ok := byID[filmID]
		if !ok {
			continue
		}
		if locale == "" {
			records[idx].Aliases = append(records[idx].Aliases, alias)
			continue
		}
		if records[idx].LocalizedTitles == nil {
			records[idx].LocalizedTitles = make(map[string]string)
		}
		records[idx].LocalizedTitles[locale] = alias
	}
	if err := aliasRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate aliases: %w", err)
	}

	for i := range records {
		sort.Strings(records[i].Aliases)
	}
	return records, nil
}

// Count reports the number of stored films.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM films`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count films: %w", err)
	}
	return count, nil
}
