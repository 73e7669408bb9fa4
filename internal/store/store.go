package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/rouu123/world-map-name-distribution/internal/model"
)

// Store persists the classified dataset via DuckDB, keyed by alpha-3.
type Store struct {
	DB      *sql.DB
	DataDir string
}

// New opens (or creates) a DuckDB database in the given data directory.
func New(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, "namemap.duckdb")
	db, err := sql.Open("duckdb", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening duckdb: %w", err)
	}

	s := &Store{DB: db, DataDir: dataDir}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating schema: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.DB.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS records (
			alpha3 TEXT PRIMARY KEY,
			position INTEGER NOT NULL,
			country_key TEXT NOT NULL,
			surname_count BIGINT,
			forename_count BIGINT,
			ratio DOUBLE,
			color TEXT NOT NULL DEFAULT '#ffffff'
		)`,
		`CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
	}

	for _, stmt := range stmts {
		if _, err := s.DB.Exec(stmt); err != nil {
			return fmt.Errorf("executing migration %q: %w", stmt[:40], err)
		}
	}

	return nil
}

// WriteDataset replaces the stored dataset, preserving record order.
func (s *Store) WriteDataset(records []model.CountryRecord) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM records"); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`INSERT INTO records (alpha3, position, country_key, surname_count, forename_count, ratio, color)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, rec := range records {
		color := rec.Color
		if color == "" {
			color = model.ColorNoData
		}
		if _, err := stmt.Exec(rec.Alpha3, i, rec.CountryKey,
			nullInt(rec.SurnameCount), nullInt(rec.ForenameCount), nullFloat(rec.Ratio), color); err != nil {
			return fmt.Errorf("inserting record %s: %w", rec.Alpha3, err)
		}
	}

	return tx.Commit()
}

// WriteRecord inserts or replaces a single record at the given position.
func (s *Store) WriteRecord(position int, rec model.CountryRecord) error {
	color := rec.Color
	if color == "" {
		color = model.ColorNoData
	}
	_, err := s.DB.Exec(`INSERT OR REPLACE INTO records (alpha3, position, country_key, surname_count, forename_count, ratio, color)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.Alpha3, position, rec.CountryKey,
		nullInt(rec.SurnameCount), nullInt(rec.ForenameCount), nullFloat(rec.Ratio), color)
	return err
}

// ReadDataset loads the full dataset in its original order.
func (s *Store) ReadDataset() ([]model.CountryRecord, error) {
	rows, err := s.DB.Query(`SELECT alpha3, country_key, surname_count, forename_count, ratio, color
		FROM records ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.CountryRecord
	for rows.Next() {
		var rec model.CountryRecord
		var surname, forename sql.NullInt64
		var ratio sql.NullFloat64
		if err := rows.Scan(&rec.Alpha3, &rec.CountryKey, &surname, &forename, &ratio, &rec.Color); err != nil {
			return nil, err
		}
		if surname.Valid {
			n := int(surname.Int64)
			rec.SurnameCount = &n
		}
		if forename.Valid {
			n := int(forename.Int64)
			rec.ForenameCount = &n
		}
		if ratio.Valid {
			r := ratio.Float64
			rec.Ratio = &r
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// RecordExists checks if a country already has a stored record.
func (s *Store) RecordExists(alpha3 string) bool {
	var n int
	s.DB.QueryRow("SELECT 1 FROM records WHERE alpha3 = ?", alpha3).Scan(&n)
	return n == 1
}

// RecordCount returns the total number of stored records.
func (s *Store) RecordCount() int {
	var n int
	s.DB.QueryRow("SELECT COUNT(*) FROM records").Scan(&n)
	return n
}

// FetchedCount returns how many records have both counts present.
func (s *Store) FetchedCount() int {
	var n int
	s.DB.QueryRow("SELECT COUNT(*) FROM records WHERE surname_count IS NOT NULL AND forename_count IS NOT NULL").Scan(&n)
	return n
}

// ClassifiedCount returns how many records carry a ratio bucket color.
func (s *Store) ClassifiedCount() int {
	var n int
	s.DB.QueryRow("SELECT COUNT(*) FROM records WHERE color != ?", model.ColorNoData).Scan(&n)
	return n
}

// SetMeta stores a metadata value (timestamps and the like).
func (s *Store) SetMeta(key, value string) error {
	_, err := s.DB.Exec("INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)", key, value)
	return err
}

// GetMeta retrieves a metadata value, or "" if unset.
func (s *Store) GetMeta(key string) string {
	var value sql.NullString
	s.DB.QueryRow("SELECT value FROM meta WHERE key = ?", key).Scan(&value)
	return value.String
}

func nullInt(n *int) any {
	if n == nil {
		return nil
	}
	return *n
}

func nullFloat(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}
