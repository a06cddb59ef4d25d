// Package storage provides a SQLite-backed palette catalog.
// It stores reference palettes only; quiz results are never persisted.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/colorquiz/internal/palette"
	"github.com/vovakirdan/colorquiz/internal/taxonomy"
)

// Catalog manages the SQLite database holding imported palettes.
type Catalog struct {
	db *sql.DB
}

// GradeSummary describes the stored palette of one grade.
type GradeSummary struct {
	Grade      palette.Grade
	Count      int
	ImportedAt time.Time
}

// Open creates or opens a catalog at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Catalog, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	c := &Catalog{db: db}

	if err := c.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return c, nil
}

// migrate creates the database schema if it doesn't exist.
func (c *Catalog) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS palette_entries (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			grade TEXT NOT NULL,
			position INTEGER NOT NULL,
			name TEXT NOT NULL,
			hex TEXT NOT NULL,
			pccs TEXT NOT NULL DEFAULT '',
			munsell TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			origin TEXT NOT NULL DEFAULT 'native',
			imported_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (grade, position)
		);
		CREATE INDEX IF NOT EXISTS idx_palette_entries_grade ON palette_entries(grade, position);
	`

	_, err := c.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (c *Catalog) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

// ImportGrade replaces the stored palette of a grade.
// Grade 1 is derived from grades 2 and 3 and cannot be imported.
func (c *Catalog) ImportGrade(grade palette.Grade, entries []taxonomy.Entry) error {
	if grade != palette.Grade2 && grade != palette.Grade3 {
		return fmt.Errorf("storage: cannot import grade %q: %w", string(grade), palette.ErrUnknownGrade)
	}

	tx, err := c.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM palette_entries WHERE grade = ?", string(grade)); err != nil {
		return fmt.Errorf("storage: cannot clear grade %s: %w", grade, err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO palette_entries
		 (grade, position, name, hex, pccs, munsell, description, origin)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, e := range entries {
		origin, err := taxonomy.ParseEntryOrigin(string(e.Origin))
		if err != nil {
			return fmt.Errorf("storage: cannot import %q: %w", e.Name, err)
		}
		if _, err := stmt.Exec(string(grade), i, e.Name, e.Hex, e.PCCS, e.Munsell, e.Description, string(origin)); err != nil {
			return fmt.Errorf("storage: cannot insert %q: %w", e.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit import: %w", err)
	}
	return nil
}

// Import stores grades 2 and 3 of a book.
func (c *Catalog) Import(book *palette.Book) error {
	f := book.File()
	if err := c.ImportGrade(palette.Grade2, f.Grade2); err != nil {
		return err
	}
	return c.ImportGrade(palette.Grade3, f.Grade3)
}

// Entries returns the stored palette of a grade in import order.
// Grade 1 is grade 2 followed by grade 3. It implements palette.Source.
func (c *Catalog) Entries(grade palette.Grade) ([]taxonomy.Entry, error) {
	switch grade {
	case palette.Grade1:
		g2, err := c.Entries(palette.Grade2)
		if err != nil {
			return nil, err
		}
		g3, err := c.Entries(palette.Grade3)
		if err != nil {
			return nil, err
		}
		return append(g2, g3...), nil
	case palette.Grade2, palette.Grade3:
	default:
		return nil, fmt.Errorf("storage: %w %q", palette.ErrUnknownGrade, string(grade))
	}

	rows, err := c.db.Query(
		`SELECT name, hex, pccs, munsell, description, origin
		 FROM palette_entries
		 WHERE grade = ?
		 ORDER BY position`,
		string(grade),
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query entries: %w", err)
	}
	defer rows.Close()

	var entries []taxonomy.Entry
	for rows.Next() {
		var e taxonomy.Entry
		var origin string
		if err := rows.Scan(&e.Name, &e.Hex, &e.PCCS, &e.Munsell, &e.Description, &origin); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		if e.Origin, err = taxonomy.ParseEntryOrigin(origin); err != nil {
			return nil, fmt.Errorf("storage: grade %s %q: %w", grade, e.Name, err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Grades summarizes the stored grades, ordered by grade.
func (c *Catalog) Grades() ([]GradeSummary, error) {
	rows, err := c.db.Query(
		`SELECT grade, COUNT(*), MAX(imported_at)
		 FROM palette_entries
		 GROUP BY grade
		 ORDER BY grade`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query grades: %w", err)
	}
	defer rows.Close()

	var out []GradeSummary
	for rows.Next() {
		var s GradeSummary
		var grade string
		var importedAt any
		if err := rows.Scan(&grade, &s.Count, &importedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan grade row: %w", err)
		}
		s.Grade = palette.Grade(grade)

		// Parse the datetime - handle both time.Time and string
		switch v := importedAt.(type) {
		case time.Time:
			s.ImportedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				s.ImportedAt = parsed
			}
		}
		out = append(out, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return out, nil
}

// ClearGrade deletes the stored palette of grade 2 or 3.
func (c *Catalog) ClearGrade(grade palette.Grade) error {
	if grade != palette.Grade2 && grade != palette.Grade3 {
		return fmt.Errorf("storage: cannot clear grade %q: %w", string(grade), palette.ErrUnknownGrade)
	}
	_, err := c.db.Exec("DELETE FROM palette_entries WHERE grade = ?", string(grade))
	if err != nil {
		return fmt.Errorf("storage: cannot clear grade: %w", err)
	}
	return nil
}

var _ palette.Source = (*Catalog)(nil)
