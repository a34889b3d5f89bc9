// Package sqlite provides a SQLite-backed record store with embedded
// schema migrations.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/chartlens-labs/chartlens-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/chartlens-labs/chartlens-cli/internal/core/domain"
	"github.com/chartlens-labs/chartlens-cli/internal/core/ports/driven"
)

// Store is a SQLite-backed storage for admission records.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.chartlens/data/records.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".chartlens", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "records.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// RecordStore returns a RecordStore interface backed by this store.
func (s *Store) RecordStore() driven.RecordStore {
	return &recordStore{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		// Read and execute migration
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// recordStore implements driven.RecordStore.
type recordStore struct {
	store *Store
}

var _ driven.RecordStore = (*recordStore)(nil)

// Save stores or updates a record with all its notes and annotations.
// Notes are replaced wholesale; annotations are stored as a JSON column
// per note since they are only ever read back as a unit.
func (s *recordStore) Save(ctx context.Context, rec *domain.Record) error {
	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO records (id, hadm_id, path, annotation_count, imported_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			hadm_id = excluded.hadm_id,
			path = excluded.path,
			annotation_count = excluded.annotation_count
	`, rec.ID, rec.HadmID, rec.Path, rec.AnnotationCount(), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("saving record: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM notes WHERE record_id = ?", rec.ID); err != nil {
		return fmt.Errorf("clearing notes: %w", err)
	}

	for i := range rec.Notes {
		note := &rec.Notes[i]
		annJSON, err := json.Marshal(note.Annotations)
		if err != nil {
			return fmt.Errorf("marshalling annotations: %w", err)
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO notes (record_id, position, note_id, category, description, body, annotations)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, rec.ID, i, note.NoteID, note.Category, note.Description, note.Text, string(annJSON))
		if err != nil {
			return fmt.Errorf("saving note %d: %w", i, err)
		}
	}

	return tx.Commit()
}

// Get retrieves a record by ID, including notes and annotations.
func (s *recordStore) Get(ctx context.Context, id string) (*domain.Record, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, hadm_id, path FROM records WHERE id = ?
	`, id)

	var rec domain.Record
	if err := row.Scan(&rec.ID, &rec.HadmID, &rec.Path); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning record: %w", err)
	}

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT note_id, category, description, body, annotations
		FROM notes WHERE record_id = ? ORDER BY position
	`, id)
	if err != nil {
		return nil, fmt.Errorf("querying notes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var note domain.Note
		var annJSON string
		if err := rows.Scan(&note.NoteID, &note.Category, &note.Description, &note.Text, &annJSON); err != nil {
			return nil, fmt.Errorf("scanning note: %w", err)
		}
		if err := json.Unmarshal([]byte(annJSON), &note.Annotations); err != nil {
			return nil, fmt.Errorf("unmarshalling annotations: %w", err)
		}
		rec.Notes = append(rec.Notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating notes: %w", err)
	}

	return &rec, nil
}

// List returns summaries of all stored records, sorted by ID.
func (s *recordStore) List(ctx context.Context) ([]domain.RecordSummary, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT r.id, r.hadm_id, r.path, r.annotation_count, r.imported_at,
		       (SELECT COUNT(*) FROM notes n WHERE n.record_id = r.id)
		FROM records r ORDER BY r.id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying records: %w", err)
	}
	defer rows.Close()

	var summaries []domain.RecordSummary
	for rows.Next() {
		var sum domain.RecordSummary
		if err := rows.Scan(&sum.ID, &sum.HadmID, &sum.Path,
			&sum.AnnotationCount, &sum.ImportedAt, &sum.NoteCount); err != nil {
			return nil, fmt.Errorf("scanning summary: %w", err)
		}
		summaries = append(summaries, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating records: %w", err)
	}

	return summaries, nil
}

// Delete removes a record and its notes.
func (s *recordStore) Delete(ctx context.Context, id string) error {
	_, err := s.store.db.ExecContext(ctx, "DELETE FROM records WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting record: %w", err)
	}
	return nil
}
