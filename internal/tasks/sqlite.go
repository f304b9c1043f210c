package tasks

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore keeps tasks and their notes in a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if needed) the database at dbPath.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// migrate creates the necessary tables
func (s *SQLiteStore) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS tasks (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			status TEXT NOT NULL,
			created_at DATETIME NOT NULL,
			priority INTEGER NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS notes (
			id TEXT PRIMARY KEY,
			task_id INTEGER NOT NULL,
			seq INTEGER NOT NULL,
			created_at DATETIME NOT NULL,
			note TEXT NOT NULL,
			FOREIGN KEY (task_id) REFERENCES tasks(id)
		);

		CREATE INDEX IF NOT EXISTS idx_notes_task ON notes(task_id, seq);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Load reads every task with its notes.
func (s *SQLiteStore) Load(ctx context.Context) (*List, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, status, created_at, priority
		FROM tasks ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	var loaded []Task
	index := make(map[int]int)
	for rows.Next() {
		var t Task
		if err := rows.Scan(&t.ID, &t.Name, &t.Status, &t.CreatedAt, &t.Priority); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		index[t.ID] = len(loaded)
		loaded = append(loaded, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tasks: %w", err)
	}

	noteRows, err := s.db.QueryContext(ctx, `
		SELECT id, task_id, created_at, note
		FROM notes ORDER BY task_id, seq
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query notes: %w", err)
	}
	defer noteRows.Close()

	for noteRows.Next() {
		var n Note
		var taskID int
		if err := noteRows.Scan(&n.ID, &taskID, &n.CreatedAt, &n.Text); err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		if i, ok := index[taskID]; ok {
			loaded[i].Notes = append(loaded[i].Notes, n)
		}
	}
	if err := noteRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read notes: %w", err)
	}

	slog.Debug("loaded tasks", "backend", BackendSQLite, "count", len(loaded))
	return NewList(loaded...), nil
}

// Save replaces every task in l, and its notes, in one transaction.
func (s *SQLiteStore) Save(ctx context.Context, l *List) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	slog.Debug("writing tasks", "backend", BackendSQLite, "count", l.Len())
	for _, t := range l.tasks {
		_, err := tx.ExecContext(ctx, `
			INSERT OR REPLACE INTO tasks (id, name, status, created_at, priority)
			VALUES (?, ?, ?, ?, ?)
		`, t.ID, t.Name, string(t.Status), t.CreatedAt, t.Priority)
		if err != nil {
			return 0, fmt.Errorf("failed to write task %d: %w", t.ID, err)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM notes WHERE task_id = ?`, t.ID); err != nil {
			return 0, fmt.Errorf("failed to clear notes of task %d: %w", t.ID, err)
		}
		for seq, n := range t.Notes {
			if n.ID == "" {
				n.ID = NewNote("").ID
			}
			_, err := tx.ExecContext(ctx, `
				INSERT INTO notes (id, task_id, seq, created_at, note)
				VALUES (?, ?, ?, ?, ?)
			`, n.ID, t.ID, seq, n.CreatedAt, n.Text)
			if err != nil {
				return 0, fmt.Errorf("failed to write note of task %d: %w", t.ID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit tasks: %w", err)
	}
	return l.Len(), nil
}
