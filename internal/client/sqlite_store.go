package client

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"mariage/internal/models"
)

// Ensure SQLiteStore implements Store
var _ Store = (*SQLiteStore)(nil)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS rsvp (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    nom TEXT NOT NULL,
    prenom TEXT NOT NULL,
    contact TEXT NOT NULL,
    invite_par TEXT NOT NULL,
    presence TEXT NOT NULL,
    created_at TEXT NOT NULL
);`

// SQLiteStore is the first fallback tier: a structured local database
// with an auto-incrementing id per record.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the local database at dbPath,
// creating parent directories and the schema as needed.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Name() string {
	return "sqlite"
}

// Save appends one record and fills in the assigned id.
func (s *SQLiteStore) Save(ctx context.Context, rsvp models.Rsvp) (models.Rsvp, error) {
	if rsvp.CreatedAt == "" {
		rsvp.CreatedAt = models.Timestamp()
	}
	result, err := s.db.ExecContext(ctx,
		"INSERT INTO rsvp (nom, prenom, contact, invite_par, presence, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		rsvp.Nom, rsvp.Prenom, rsvp.Contact, rsvp.InvitePar, rsvp.Presence, rsvp.CreatedAt,
	)
	if err != nil {
		return models.Rsvp{}, fmt.Errorf("failed to insert record: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.Rsvp{}, fmt.Errorf("failed to read inserted id: %w", err)
	}
	rsvp.ID = id
	return rsvp, nil
}

// List returns everything saved locally, oldest first.
func (s *SQLiteStore) List(ctx context.Context) ([]models.Rsvp, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, nom, prenom, contact, invite_par, presence, created_at FROM rsvp ORDER BY id",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	var rsvps []models.Rsvp
	for rows.Next() {
		var r models.Rsvp
		if err := rows.Scan(&r.ID, &r.Nom, &r.Prenom, &r.Contact, &r.InvitePar, &r.Presence, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		rsvps = append(rsvps, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate records: %w", err)
	}
	return rsvps, nil
}
