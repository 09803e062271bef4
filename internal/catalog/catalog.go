// Package catalog stores named puzzles in Postgres so operators can
// browse and re-solve a library of boards without re-uploading text
// each time. Like internal/cache, it is a collaborator the solver
// core never imports.
package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Record is one named puzzle as stored in the catalog.
type Record struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}

// Store is a pgxpool-backed handle onto the puzzle catalog table.
type Store struct {
	pool *pgxpool.Pool
}

// Open connects to dsn, applying any pending migrations first.
func Open(ctx context.Context, dsn string) (*Store, error) {
	if err := Migrate(dsn); err != nil {
		return nil, err
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("catalog: connect: %w", err)
	}
	return &Store{pool: pool}, nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() {
	s.pool.Close()
}

// Insert adds a new named puzzle to the catalog.
func (s *Store) Insert(ctx context.Context, r Record) error {
	const q = `INSERT INTO puzzles (id, title, body, created_at) VALUES ($1, $2, $3, $4)`
	if _, err := s.pool.Exec(ctx, q, r.ID, r.Title, r.Body, r.CreatedAt); err != nil {
		return fmt.Errorf("catalog: insert %s: %w", r.ID, err)
	}
	return nil
}

// Get fetches a puzzle by id.
func (s *Store) Get(ctx context.Context, id string) (Record, error) {
	const q = `SELECT id, title, body, created_at FROM puzzles WHERE id = $1`
	var r Record
	err := s.pool.QueryRow(ctx, q, id).Scan(&r.ID, &r.Title, &r.Body, &r.CreatedAt)
	if err != nil {
		return Record{}, fmt.Errorf("catalog: get %s: %w", id, err)
	}
	return r, nil
}

// List returns every catalog entry, newest first.
func (s *Store) List(ctx context.Context) ([]Record, error) {
	const q = `SELECT id, title, body, created_at FROM puzzles ORDER BY created_at DESC`
	rows, err := s.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("catalog: list: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.Title, &r.Body, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("catalog: scan: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("catalog: list: %w", err)
	}
	return records, nil
}
