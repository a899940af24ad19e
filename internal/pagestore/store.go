// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pagestore keeps a SQLite ledger of extracted pages with a
// full-text index, so past extractions can be searched without re-reading
// the PDFs.
package pagestore

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/setly/pdftext/pkg/types"
)

const defaultLimit = 20

// Store manages the page store database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at path, creating parent directories
// and the schema as needed.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS documents (
			slug TEXT PRIMARY KEY,
			source TEXT NOT NULL,
			output TEXT NOT NULL,
			backend TEXT,
			pages INTEGER NOT NULL,
			failed_pages INTEGER NOT NULL,
			extracted_at TEXT NOT NULL
		)`,
		`CREATE VIRTUAL TABLE IF NOT EXISTS pages USING fts4(
			slug, page, body, failed,
			notindexed=slug, notindexed=page, notindexed=failed
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record replaces the stored pages of every document in docs. Each
// document is written in its own transaction.
func (s *Store) Record(ctx context.Context, backend string, docs []types.DocumentResult) error {
	now := time.Now().UTC().Format(time.RFC3339)
	for _, d := range docs {
		if err := s.recordDocument(ctx, backend, d, now); err != nil {
			return fmt.Errorf("recording %s: %w", d.Slug, err)
		}
	}
	return nil
}

func (s *Store) recordDocument(ctx context.Context, backend string, d types.DocumentResult, now string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM pages WHERE slug = ?`, d.Slug); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT OR REPLACE INTO documents (slug, source, output, backend, pages, failed_pages, extracted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		d.Slug, d.Path, d.Output, backend, len(d.Pages), len(d.FailedPages()), now,
	); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO pages (slug, page, body, failed) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, p := range d.Pages {
		if _, err := stmt.ExecContext(ctx, d.Slug, p.Number, strings.TrimSpace(p.Text), p.Failed()); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Document is a stored document summary.
type Document struct {
	Slug        string `json:"slug"`
	Source      string `json:"source"`
	Output      string `json:"output"`
	Backend     string `json:"backend"`
	Pages       int    `json:"pages"`
	FailedPages int    `json:"failed_pages"`
	ExtractedAt string `json:"extracted_at"`
}

// Documents lists stored documents ordered by slug.
func (s *Store) Documents(ctx context.Context) ([]Document, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT slug, source, output, backend, pages, failed_pages, extracted_at
		FROM documents ORDER BY slug`)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var d Document
		if err := rows.Scan(&d.Slug, &d.Source, &d.Output, &d.Backend, &d.Pages, &d.FailedPages, &d.ExtractedAt); err != nil {
			return nil, fmt.Errorf("scanning document: %w", err)
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

// Hit is one page matching a search.
type Hit struct {
	Slug    string `json:"slug"`
	Page    int    `json:"page"`
	Snippet string `json:"snippet"`
}

// Search runs a full-text query over page bodies. Results are ordered by
// slug and page; limit <= 0 uses the default of 20.
func (s *Store) Search(ctx context.Context, query string, limit int) ([]Hit, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("empty search query")
	}
	if limit <= 0 {
		limit = defaultLimit
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT slug, page, snippet(pages, '[', ']', '...', 2, 12)
		FROM pages WHERE body MATCH ?
		ORDER BY slug, CAST(page AS INTEGER)
		LIMIT ?`, query, limit)
	if err != nil {
		return nil, fmt.Errorf("searching pages: %w", err)
	}
	defer rows.Close()

	var hits []Hit
	for rows.Next() {
		var h Hit
		if err := rows.Scan(&h.Slug, &h.Page, &h.Snippet); err != nil {
			return nil, fmt.Errorf("scanning hit: %w", err)
		}
		hits = append(hits, h)
	}
	return hits, rows.Err()
}
