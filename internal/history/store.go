// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history records the outcome of every archive conversion in a
// SQLite database and reads it back for reporting.
package history

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"

	"github.com/pdiddy/html2latex/pkg/types"
)

const defaultLimit = 20

// Run is one recorded conversion attempt.
type Run struct {
	ID         int64     `json:"id" yaml:"id"`
	ArchiveID  string    `json:"archive_id" yaml:"archive_id"`
	ZipPath    string    `json:"zip_path" yaml:"zip_path"`
	ZipSHA256  string    `json:"zip_sha256,omitempty" yaml:"zip_sha256,omitempty"`
	Status     string    `json:"status" yaml:"status"`
	Stage      string    `json:"stage,omitempty" yaml:"stage,omitempty"`
	Error      string    `json:"error,omitempty" yaml:"error,omitempty"`
	PDFPath    string    `json:"pdf_path,omitempty" yaml:"pdf_path,omitempty"`
	Pages      int       `json:"pages,omitempty" yaml:"pages,omitempty"`
	StartedAt  time.Time `json:"started_at" yaml:"started_at"`
	FinishedAt time.Time `json:"finished_at" yaml:"finished_at"`
}

// QueryOptions filters List.
type QueryOptions struct {
	// ArchiveID restricts results to one archive base name.
	ArchiveID string

	// Limit caps the number of runs returned (default 20).
	Limit int
}

// Store manages the history database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the history database at path, creating its parent
// directory and schema when missing.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrap(err, "creating history directory")
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, errors.Wrap(err, "opening database")
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "creating schema")
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			archive_id TEXT NOT NULL,
			zip_path TEXT NOT NULL,
			zip_sha256 TEXT,
			status TEXT NOT NULL,
			stage TEXT,
			error TEXT,
			pdf_path TEXT,
			pages INTEGER,
			started_at TEXT NOT NULL,
			finished_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_archive_id ON runs(archive_id)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return errors.Wrap(err, "executing schema statement")
		}
	}
	return nil
}

// Record appends the outcome of one pipeline run. The archive is hashed so
// runs over identical input can be told apart from runs over edited input;
// an unreadable archive is recorded without a hash.
func (s *Store) Record(ctx context.Context, res types.Result) error {
	sum, _ := fileSHA256(res.Archive.ZipPath)

	var errText string
	if res.Err != nil {
		errText = res.Err.Error()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (archive_id, zip_path, zip_sha256, status, stage, error, pdf_path, pages, started_at, finished_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		res.Archive.ID, res.Archive.ZipPath, sum, string(res.Status), string(res.Stage),
		errText, res.PDFPath, res.Pages,
		res.StartedAt.UTC().Format(time.RFC3339Nano), res.FinishedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return errors.Wrapf(err, "recording run for %s", res.Archive.ID)
	}
	return nil
}

// List returns recorded runs, newest first.
func (s *Store) List(ctx context.Context, opts QueryOptions) ([]Run, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	query := `SELECT id, archive_id, zip_path, COALESCE(zip_sha256, ''), status, COALESCE(stage, ''),
		COALESCE(error, ''), COALESCE(pdf_path, ''), COALESCE(pages, 0), started_at, finished_at
		FROM runs`
	var args []any
	if opts.ArchiveID != "" {
		query += ` WHERE archive_id = ?`
		args = append(args, opts.ArchiveID)
	}
	query += ` ORDER BY id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "querying runs")
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var started, finished string
		if err := rows.Scan(&r.ID, &r.ArchiveID, &r.ZipPath, &r.ZipSHA256, &r.Status, &r.Stage,
			&r.Error, &r.PDFPath, &r.Pages, &started, &finished); err != nil {
			return nil, errors.Wrap(err, "scanning run")
		}
		r.StartedAt, _ = time.Parse(time.RFC3339Nano, started)
		r.FinishedAt, _ = time.Parse(time.RFC3339Nano, finished)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

func fileSHA256(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
