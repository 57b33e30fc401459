// Package storage implements the conversion-history store using SQLite.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/romforge/chdflow/internal/model"
	"github.com/romforge/chdflow/internal/service"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteStorage implements service.HistoryStore using SQLite.
type SQLiteStorage struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStorage creates a new SQLite storage instance.
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	if strings.TrimSpace(dbPath) == "" {
		return nil, fmt.Errorf("dbPath cannot be empty")
	}

	// Ensure directory exists (skip for in-memory databases).
	if dbPath != ":memory:" {
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteStorage{
		db:     db,
		dbPath: dbPath,
	}, nil
}

var _ service.HistoryStore = (*SQLiteStorage)(nil)

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// SaveConversion records one converter invocation.
func (s *SQLiteStorage) SaveConversion(ctx context.Context, record model.ConversionRecord) error {
	query := `
		INSERT INTO conversions (folder, entry_file, output_file, exit_code, output, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		record.Folder,
		record.EntryFile,
		record.OutputFile,
		record.ExitCode,
		record.Output,
		record.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to save conversion record: %w", err)
	}
	return nil
}

// ListConversions returns records newest first, optionally filtered by
// folder name and capped by limit.
func (s *SQLiteStorage) ListConversions(ctx context.Context, filter service.HistoryFilter) ([]model.ConversionRecord, error) {
	query := `
		SELECT folder, entry_file, output_file, exit_code, output, created_at
		FROM conversions`
	args := make([]any, 0, 2)

	if filter.Folder != "" {
		query += ` WHERE folder = ?`
		args = append(args, filter.Folder)
	}
	query += ` ORDER BY created_at DESC, id DESC`
	if filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query conversions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []model.ConversionRecord
	for rows.Next() {
		var rec model.ConversionRecord
		if err := rows.Scan(
			&rec.Folder,
			&rec.EntryFile,
			&rec.OutputFile,
			&rec.ExitCode,
			&rec.Output,
			&rec.Timestamp,
		); err != nil {
			return nil, fmt.Errorf("failed to scan conversion record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate conversions: %w", err)
	}
	return records, nil
}
