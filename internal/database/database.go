package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
)

type Database interface {
	Connect(path string) (*sql.DB, error)
}

type SQLiteDatabase struct{}

func NewSQLiteDatabase() *SQLiteDatabase {
	return &SQLiteDatabase{}
}

func (s *SQLiteDatabase) Connect(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("db directory error: %w", err)
		}
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("db connection error: %w", err)
	}

	err = conn.Ping()
	if err != nil {
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	if err := initSchema(conn); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return conn, nil
}

func initSchema(conn *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS companies (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			country TEXT,
			industry TEXT,
			website TEXT,
			traded_as TEXT,
			number_of_employees INTEGER,
			revenue TEXT
		);`,
		`CREATE INDEX IF NOT EXISTS idx_companies_name ON companies(name COLLATE NOCASE);`,
		`CREATE TABLE IF NOT EXISTS ingest_logs (
			id TEXT PRIMARY KEY,
			received_at TEXT NOT NULL,
			payload TEXT NOT NULL
		);`,
	}

	for _, stmt := range stmts {
		if _, err := conn.Exec(stmt); err != nil {
			return fmt.Errorf("init schema failed: %w", err)
		}
	}

	return nil
}
