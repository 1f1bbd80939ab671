package sqlite

import (
	"database/sql"

	"github.com/screenlog/screenlog/pkg/storage"
	_ "github.com/mattn/go-sqlite3"
)

type SQLite struct {
	db *sql.DB
}

// New creates a new sqlite database given a path to the database file
func New(filePath string) (storage.Storage, error) {
	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, err
	}

	// sqlite allows a single writer; a second pooled connection would also
	// see a different database entirely when filePath is :memory:
	db.SetMaxOpenConns(1)

	return &SQLite{
		db: db,
	}, nil
}
