package repository

import (
	"database/sql"
	"time"

	_ "modernc.org/sqlite"
)

// Timestamps are stored as Unix seconds so range predicates compare
// numerically regardless of driver formatting.
const schema = `
CREATE TABLE IF NOT EXISTS shared_items (
	id TEXT PRIMARY KEY,
	type TEXT NOT NULL,
	content TEXT NOT NULL,
	file_name TEXT NOT NULL DEFAULT '',
	file_size INTEGER NOT NULL DEFAULT 0,
	mime_type TEXT NOT NULL DEFAULT '',
	blob_url TEXT NOT NULL DEFAULT '',
	network_id TEXT NOT NULL,
	created_at INTEGER NOT NULL,
	expires_at INTEGER NOT NULL,
	download_count INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_items_network_created ON shared_items(network_id, created_at DESC);
CREATE INDEX IF NOT EXISTS idx_items_expires ON shared_items(expires_at);
CREATE INDEX IF NOT EXISTS idx_items_created ON shared_items(created_at);

CREATE TABLE IF NOT EXISTS user_sessions (
	network_id TEXT NOT NULL,
	client_ip TEXT NOT NULL,
	user_agent TEXT NOT NULL DEFAULT '',
	last_seen INTEGER NOT NULL,
	PRIMARY KEY (network_id, client_ip)
);

CREATE INDEX IF NOT EXISTS idx_sessions_last_seen ON user_sessions(last_seen);
`

// Open opens the sqlite database at the given path and ensures the schema
// exists.
func Open(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	// Configure connection pool
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}
