// Package db provides SQLite storage for locally persisted client state.
package db

// Schema defines the SQL statements to create database tables.
const Schema = `
-- Client state table
-- Holds the small set of opaque values the client persists between runs
-- (currently the bearer token and the role string).
CREATE TABLE IF NOT EXISTS client_state (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
`

// InitializeSchema initializes the database schema.
// It creates all tables if they don't exist.
func InitializeSchema(conn *Connection) error {
	if _, err := conn.Exec(Schema); err != nil {
		return err
	}
	return nil
}
