package db

import (
	"database/sql"
	"fmt"
)

// Well-known client state keys.
const (
	KeyToken = "token"
	KeyRole  = "role"
)

// ClientState manages the persisted key-value client state.
type ClientState struct {
	conn *Connection
}

// NewClientState creates a new ClientState instance.
func NewClientState(conn *Connection) *ClientState {
	return &ClientState{conn: conn}
}

// Get retrieves a state value. Returns an empty string if the key is absent.
func (s *ClientState) Get(key string) (string, error) {
	query := `SELECT value FROM client_state WHERE key = ?`

	var value string
	err := s.conn.QueryRow(query, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get client state %q: %w", key, err)
	}

	return value, nil
}

// Set stores a state value, replacing any previous value for the key.
func (s *ClientState) Set(key, value string) error {
	query := `
		INSERT INTO client_state (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = CURRENT_TIMESTAMP
	`

	_, err := s.conn.Exec(query, key, value)
	if err != nil {
		return fmt.Errorf("failed to set client state %q: %w", key, err)
	}

	return nil
}

// SetAll stores multiple state values atomically.
func (s *ClientState) SetAll(values map[string]string) error {
	return s.conn.Transaction(func(tx *sql.Tx) error {
		query := `
			INSERT INTO client_state (key, value, updated_at)
			VALUES (?, ?, CURRENT_TIMESTAMP)
			ON CONFLICT(key) DO UPDATE SET
				value = excluded.value,
				updated_at = CURRENT_TIMESTAMP
		`
		for key, value := range values {
			if _, err := tx.Exec(query, key, value); err != nil {
				return fmt.Errorf("failed to set client state %q: %w", key, err)
			}
		}
		return nil
	})
}

// Delete removes state values for the given keys atomically.
// Missing keys are ignored.
func (s *ClientState) Delete(keys ...string) error {
	return s.conn.Transaction(func(tx *sql.Tx) error {
		for _, key := range keys {
			if _, err := tx.Exec(`DELETE FROM client_state WHERE key = ?`, key); err != nil {
				return fmt.Errorf("failed to delete client state %q: %w", key, err)
			}
		}
		return nil
	})
}
