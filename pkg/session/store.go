package session

import "github.com/eeris-project/eeris-cli/pkg/db"

// DBStore persists the session in the local SQLite client state table.
type DBStore struct {
	state *db.ClientState
}

// NewDBStore creates a DBStore on top of an open database connection.
func NewDBStore(conn *db.Connection) *DBStore {
	return &DBStore{state: db.NewClientState(conn)}
}

// Load returns the persisted token and role.
func (s *DBStore) Load() (string, string, error) {
	token, err := s.state.Get(db.KeyToken)
	if err != nil {
		return "", "", err
	}

	role, err := s.state.Get(db.KeyRole)
	if err != nil {
		return "", "", err
	}

	return token, role, nil
}

// Save persists the token and role atomically.
func (s *DBStore) Save(token, role string) error {
	return s.state.SetAll(map[string]string{
		db.KeyToken: token,
		db.KeyRole:  role,
	})
}

// Clear removes the persisted token and role atomically.
func (s *DBStore) Clear() error {
	return s.state.Delete(db.KeyToken, db.KeyRole)
}
