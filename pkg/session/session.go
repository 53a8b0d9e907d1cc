// Package session holds the authenticated user's token and role for the
// lifetime of a client invocation, backed by a pluggable persistence store.
// The session object is passed explicitly to every component that needs it;
// there is no package-level global.
package session

import (
	"fmt"
	"strings"
)

// Role is the access level reported by the backend at login.
type Role string

const (
	RoleNone       Role = ""
	RoleEmployee   Role = "employee"
	RoleSupervisor Role = "supervisor"
	RoleAdmin      Role = "admin"
)

// ParseRole normalizes a backend role string to a Role.
// Unrecognized values map to RoleNone.
func ParseRole(s string) Role {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleEmployee:
		return RoleEmployee
	case RoleSupervisor:
		return RoleSupervisor
	case RoleAdmin:
		return RoleAdmin
	default:
		return RoleNone
	}
}

// Store persists the session between client invocations.
// Only two opaque values are ever stored: the bearer token and the role.
type Store interface {
	// Load returns the persisted token and role, empty strings if absent.
	Load() (token, role string, err error)

	// Save persists the token and role.
	Save(token, role string) error

	// Clear removes the persisted token and role.
	Clear() error
}

// Session is the process-wide authentication context, consulted before
// every authenticated request and every role-gated action.
type Session struct {
	store Store
	token string
	role  Role
}

// New creates a Session restored from the given store.
func New(store Store) (*Session, error) {
	token, role, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	return &Session{
		store: store,
		token: token,
		role:  ParseRole(role),
	}, nil
}

// Establish records the token and role obtained at login.
func (s *Session) Establish(token string, role Role) error {
	if err := s.store.Save(token, string(role)); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	s.token = token
	s.role = role
	return nil
}

// Clear discards the session. Called on logout, after a successful password
// change (the user must re-authenticate), and after account deletion.
func (s *Session) Clear() error {
	if err := s.store.Clear(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	s.token = ""
	s.role = RoleNone
	return nil
}

// Token returns the current bearer token, empty if unauthenticated.
func (s *Session) Token() string {
	return s.token
}

// Role returns the current role, RoleNone if unauthenticated.
func (s *Session) Role() Role {
	return s.role
}

// Authenticated reports whether a token is present. Token expiry is only
// discovered when a request fails; see eeris.ErrUnauthorized.
func (s *Session) Authenticated() bool {
	return s.token != ""
}

// CanReview reports whether the user may approve or reject receipts.
func (s *Session) CanReview() bool {
	return s.role == RoleSupervisor || s.role == RoleAdmin
}

// CanAdminister reports whether the user may manage user accounts and
// delete receipts.
func (s *Session) CanAdminister() bool {
	return s.role == RoleAdmin
}

// SeesAllHistory reports whether expense history covers all users
// rather than only the current user's records.
func (s *Session) SeesAllHistory() bool {
	return s.CanReview()
}
