package session

import "testing"

// stubStore is an in-memory Store for tests.
type stubStore struct {
	token string
	role  string
}

func (s *stubStore) Load() (string, string, error) { return s.token, s.role, nil }

func (s *stubStore) Save(token, role string) error {
	s.token, s.role = token, role
	return nil
}

func (s *stubStore) Clear() error {
	s.token, s.role = "", ""
	return nil
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		input    string
		expected Role
	}{
		{"employee", RoleEmployee},
		{"Supervisor", RoleSupervisor},
		{"ADMIN", RoleAdmin},
		{"  admin  ", RoleAdmin},
		{"manager", RoleNone},
		{"", RoleNone},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseRole(tt.input); got != tt.expected {
				t.Errorf("ParseRole(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestEstablishAndRestore(t *testing.T) {
	store := &stubStore{}

	sess, err := New(store)
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}
	if sess.Authenticated() {
		t.Error("fresh session should not be authenticated")
	}

	if err := sess.Establish("tok-1", RoleSupervisor); err != nil {
		t.Fatalf("Establish() returned error: %v", err)
	}
	if !sess.Authenticated() {
		t.Error("session should be authenticated after Establish")
	}
	if sess.Token() != "tok-1" || sess.Role() != RoleSupervisor {
		t.Errorf("session = (%q, %q)", sess.Token(), sess.Role())
	}

	// A new session over the same store restores the state.
	restored, err := New(store)
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}
	if restored.Token() != "tok-1" || restored.Role() != RoleSupervisor {
		t.Errorf("restored session = (%q, %q)", restored.Token(), restored.Role())
	}
}

func TestClearLeavesUnauthenticated(t *testing.T) {
	store := &stubStore{token: "tok", role: "admin"}

	sess, err := New(store)
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}
	if err := sess.Clear(); err != nil {
		t.Fatalf("Clear() returned error: %v", err)
	}

	if sess.Authenticated() {
		t.Error("cleared session should not be authenticated")
	}
	if sess.Role() != RoleNone {
		t.Errorf("cleared session role = %q, expected RoleNone", sess.Role())
	}
	if sess.CanReview() || sess.CanAdminister() || sess.SeesAllHistory() {
		t.Error("cleared session should pass no role gate")
	}
	if store.token != "" || store.role != "" {
		t.Error("Clear() should remove persisted values")
	}
}

func TestRoleGates(t *testing.T) {
	tests := []struct {
		role       Role
		review     bool
		administer bool
		allHistory bool
	}{
		{RoleEmployee, false, false, false},
		{RoleSupervisor, true, false, true},
		{RoleAdmin, true, true, true},
		{RoleNone, false, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			sess, err := New(&stubStore{token: "tok", role: string(tt.role)})
			if err != nil {
				t.Fatalf("New() returned error: %v", err)
			}

			if got := sess.CanReview(); got != tt.review {
				t.Errorf("CanReview() = %v, expected %v", got, tt.review)
			}
			if got := sess.CanAdminister(); got != tt.administer {
				t.Errorf("CanAdminister() = %v, expected %v", got, tt.administer)
			}
			if got := sess.SeesAllHistory(); got != tt.allHistory {
				t.Errorf("SeesAllHistory() = %v, expected %v", got, tt.allHistory)
			}
		})
	}
}
