package db

import (
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) *Connection {
	t.Helper()

	conn, err := Open(filepath.Join(t.TempDir(), "state", "eeris.db"))
	if err != nil {
		t.Fatalf("Open() returned error: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return conn
}

func TestClientStateGetMissing(t *testing.T) {
	state := NewClientState(openTestDB(t))

	value, err := state.Get(KeyToken)
	if err != nil {
		t.Fatalf("Get() returned error: %v", err)
	}
	if value != "" {
		t.Errorf("Get() on a missing key = %q, expected empty string", value)
	}
}

func TestClientStateSetGet(t *testing.T) {
	state := NewClientState(openTestDB(t))

	if err := state.Set(KeyToken, "abc123"); err != nil {
		t.Fatalf("Set() returned error: %v", err)
	}
	if err := state.Set(KeyToken, "def456"); err != nil {
		t.Fatalf("Set() (overwrite) returned error: %v", err)
	}

	value, err := state.Get(KeyToken)
	if err != nil {
		t.Fatalf("Get() returned error: %v", err)
	}
	if value != "def456" {
		t.Errorf("Get() = %q, expected latest value", value)
	}
}

func TestClientStateSetAllAndDelete(t *testing.T) {
	state := NewClientState(openTestDB(t))

	if err := state.SetAll(map[string]string{KeyToken: "tok", KeyRole: "admin"}); err != nil {
		t.Fatalf("SetAll() returned error: %v", err)
	}

	role, err := state.Get(KeyRole)
	if err != nil {
		t.Fatalf("Get() returned error: %v", err)
	}
	if role != "admin" {
		t.Errorf("Get(role) = %q", role)
	}

	if err := state.Delete(KeyToken, KeyRole); err != nil {
		t.Fatalf("Delete() returned error: %v", err)
	}

	for _, key := range []string{KeyToken, KeyRole} {
		value, err := state.Get(key)
		if err != nil {
			t.Fatalf("Get() returned error: %v", err)
		}
		if value != "" {
			t.Errorf("Get(%q) after Delete = %q, expected empty", key, value)
		}
	}
}

func TestClientStatePersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "eeris.db")

	conn, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() returned error: %v", err)
	}
	if err := NewClientState(conn).Set(KeyRole, "employee"); err != nil {
		t.Fatalf("Set() returned error: %v", err)
	}
	conn.Close()

	conn, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen returned error: %v", err)
	}
	defer conn.Close()

	value, err := NewClientState(conn).Get(KeyRole)
	if err != nil {
		t.Fatalf("Get() returned error: %v", err)
	}
	if value != "employee" {
		t.Errorf("Get() after reopen = %q", value)
	}
}
