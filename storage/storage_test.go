package storage

import "testing"

func TestStoreRoundTrip(t *testing.T) {
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	if got := s.Get("token"); got != "" {
		t.Errorf("Get on empty store = %q, want \"\"", got)
	}
	if s.Has("token") {
		t.Error("Has on empty store = true")
	}

	if err := s.Set("token", "abc123"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got := s.Get("token"); got != "abc123" {
		t.Errorf("Get = %q, want %q", got, "abc123")
	}
	if !s.Has("token") {
		t.Error("Has after Set = false")
	}

	if err := s.Set("token", "other"); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	if got := s.Get("token"); got != "other" {
		t.Errorf("Get after overwrite = %q, want %q", got, "other")
	}

	if err := s.Delete("token"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if s.Has("token") {
		t.Error("Has after Delete = true")
	}
	if err := s.Delete("token"); err != nil {
		t.Errorf("Delete twice: %v", err)
	}
}

func TestStoreSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.Set("currency", "EUR"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	again, err := Open(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if got := again.Get("currency"); got != "EUR" {
		t.Errorf("Get after reopen = %q, want %q", got, "EUR")
	}
}
