// Package storage persists flat string values across runs, one file per key.
// It plays the role the browser's localStorage plays for the original
// dashboard: session fields and user preferences survive a restart without
// re-authentication.
package storage

import (
	"os"
	"path/filepath"
	"strings"
)

// Store is a durable key-value store rooted at a directory. Values are flat
// strings; a missing key reads as the empty string.
type Store struct {
	dir string
}

// DefaultDir resolves the storage directory: MARKETFOLIO_HOME if set,
// otherwise a "marketfolio" folder under the user config dir.
func DefaultDir() string {
	if home := os.Getenv("MARKETFOLIO_HOME"); home != "" {
		return home
	}
	cfg, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "marketfolio")
	}
	return filepath.Join(cfg, "marketfolio")
}

// Open creates the directory if needed and returns a store over it.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(key string) string { return filepath.Join(s.dir, key) }

// Get returns the stored value for key, or "" if absent or unreadable.
func (s *Store) Get(key string) string {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return ""
	}
	return strings.TrimRight(string(data), "\n")
}

// Has reports whether the key is present.
func (s *Store) Has(key string) bool {
	_, err := os.Stat(s.path(key))
	return err == nil
}

// Set writes the value for key, replacing any previous one.
func (s *Store) Set(key, value string) error {
	return os.WriteFile(s.path(key), []byte(value), 0600)
}

// Delete removes the key. Deleting an absent key is not an error.
func (s *Store) Delete(key string) error {
	err := os.Remove(s.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
