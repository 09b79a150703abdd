// Package store persists user profiles as a single JSON mapping from user id
// to profile. The whole file is read and rewritten on every mutation; that is
// the intended model — dispatch is single-threaded, so callers run the full
// load→mutate→save sequence without interleaving.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Store reads and writes the profile mapping at a fixed path.
type Store struct {
	path string
}

// Open creates a Store for the given file path, ensuring its directory
// exists. The file itself is created lazily on first Save.
func Open(path string) (*Store, error) {
	if err := EnsureDir(path); err != nil {
		return nil, fmt.Errorf("ensure store dir: %w", err)
	}
	return &Store{path: path}, nil
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Load reads the full profile mapping. A missing file is an empty store,
// not an error.
func (s *Store) Load() (map[string]*Profile, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]*Profile{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read store: %w", err)
	}

	users := map[string]*Profile{}
	if len(data) == 0 {
		return users, nil
	}
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("decode store: %w", err)
	}
	return users, nil
}

// Save rewrites the store with the given mapping. The write goes through a
// temp file and rename so a crash mid-write cannot leave a truncated store.
func (s *Store) Save(users map[string]*Profile) error {
	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write store: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace store: %w", err)
	}
	return nil
}

// Reset clears the store to an empty mapping.
func (s *Store) Reset() error {
	return s.Save(map[string]*Profile{})
}

// Update runs the whole load→mutate→save sequence: fn receives the current
// mapping and mutates it in place.
func (s *Store) Update(fn func(users map[string]*Profile) error) error {
	users, err := s.Load()
	if err != nil {
		return err
	}
	if err := fn(users); err != nil {
		return err
	}
	return s.Save(users)
}

// DefaultStorePath resolves the store file path in priority order:
// 1. TUTORBOT_DATA environment variable (a file path)
// 2. $XDG_DATA_HOME/tutorbot/users.json
// 3. ~/.local/share/tutorbot/users.json
func DefaultStorePath() (string, error) {
	if p := os.Getenv("TUTORBOT_DATA"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "tutorbot", "users.json")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
