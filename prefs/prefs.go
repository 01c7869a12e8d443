package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Default storage layout under the user's home directory.
const (
	// DirName is the preference directory created under $HOME.
	DirName = ".gitkick"

	tokenFile       = "token"
	descriptionFile = "desc.md"
)

// Preference read errors
var (
	// ErrTokenNotSet indicates no token has been stored yet.
	ErrTokenNotSet = errors.New("token not set")

	// ErrDescriptionNotSet indicates no default description has been stored yet.
	ErrDescriptionNotSet = errors.New("default description not set")
)

// Store reads and writes preference files in a single directory.
type Store struct {
	dir string
}

// Open returns a Store rooted at ~/.gitkick.
func Open() (*Store, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	return At(filepath.Join(home, DirName)), nil
}

// At returns a Store rooted at an explicit directory.
func At(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the directory the store reads and writes.
func (s *Store) Dir() string {
	return s.dir
}

// Token returns the stored access token.
// Returns ErrTokenNotSet if no token has been written.
func (s *Store) Token() (string, error) {
	return s.read(tokenFile, ErrTokenNotSet)
}

// SetToken stores the access token, creating the preference directory
// if needed. Input that is empty after trimming is a no-op and reports
// written = false.
func (s *Store) SetToken(token string) (bool, error) {
	return s.write(tokenFile, token)
}

// DefaultDescription returns the stored default pull request description.
// Returns ErrDescriptionNotSet if no description has been written.
func (s *Store) DefaultDescription() (string, error) {
	return s.read(descriptionFile, ErrDescriptionNotSet)
}

// SetDefaultDescription stores the default pull request description.
// Empty input is a no-op, as is input identical to the stored text;
// both report written = false.
func (s *Store) SetDefaultDescription(text string) (bool, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false, nil
	}
	if current, err := s.read(descriptionFile, ErrDescriptionNotSet); err == nil && current == trimmed {
		return false, nil
	}
	return s.write(descriptionFile, trimmed)
}

func (s *Store) read(name string, notSet error) (string, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return "", notSet
		}
		return "", fmt.Errorf("read %s: %w", name, err)
	}
	return string(data), nil
}

func (s *Store) write(name, value string) (bool, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return false, nil
	}
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return false, fmt.Errorf("create %s: %w", s.dir, err)
	}
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, []byte(trimmed), 0o600); err != nil {
		return false, fmt.Errorf("write %s: %w", path, err)
	}
	return true, nil
}
