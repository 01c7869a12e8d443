// Package testutil provides fixtures for exercising gitkick against
// real temporary git repositories and scratch preference stores.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/randalmurphal/gitkick/prefs"
)

// TempPrefs returns a preference store rooted in a fresh temp
// directory, cleaned up when the test ends.
func TempPrefs(t *testing.T) *prefs.Store {
	t.Helper()
	return prefs.At(filepath.Join(t.TempDir(), prefs.DirName))
}

// SeedPrefs returns a temp preference store pre-populated with a token
// and a default description. Empty values are left unset.
func SeedPrefs(t *testing.T, token, description string) *prefs.Store {
	t.Helper()

	store := TempPrefs(t)
	if token != "" {
		if _, err := store.SetToken(token); err != nil {
			t.Fatalf("seed token: %v", err)
		}
	}
	if description != "" {
		if _, err := store.SetDefaultDescription(description); err != nil {
			t.Fatalf("seed default description: %v", err)
		}
	}
	return store
}
