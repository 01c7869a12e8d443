package main

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/randalmurphal/gitkick/prefs"
	"github.com/randalmurphal/gitkick/prompt"
	"github.com/randalmurphal/gitkick/testutil"
)

const githubRemote = "git@github.com:acme/webapp.git"

func TestResolveTokenFromStore(t *testing.T) {
	store := testutil.SeedPrefs(t, "ghp_stored", "")

	// An exhausted reader cancels any prompt, so success proves the
	// stored token short-circuits.
	prompter := prompt.New(strings.NewReader(""), io.Discard)

	token, err := resolveToken(store, prompter, githubRemote)
	if err != nil {
		t.Fatalf("resolveToken() error = %v", err)
	}
	if token != "ghp_stored" {
		t.Errorf("token = %q, want %q", token, "ghp_stored")
	}
}

func TestResolveTokenFromEnv(t *testing.T) {
	store := testutil.TempPrefs(t)
	t.Setenv("GITHUB_TOKEN", "ghp_env")

	prompter := prompt.New(strings.NewReader(""), io.Discard)

	token, err := resolveToken(store, prompter, githubRemote)
	if err != nil {
		t.Fatalf("resolveToken() error = %v", err)
	}
	if token != "ghp_env" {
		t.Errorf("token = %q, want %q", token, "ghp_env")
	}

	// The environment token is not persisted.
	if _, err := store.Token(); !errors.Is(err, prefs.ErrTokenNotSet) {
		t.Errorf("Token() error = %v, want ErrTokenNotSet", err)
	}
}

func TestResolveTokenPromptsAndStores(t *testing.T) {
	store := testutil.TempPrefs(t)
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("GIT_TOKEN", "")

	var out strings.Builder
	prompter := prompt.New(strings.NewReader("ghp_entered\n"), &out)

	token, err := resolveToken(store, prompter, githubRemote)
	if err != nil {
		t.Fatalf("resolveToken() error = %v", err)
	}
	if token != "ghp_entered" {
		t.Errorf("token = %q, want %q", token, "ghp_entered")
	}
	if !strings.Contains(out.String(), "Github token:") {
		t.Errorf("output = %q, want token prompt", out.String())
	}

	stored, err := store.Token()
	if err != nil {
		t.Fatalf("Token() error = %v", err)
	}
	if stored != "ghp_entered" {
		t.Errorf("stored token = %q, want %q", stored, "ghp_entered")
	}
}

func TestResolveTokenEmptyAnswer(t *testing.T) {
	store := testutil.TempPrefs(t)
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("GIT_TOKEN", "")

	prompter := prompt.New(strings.NewReader("\n"), io.Discard)

	_, err := resolveToken(store, prompter, githubRemote)
	if !errors.Is(err, prefs.ErrTokenNotSet) {
		t.Fatalf("resolveToken() error = %v, want ErrTokenNotSet", err)
	}
}

func TestResolveTokenCanceled(t *testing.T) {
	store := testutil.TempPrefs(t)
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("GIT_TOKEN", "")

	prompter := prompt.New(strings.NewReader(""), io.Discard)

	_, err := resolveToken(store, prompter, githubRemote)
	if !errors.Is(err, prompt.ErrCanceled) {
		t.Fatalf("resolveToken() error = %v, want ErrCanceled", err)
	}
}
