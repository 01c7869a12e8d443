package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSetupTestRepo(t *testing.T) {
	dir := SetupTestRepo(t)

	gitDir := filepath.Join(dir, ".git")
	if _, err := os.Stat(gitDir); os.IsNotExist(err) {
		t.Error(".git directory does not exist")
	}

	readme := filepath.Join(dir, "README.md")
	if _, err := os.Stat(readme); os.IsNotExist(err) {
		t.Error("README.md does not exist")
	}

	if branch := CurrentBranch(t, dir); branch == "" {
		t.Error("CurrentBranch returned empty string")
	}
	if msg := LastCommitMessage(t, dir); msg != "Initial commit" {
		t.Errorf("LastCommitMessage = %q, want %q", msg, "Initial commit")
	}
}

func TestCommitFile(t *testing.T) {
	dir := SetupTestRepo(t)

	CommitFile(t, dir, "notes/todo.txt", "remember", "Add notes")

	content, err := os.ReadFile(filepath.Join(dir, "notes/todo.txt"))
	if err != nil {
		t.Fatalf("failed to read file: %v", err)
	}
	if string(content) != "remember" {
		t.Errorf("file content = %q, want %q", string(content), "remember")
	}
	if msg := LastCommitMessage(t, dir); msg != "Add notes" {
		t.Errorf("LastCommitMessage = %q, want %q", msg, "Add notes")
	}
}

func TestSetupBareRemote(t *testing.T) {
	dir := SetupTestRepo(t)
	bare := SetupBareRemote(t, dir)

	if got := Git(t, dir, "remote", "get-url", "origin"); got != bare {
		t.Errorf("origin url = %q, want %q", got, bare)
	}

	// Nothing pushed yet.
	if HasBranch(t, bare, "any-branch") {
		t.Error("bare remote unexpectedly has a branch")
	}

	Git(t, dir, "push", "origin", "HEAD:pushed-branch")
	if !HasBranch(t, bare, "pushed-branch") {
		t.Error("bare remote missing pushed branch")
	}
}

func TestTempPrefs(t *testing.T) {
	store := SeedPrefs(t, "ghp_testtoken", "Fixes #\n")

	token, err := store.Token()
	if err != nil {
		t.Fatalf("Token() error = %v", err)
	}
	if token != "ghp_testtoken" {
		t.Errorf("Token() = %q, want %q", token, "ghp_testtoken")
	}

	desc, err := store.DefaultDescription()
	if err != nil {
		t.Fatalf("DefaultDescription() error = %v", err)
	}
	if desc != "Fixes #" {
		t.Errorf("DefaultDescription() = %q, want %q", desc, "Fixes #")
	}
}

func TestTempPrefsLeavesEmptyUnset(t *testing.T) {
	store := SeedPrefs(t, "", "")

	if _, err := store.Token(); err == nil {
		t.Error("Token() error = nil, want not-set error")
	}
}

func TestTestContext(t *testing.T) {
	ctx := TestContext(t)

	select {
	case <-ctx.Done():
		t.Error("context is already done")
	default:
	}
}
