package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// RequireGit skips the test when no git binary is on PATH.
func RequireGit(t *testing.T) {
	t.Helper()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
}

// SetupTestRepo creates a temporary git repository with one commit.
// The repository is cleaned up when the test ends.
func SetupTestRepo(t *testing.T) string {
	t.Helper()
	RequireGit(t)

	dir := t.TempDir()

	Git(t, dir, "init")
	Git(t, dir, "config", "user.email", "test@test.com")
	Git(t, dir, "config", "user.name", "Test User")

	readme := filepath.Join(dir, "README.md")
	if err := os.WriteFile(readme, []byte("# Test Repository\n"), 0o644); err != nil {
		t.Fatalf("failed to create README: %v", err)
	}

	Git(t, dir, "add", ".")
	Git(t, dir, "commit", "-m", "Initial commit")

	return dir
}

// SetupBareRemote creates a bare repository and wires it up as the
// "origin" remote of repoDir, so pushes stay on the local disk.
func SetupBareRemote(t *testing.T, repoDir string) string {
	t.Helper()

	bare := filepath.Join(t.TempDir(), "remote.git")
	if err := os.MkdirAll(bare, 0o755); err != nil {
		t.Fatalf("failed to create bare repo dir: %v", err)
	}
	Git(t, bare, "init", "--bare")

	AddRemote(t, repoDir, "origin", bare)
	return bare
}

// WriteFile writes a working-tree file without staging or committing.
func WriteFile(t *testing.T, repoDir, path, content string) {
	t.Helper()

	fullPath := filepath.Join(repoDir, path)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		t.Fatalf("failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(fullPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
}

// CommitFile creates or updates a file and commits it.
func CommitFile(t *testing.T, repoDir, path, content, message string) {
	t.Helper()

	WriteFile(t, repoDir, path, content)
	Git(t, repoDir, "add", path)
	Git(t, repoDir, "commit", "-m", message)
}

// AddRemote adds a remote to the repository.
func AddRemote(t *testing.T, repoDir, name, url string) {
	t.Helper()
	Git(t, repoDir, "remote", "add", name, url)
}

// CurrentBranch returns the checked-out branch name.
func CurrentBranch(t *testing.T, repoDir string) string {
	t.Helper()
	return Git(t, repoDir, "branch", "--show-current")
}

// LastCommitMessage returns the subject line of the HEAD commit.
func LastCommitMessage(t *testing.T, repoDir string) string {
	t.Helper()
	return Git(t, repoDir, "log", "-1", "--pretty=%s")
}

// HasBranch reports whether the repository has the named branch.
func HasBranch(t *testing.T, repoDir, branch string) bool {
	t.Helper()

	cmd := exec.Command("git", "rev-parse", "--verify", "refs/heads/"+branch)
	cmd.Dir = repoDir
	return cmd.Run() == nil
}

// Git runs a git command in dir, failing the test on error. Returns
// the trimmed combined output.
func Git(t *testing.T, dir string, args ...string) string {
	t.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_NAME=Test User",
		"GIT_AUTHOR_EMAIL=test@test.com",
		"GIT_COMMITTER_NAME=Test User",
		"GIT_COMMITTER_EMAIL=test@test.com",
	)

	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %v failed: %v\n%s", args, err, output)
	}
	return strings.TrimSpace(string(output))
}
