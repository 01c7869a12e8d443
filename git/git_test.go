package git

import (
	"errors"
	"strings"
	"testing"
)

// newMockContext builds a Context around a mock runner without the
// repository verification NewContext performs.
func newMockContext(t *testing.T, runner CommandRunner) *Context {
	t.Helper()
	return &Context{dir: t.TempDir(), runner: runner}
}

func TestNewContextVerifiesRepo(t *testing.T) {
	t.Run("repo", func(t *testing.T) {
		runner := NewMockRunner()
		runner.OnCommand("git", "rev-parse", "--git-dir").Return(".git", nil)

		ctx, err := NewContext(t.TempDir(), WithRunner(runner))
		if err != nil {
			t.Fatalf("NewContext: %v", err)
		}
		if ctx == nil {
			t.Fatal("NewContext returned nil context")
		}
	})

	t.Run("not a repo", func(t *testing.T) {
		runner := NewMockRunner()
		runner.OnCommand("git", "rev-parse", "--git-dir").
			Return("", &CommandError{Output: "fatal: not a git repository", Err: errors.New("exit status 128")})

		_, err := NewContext(t.TempDir(), WithRunner(runner))
		if !errors.Is(err, ErrNotGitRepo) {
			t.Errorf("err = %v, want ErrNotGitRepo", err)
		}
	})
}

func TestCurrentBranch(t *testing.T) {
	runner := NewMockRunner()
	runner.OnCommand("git", "rev-parse", "--abbrev-ref", "HEAD").Return("fix/handle-expired-tokens", nil)

	ctx := newMockContext(t, runner)
	branch, err := ctx.CurrentBranch()
	if err != nil {
		t.Fatalf("CurrentBranch: %v", err)
	}
	if branch != "fix/handle-expired-tokens" {
		t.Errorf("CurrentBranch = %q", branch)
	}
}

func TestCreateBranch(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		runner := NewMockRunner()
		runner.OnAnyCommand().Return("", nil)

		ctx := newMockContext(t, runner)
		if err := ctx.CreateBranch("feat/add-login"); err != nil {
			t.Fatalf("CreateBranch: %v", err)
		}
		if !runner.WasCalled("git", "branch", "feat/add-login") {
			t.Error("git branch not invoked with branch name")
		}
	})

	t.Run("already exists", func(t *testing.T) {
		runner := NewMockRunner()
		runner.OnAnyCommand().
			Return("", &CommandError{Output: "fatal: a branch named 'feat/add-login' already exists", Err: errors.New("exit status 128")})

		ctx := newMockContext(t, runner)
		err := ctx.CreateBranch("feat/add-login")
		if !errors.Is(err, ErrBranchExists) {
			t.Errorf("err = %v, want ErrBranchExists", err)
		}
	})
}

func TestCheckoutNew(t *testing.T) {
	runner := NewSequentialMockRunner()
	runner.AddOutput("", nil) // git branch feat/add-login
	runner.AddOutput("", nil) // git checkout feat/add-login

	ctx := newMockContext(t, runner)
	if err := ctx.CheckoutNew("feat/add-login"); err != nil {
		t.Fatalf("CheckoutNew: %v", err)
	}

	if len(runner.Calls) != 2 {
		t.Fatalf("calls = %d, want 2", len(runner.Calls))
	}
	if runner.Calls[0].Args[0] != "branch" || runner.Calls[1].Args[0] != "checkout" {
		t.Errorf("call order = %v, %v", runner.Calls[0].Args, runner.Calls[1].Args)
	}
}

func TestCommit(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		runner := NewMockRunner()
		runner.OnAnyCommand().Return("", nil)

		ctx := newMockContext(t, runner)
		if err := ctx.Commit("fix(auth): handle expired tokens"); err != nil {
			t.Fatalf("Commit: %v", err)
		}
		if !runner.WasCalled("git", "commit", "-m", "fix(auth): handle expired tokens") {
			t.Error("commit message not passed through verbatim")
		}
	})

	t.Run("nothing to commit", func(t *testing.T) {
		runner := NewMockRunner()
		runner.OnAnyCommand().
			Return("nothing to commit, working tree clean", &CommandError{Output: "nothing to commit, working tree clean", Err: errors.New("exit status 1")})

		ctx := newMockContext(t, runner)
		err := ctx.Commit("chore: noop")
		if !errors.Is(err, ErrNothingToCommit) {
			t.Errorf("err = %v, want ErrNothingToCommit", err)
		}
	})
}

func TestEmptyCommit(t *testing.T) {
	runner := NewMockRunner()
	runner.OnAnyCommand().Return("", nil)

	ctx := newMockContext(t, runner)
	if err := ctx.EmptyCommit("feat: add login [WEB-482]"); err != nil {
		t.Fatalf("EmptyCommit: %v", err)
	}
	if !runner.WasCalled("git", "commit", "--allow-empty", "-m", "feat: add login [WEB-482]") {
		t.Error("--allow-empty not passed")
	}
}

func TestPush(t *testing.T) {
	t.Run("with upstream", func(t *testing.T) {
		runner := NewMockRunner()
		runner.OnAnyCommand().Return("", nil)

		ctx := newMockContext(t, runner)
		if err := ctx.Push("origin", "feat/add-login", true); err != nil {
			t.Fatalf("Push: %v", err)
		}
		if !runner.WasCalled("git", "push", "-u", "origin", "feat/add-login") {
			t.Error("push -u not invoked")
		}
	})

	t.Run("without upstream", func(t *testing.T) {
		runner := NewMockRunner()
		runner.OnAnyCommand().Return("", nil)

		ctx := newMockContext(t, runner)
		if err := ctx.Push("origin", "main", false); err != nil {
			t.Fatalf("Push: %v", err)
		}
		if !runner.WasCalled("git", "push", "origin", "main") {
			t.Error("plain push not invoked")
		}
	})

	t.Run("failure wraps output", func(t *testing.T) {
		runner := NewMockRunner()
		runner.OnAnyCommand().
			Return("", &CommandError{Output: "remote: permission denied", Err: errors.New("exit status 128")})

		ctx := newMockContext(t, runner)
		err := ctx.Push("origin", "main", false)
		if err == nil {
			t.Fatal("expected error")
		}
		var gitErr *Error
		if !errors.As(err, &gitErr) {
			t.Fatalf("error type = %T, want *Error", err)
		}
		if gitErr.Op != "push" {
			t.Errorf("Op = %q, want push", gitErr.Op)
		}
	})
}

func TestRemoteURL(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		runner := NewMockRunner()
		runner.OnCommand("git", "remote", "get-url", "origin").Return("git@github.com:acme/webapp.git", nil)

		ctx := newMockContext(t, runner)
		url, err := ctx.RemoteURL("origin")
		if err != nil {
			t.Fatalf("RemoteURL: %v", err)
		}
		if url != "git@github.com:acme/webapp.git" {
			t.Errorf("RemoteURL = %q", url)
		}
	})

	t.Run("missing remote", func(t *testing.T) {
		runner := NewMockRunner()
		runner.OnAnyCommand().
			Return("", &CommandError{Output: "error: No such remote 'upstream'", Err: errors.New("exit status 2")})

		ctx := newMockContext(t, runner)
		_, err := ctx.RemoteURL("upstream")
		if !errors.Is(err, ErrNoRemote) {
			t.Errorf("err = %v, want ErrNoRemote", err)
		}
	})
}

func TestCurrentRepo(t *testing.T) {
	tests := []struct {
		name      string
		remoteURL string
		want      string
	}{
		{"ssh", "git@github.com:acme/webapp.git", "acme/webapp"},
		{"https", "https://github.com/acme/webapp.git", "acme/webapp"},
		{"https no suffix", "https://gitlab.com/acme/webapp", "acme/webapp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := NewMockRunner()
			runner.OnCommand("git", "remote", "get-url", "origin").Return(tt.remoteURL, nil)

			ctx := newMockContext(t, runner)
			repo, err := ctx.CurrentRepo("origin")
			if err != nil {
				t.Fatalf("CurrentRepo: %v", err)
			}
			if repo != tt.want {
				t.Errorf("CurrentRepo = %q, want %q", repo, tt.want)
			}
		})
	}

	t.Run("unparseable URL", func(t *testing.T) {
		runner := NewMockRunner()
		runner.OnCommand("git", "remote", "get-url", "origin").Return("not-a-remote-url", nil)

		ctx := newMockContext(t, runner)
		if _, err := ctx.CurrentRepo("origin"); err == nil {
			t.Error("expected error for unparseable URL")
		}
	})
}

func TestParseRepoURL(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		wantOwner string
		wantRepo  string
		wantErr   bool
	}{
		{"ssh", "git@github.com:acme/webapp.git", "acme", "webapp", false},
		{"https", "https://github.com/acme/webapp.git", "acme", "webapp", false},
		{"http", "http://gitlab.example.com/team/service", "team", "service", false},
		{"ssh bad path", "git@github.com:acme.git", "", "", true},
		{"garbage", "webapp", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner, repo, err := ParseRepoURL(tt.url)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if owner != tt.wantOwner || repo != tt.wantRepo {
				t.Errorf("ParseRepoURL = (%q, %q), want (%q, %q)", owner, repo, tt.wantOwner, tt.wantRepo)
			}
		})
	}
}
