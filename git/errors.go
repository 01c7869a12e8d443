package git

import "errors"

// Sentinel errors for the failure modes callers branch on. Context
// methods wrap them in *Error, so match with errors.Is.
var (
	// ErrNotGitRepo means the path is outside any git repository.
	ErrNotGitRepo = errors.New("not a git repository")

	// ErrBranchExists means the branch to be created is already taken.
	ErrBranchExists = errors.New("branch already exists")

	// ErrNothingToCommit means the working tree was clean when a
	// commit was attempted.
	ErrNothingToCommit = errors.New("nothing to commit")

	// ErrNoRemote means the named remote is not configured for the
	// repository.
	ErrNoRemote = errors.New("remote not configured")
)

// Error carries what a failed git operation printed. Op names the
// high-level operation ("commit", "push"), not the git invocation.
type Error struct {
	Op     string
	Output string
	Err    error
}

func (e *Error) Error() string {
	if e.Output != "" {
		return e.Op + ": " + e.Output
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}
