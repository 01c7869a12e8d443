package errors

import (
	"errors"
	"strings"

	"github.com/randalmurphal/gitkick/git"
	"github.com/randalmurphal/gitkick/prefs"
	"github.com/randalmurphal/gitkick/pr"
)

// CLIError wraps an error with user-friendly context and a suggestion.
type CLIError struct {
	// Err is the underlying error
	Err error

	// Message is a user-friendly description of what went wrong
	Message string

	// Suggestion is an actionable hint for the user
	Suggestion string

	// Details provides additional context (optional)
	Details string
}

func (e *CLIError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Message)

	if e.Details != "" {
		sb.WriteString("\n")
		sb.WriteString(e.Details)
	}

	if e.Suggestion != "" {
		sb.WriteString("\n\n")
		sb.WriteString(e.Suggestion)
	}

	return sb.String()
}

func (e *CLIError) Unwrap() error {
	return e.Err
}

// Explain maps known failures to a message-plus-suggestion the CLI can
// print. Unrecognized errors pass through unchanged. The original
// error stays reachable through Unwrap.
func Explain(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, git.ErrNotGitRepo):
		return &CLIError{
			Err:        err,
			Message:    "This command must be run from within a git repository.",
			Suggestion: "Move to a repository and try again.",
		}

	case errors.Is(err, git.ErrBranchExists):
		return &CLIError{
			Err:        err,
			Message:    "A branch with that name already exists.",
			Suggestion: "Check it out directly, or pick a different name.",
		}

	case errors.Is(err, git.ErrNothingToCommit):
		return &CLIError{
			Err:        err,
			Message:    "There is nothing to commit.",
			Suggestion: "Make your changes first, then kick off the branch.",
		}

	case errors.Is(err, git.ErrNoRemote):
		return &CLIError{
			Err:        err,
			Message:    "The configured remote does not exist.",
			Suggestion: "Add it with 'git remote add', or point gitkick at another one:\n  gitkick config set remote <name>",
		}

	case errors.Is(err, prefs.ErrTokenNotSet):
		return &CLIError{
			Err:        err,
			Message:    "No access token is available.",
			Suggestion: "Store one with 'gitkick token', or export GITHUB_TOKEN / GITLAB_TOKEN.",
		}

	case errors.Is(err, pr.ErrExists):
		return &CLIError{
			Err:        err,
			Message:    "A pull request for this branch already exists.",
			Suggestion: "Open the existing pull request on the hosting provider.",
		}

	case errors.Is(err, pr.ErrNoChanges):
		return &CLIError{
			Err:        err,
			Message:    "The hosting provider found no commits between the branches.",
			Suggestion: "Push a commit to the branch and try again.",
		}

	case errors.Is(err, pr.ErrUnknownProvider):
		return &CLIError{
			Err:        err,
			Message:    "The remote is not hosted on a supported provider.",
			Suggestion: "Pull requests can be created on GitHub and GitLab.",
		}

	case errors.Is(err, pr.ErrBadRepo):
		return &CLIError{
			Err:        err,
			Message:    "Could not work out the repository identity from the remote URL.",
			Suggestion: "Check the remote URL with 'git remote -v'.",
		}

	case IsAuthError(err):
		return &CLIError{
			Err:        err,
			Message:    "The hosting provider rejected your access token.",
			Details:    err.Error(),
			Suggestion: "Store a fresh token with 'gitkick token'.",
		}

	case IsConnectionError(err):
		return &CLIError{
			Err:        err,
			Message:    "Cannot reach the hosting provider.",
			Suggestion: "Check that:\n  - Your network connection is working\n  - The provider is reachable from this machine",
		}
	}

	return err
}
