package pr

import "errors"

// Sentinel errors shared by every provider. The GitHub and GitLab
// implementations translate their platform's API responses into these
// so callers never need provider-specific handling.
var (
	// ErrUnknownProvider means the remote host is neither GitHub nor
	// GitLab.
	ErrUnknownProvider = errors.New("unknown git provider")

	// ErrBadRepo means the repository identity is not "owner/repo".
	ErrBadRepo = errors.New("repository identity must be owner/repo")

	// ErrExists means the head branch already has an open pull request.
	ErrExists = errors.New("pull request already exists for this branch")

	// ErrNotFound means no pull request matches the lookup.
	ErrNotFound = errors.New("pull request not found")

	// ErrNoChanges means the hosting provider rejected the pull request
	// because head and base are identical.
	ErrNoChanges = errors.New("no changes between branches")
)
