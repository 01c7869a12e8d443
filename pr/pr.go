package pr

import (
	"context"
	"strings"
	"time"
)

// State represents the state of a pull request.
type State string

const (
	StateOpen   State = "open"
	StateClosed State = "closed"
	StateMerged State = "merged"
)

// Provider creates and inspects pull requests.
// Implementations exist for GitHub and GitLab.
type Provider interface {
	// CreatePR creates a new pull request.
	CreatePR(ctx context.Context, opts Options) (*PullRequest, error)

	// GetPR retrieves a pull request by number.
	GetPR(ctx context.Context, id int) (*PullRequest, error)
}

// Options configures pull request creation.
type Options struct {
	Title      string // PR title (required)
	Body       string // PR description (markdown)
	Base       string // Target branch (default: "main")
	Head       string // Source branch (required)
	Draft      bool   // Create as draft
	SelfAssign bool   // Assign the authenticated user after creation
}

// PullRequest represents a created pull request.
type PullRequest struct {
	ID        int        // PR number/IID
	URL       string     // Web URL
	Title     string     // PR title
	Body      string     // PR description
	State     State      // Current state
	Draft     bool       // Whether it's a draft
	Head      string     // Source branch
	Base      string     // Target branch
	CreatedAt time.Time  // Creation time
	MergedAt  *time.Time // Merge time (nil if not merged)
	Assignees []string   // Assigned users
}

// Platform identifies a hosting provider.
type Platform string

const (
	PlatformGitHub Platform = "github"
	PlatformGitLab Platform = "gitlab"
)

// Detect determines the hosting platform from a remote URL.
func Detect(remoteURL string) (Platform, error) {
	lower := strings.ToLower(remoteURL)

	if strings.Contains(lower, "github.com") {
		return PlatformGitHub, nil
	}
	if strings.Contains(lower, "gitlab") {
		return PlatformGitLab, nil
	}
	return "", ErrUnknownProvider
}

// FromRemote creates the provider matching a remote URL.
// repo is the already-resolved "owner/repo" identity and token the
// access token for the detected platform.
func FromRemote(remoteURL, repo, token string) (Provider, error) {
	platform, err := Detect(remoteURL)
	if err != nil {
		return nil, err
	}

	owner, name, ok := strings.Cut(repo, "/")
	if !ok || owner == "" || name == "" {
		return nil, ErrBadRepo
	}

	switch platform {
	case PlatformGitHub:
		return NewGitHubProvider(token, owner, name)
	case PlatformGitLab:
		return NewGitLabProvider(token, selfHostedBaseURL(remoteURL), repo)
	default:
		return nil, ErrUnknownProvider
	}
}

// selfHostedBaseURL extracts the instance URL for self-hosted GitLab.
// Returns empty for gitlab.com.
func selfHostedBaseURL(remoteURL string) string {
	if strings.Contains(remoteURL, "gitlab.com") {
		return ""
	}

	host := remoteURL
	host = strings.TrimPrefix(host, "https://")
	host = strings.TrimPrefix(host, "http://")
	if strings.HasPrefix(host, "git@") {
		host = strings.TrimPrefix(host, "git@")
		host, _, _ = strings.Cut(host, ":")
	} else {
		host, _, _ = strings.Cut(host, "/")
	}
	if host == "" {
		return ""
	}
	return "https://" + host
}
