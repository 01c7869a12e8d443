package pr

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

// GitHubProvider implements Provider for GitHub repositories.
type GitHubProvider struct {
	client *github.Client
	owner  string
	repo   string
}

// NewGitHubProvider creates a new GitHub provider.
// token is a personal access token; owner and repo identify the
// repository (e.g., "acme", "webapp").
func NewGitHubProvider(token, owner, repo string) (*GitHubProvider, error) {
	if token == "" {
		return nil, fmt.Errorf("GitHub token is required")
	}
	if owner == "" || repo == "" {
		return nil, fmt.Errorf("owner and repo are required")
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(context.Background(), ts)

	return &GitHubProvider{
		client: github.NewClient(tc),
		owner:  owner,
		repo:   repo,
	}, nil
}

// CreatePR creates a new pull request.
func (p *GitHubProvider) CreatePR(ctx context.Context, opts Options) (*PullRequest, error) {
	base := opts.Base
	if base == "" {
		base = "main"
	}

	newPR := &github.NewPullRequest{
		Title: github.String(opts.Title),
		Body:  github.String(opts.Body),
		Base:  github.String(base),
		Head:  github.String(opts.Head),
		Draft: github.Bool(opts.Draft),
	}

	created, resp, err := p.client.PullRequests.Create(ctx, p.owner, p.repo, newPR)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusUnprocessableEntity {
			if strings.Contains(err.Error(), "A pull request already exists") {
				return nil, ErrExists
			}
			if strings.Contains(err.Error(), "No commits between") {
				return nil, ErrNoChanges
			}
		}
		return nil, fmt.Errorf("create PR: %w", err)
	}

	if opts.SelfAssign {
		if err := p.selfAssign(ctx, created.GetNumber()); err != nil {
			// The PR exists at this point; assignment is best effort.
			slog.Warn("failed to self-assign PR", "error", err, "pr", created.GetNumber())
		}
	}

	return p.toPullRequest(created), nil
}

// GetPR retrieves a pull request by number.
func (p *GitHubProvider) GetPR(ctx context.Context, id int) (*PullRequest, error) {
	pull, resp, err := p.client.PullRequests.Get(ctx, p.owner, p.repo, id)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get PR: %w", err)
	}
	return p.toPullRequest(pull), nil
}

// selfAssign assigns the authenticated user to a pull request.
func (p *GitHubProvider) selfAssign(ctx context.Context, number int) error {
	user, _, err := p.client.Users.Get(ctx, "")
	if err != nil {
		return fmt.Errorf("get authenticated user: %w", err)
	}

	_, _, err = p.client.Issues.AddAssignees(ctx, p.owner, p.repo, number, []string{user.GetLogin()})
	if err != nil {
		return fmt.Errorf("add assignee: %w", err)
	}
	return nil
}

func (p *GitHubProvider) toPullRequest(pull *github.PullRequest) *PullRequest {
	result := &PullRequest{
		ID:    pull.GetNumber(),
		URL:   pull.GetHTMLURL(),
		Title: pull.GetTitle(),
		Body:  pull.GetBody(),
		Draft: pull.GetDraft(),
	}

	switch pull.GetState() {
	case "open":
		result.State = StateOpen
	case "closed":
		if pull.GetMerged() {
			result.State = StateMerged
		} else {
			result.State = StateClosed
		}
	}

	if pull.Head != nil {
		result.Head = pull.Head.GetRef()
	}
	if pull.Base != nil {
		result.Base = pull.Base.GetRef()
	}

	if pull.CreatedAt != nil {
		result.CreatedAt = pull.CreatedAt.Time
	}
	if pull.MergedAt != nil {
		t := pull.MergedAt.Time
		result.MergedAt = &t
	}

	for _, assignee := range pull.Assignees {
		result.Assignees = append(result.Assignees, assignee.GetLogin())
	}

	return result
}
