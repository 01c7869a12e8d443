package pr

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/xanzy/go-gitlab"
)

// GitLabProvider creates merge requests through the GitLab API and
// surfaces them as PullRequests.
type GitLabProvider struct {
	client    *gitlab.Client
	projectID string // numeric ID or "namespace/project"
}

// NewGitLabProvider creates a GitLab provider from a personal access
// token. baseURL points at a self-hosted instance and stays empty for
// gitlab.com; projectID is a numeric ID or a "namespace/project" path.
func NewGitLabProvider(token, baseURL, projectID string) (*GitLabProvider, error) {
	if token == "" {
		return nil, fmt.Errorf("a GitLab access token is required")
	}
	if projectID == "" {
		return nil, fmt.Errorf("a GitLab project ID is required")
	}

	var clientOpts []gitlab.ClientOptionFunc
	if baseURL != "" {
		clientOpts = append(clientOpts, gitlab.WithBaseURL(baseURL))
	}
	client, err := gitlab.NewClient(token, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("create GitLab client: %w", err)
	}

	return &GitLabProvider{client: client, projectID: projectID}, nil
}

// CreatePR creates a new merge request.
func (p *GitLabProvider) CreatePR(ctx context.Context, opts Options) (*PullRequest, error) {
	title := opts.Title
	if opts.Draft {
		// The create API has no draft flag; the "Draft: " title
		// prefix marks it.
		title = "Draft: " + title
	}
	base := opts.Base
	if base == "" {
		base = "main"
	}

	mrOpts := &gitlab.CreateMergeRequestOptions{
		Title:        gitlab.Ptr(title),
		Description:  gitlab.Ptr(opts.Body),
		SourceBranch: gitlab.Ptr(opts.Head),
		TargetBranch: gitlab.Ptr(base),
	}

	if opts.SelfAssign {
		if user, _, err := p.client.Users.CurrentUser(); err != nil {
			// The MR can still be created unassigned.
			slog.Warn("could not resolve current user for self-assign", "error", err)
		} else {
			mrOpts.AssigneeIDs = gitlab.Ptr([]int{user.ID})
		}
	}

	mr, resp, err := p.client.MergeRequests.CreateMergeRequest(p.projectID, mrOpts)
	if err != nil {
		switch {
		case resp != nil && resp.StatusCode == http.StatusConflict:
			return nil, ErrExists
		case resp != nil && resp.StatusCode == http.StatusBadRequest &&
			strings.Contains(err.Error(), "No commits between"):
			return nil, ErrNoChanges
		}
		return nil, fmt.Errorf("create MR: %w", err)
	}

	return p.toPullRequest(mr), nil
}

// GetPR retrieves a merge request by IID.
func (p *GitLabProvider) GetPR(ctx context.Context, id int) (*PullRequest, error) {
	mr, resp, err := p.client.MergeRequests.GetMergeRequest(p.projectID, id, nil)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get MR: %w", err)
	}
	return p.toPullRequest(mr), nil
}

func (p *GitLabProvider) toPullRequest(mr *gitlab.MergeRequest) *PullRequest {
	pr := &PullRequest{
		ID:    mr.IID,
		URL:   mr.WebURL,
		Title: mr.Title,
		Body:  mr.Description,
		Head:  mr.SourceBranch,
		Base:  mr.TargetBranch,
		State: mrState(mr.State),
		Draft: strings.HasPrefix(mr.Title, "Draft:") || strings.HasPrefix(mr.Title, "WIP:"),
	}

	if mr.CreatedAt != nil {
		pr.CreatedAt = *mr.CreatedAt
	}
	pr.MergedAt = mr.MergedAt

	for _, assignee := range mr.Assignees {
		pr.Assignees = append(pr.Assignees, assignee.Username)
	}

	return pr
}

func mrState(state string) State {
	switch state {
	case "opened":
		return StateOpen
	case "merged":
		return StateMerged
	case "closed":
		return StateClosed
	}
	return State(state)
}
