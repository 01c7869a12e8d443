package flow

import (
	"context"

	"github.com/randalmurphal/gitkick/pr"
)

// GitExecutor is the slice of git operations the runner needs.
// *git.Context satisfies it.
type GitExecutor interface {
	CheckoutNew(name string) error
	StageAll() error
	Commit(message string) error
	EmptyCommit(message string) error
	Push(remote, branch string, setUpstream bool) error
}

// Runner executes confirmed plans against a repository.
type Runner struct {
	git    GitExecutor
	remote string
}

// NewRunner creates a runner pushing to remote. Empty remote means
// "origin".
func NewRunner(g GitExecutor, remote string) *Runner {
	if remote == "" {
		remote = "origin"
	}
	return &Runner{git: g, remote: remote}
}

// RunInit executes the plain flow: new branch, commit the staged and
// unstaged work, push with upstream tracking. A clean tree surfaces as
// git.ErrNothingToCommit.
func (r *Runner) RunInit(plan *InitPlan) error {
	if err := r.git.CheckoutNew(plan.Branch); err != nil {
		return err
	}
	if err := r.git.StageAll(); err != nil {
		return err
	}
	if err := r.git.Commit(plan.CommitMessage); err != nil {
		return err
	}
	return r.git.Push(r.remote, plan.Branch, true)
}

// PROptions carries the pull request fields not derived from the plan.
type PROptions struct {
	Body  string
	Base  string
	Draft bool
}

// RunPR executes the pull request flow: new branch, an empty commit
// carrying the commit message, push, then open a self-assigned pull
// request through provider.
func (r *Runner) RunPR(ctx context.Context, plan *PRPlan, provider pr.Provider, opts PROptions) (*pr.PullRequest, error) {
	if err := r.git.CheckoutNew(plan.Branch); err != nil {
		return nil, err
	}
	if err := r.git.EmptyCommit(plan.CommitMessage); err != nil {
		return nil, err
	}
	if err := r.git.Push(r.remote, plan.Branch, true); err != nil {
		return nil, err
	}
	return provider.CreatePR(ctx, pr.Options{
		Title:      plan.Title,
		Body:       opts.Body,
		Base:       opts.Base,
		Head:       plan.Branch,
		Draft:      opts.Draft,
		SelfAssign: true,
	})
}
