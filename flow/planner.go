package flow

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/randalmurphal/gitkick/git"
	"github.com/randalmurphal/gitkick/prompt"
)

// RepoResolver resolves the "owner/repo" identity of the working
// repository. *git.Context satisfies it.
type RepoResolver interface {
	CurrentRepo(remote string) (string, error)
}

// Planner drives the interactive prompts and produces confirmed plans.
type Planner struct {
	prompter *prompt.Prompter
	repo     RepoResolver
	out      io.Writer
	remote   string
	cyan     *color.Color
}

// PlannerOption configures Planner.
type PlannerOption func(*Planner)

// WithOutput sets where plan summaries are printed. Default os.Stdout.
func WithOutput(w io.Writer) PlannerOption {
	return func(p *Planner) {
		p.out = w
	}
}

// WithRemote sets the remote used to resolve the repository identity.
// Default "origin".
func WithRemote(remote string) PlannerOption {
	return func(p *Planner) {
		p.remote = remote
	}
}

// NewPlanner creates a planner reading answers from prompter and
// resolving repository identity through repo.
func NewPlanner(prompter *prompt.Prompter, repo RepoResolver, opts ...PlannerOption) *Planner {
	p := &Planner{
		prompter: prompter,
		repo:     repo,
		out:      os.Stdout,
		remote:   "origin",
		cyan:     color.New(color.FgHiCyan),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// AskCommit collects a commit descriptor: a type picked from the fixed
// menu, an optional scope, and a required name. Returns
// prompt.ErrCanceled if the session is aborted at any prompt.
func (p *Planner) AskCommit() (git.Descriptor, error) {
	rows := make([]string, len(git.Kinds))
	for i, k := range git.Kinds {
		rows[i] = fmt.Sprintf("%-12s%s", k.Type, k.Description)
	}

	idx, err := p.prompter.Select("Type:", rows)
	if err != nil {
		return git.Descriptor{}, err
	}

	scope, err := p.prompter.Text("Scope (optional):")
	if err != nil {
		return git.Descriptor{}, err
	}

	name, err := p.prompter.TextRequired("Name:")
	if err != nil {
		return git.Descriptor{}, err
	}

	return git.Descriptor{
		Type:  git.Kinds[idx].Type,
		Scope: scope,
		Name:  name,
	}, nil
}

// InitPlan is the confirmed output of the plain flow.
type InitPlan struct {
	CommitMessage string // Conventional commit subject
	Branch        string // "{type}/{slug}"
	CompareURL    string // GitHub compare page for the branch
}

// AskInit runs the plain flow: collect a commit descriptor, derive the
// branch and compare URL, present the plan, and ask for confirmation.
// Declining is reported as prompt.ErrCanceled, matching an aborted
// prompt; callers treat both as "do nothing".
func (p *Planner) AskInit() (*InitPlan, error) {
	d, err := p.AskCommit()
	if err != nil {
		return nil, err
	}

	branch := git.BranchName(d.Type, d.Name)

	repo, err := p.repo.CurrentRepo(p.remote)
	if err != nil {
		return nil, err
	}

	plan := &InitPlan{
		CommitMessage: d.Message(),
		Branch:        branch,
		CompareURL:    git.CompareURL(repo, branch),
	}

	fmt.Fprintf(p.out, "This will:\n1. Create a branch called %s.\n2. Create a commit called %s.\n3. Push to the remote repository.\n",
		p.cyan.Sprint(plan.Branch), p.cyan.Sprint(plan.CommitMessage))

	ok, err := p.prompter.Confirm("Confirm? (y/n)")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, prompt.ErrCanceled
	}
	return plan, nil
}

// PRPlan is the derived output of the pull request flow.
type PRPlan struct {
	Title         string // Pull request title, tagged with the tracker issue when derivable
	Branch        string // "{type}/{issue branch}", issue branch kept verbatim
	CommitMessage string // Conventional commit subject, without the tracker tag
}

// AskPR collects the pull request flow inputs: the issue tracker's
// branch name, then a commit descriptor. The pull request title is the
// commit message, tagged with the tracker issue ID when the branch
// name carries one.
func (p *Planner) AskPR() (*PRPlan, error) {
	issueBranch, err := p.prompter.TextRequired("Issue branch name:")
	if err != nil {
		return nil, err
	}

	d, err := p.AskCommit()
	if err != nil {
		return nil, err
	}

	msg := d.Message()
	title := msg
	if tag, ok := IssueTag(issueBranch); ok {
		title += " " + tag
	}

	return &PRPlan{
		Title:         title,
		Branch:        git.IssueBranchName(d.Type, issueBranch),
		CommitMessage: msg,
	}, nil
}

// ConfirmPR presents the pull request plan and asks for confirmation.
// The answer comes back as a bool; declining is not an error here,
// unlike AskInit.
func (p *Planner) ConfirmPR(plan *PRPlan) (bool, error) {
	fmt.Fprintf(p.out, "This will:\n1. Create a branch called %s.\n2. Create an empty commit.\n3. Push to the remote repository.\n4. Create a pull request named %s.\n5. Assign you the pull request.\n",
		p.cyan.Sprint(plan.Branch), p.cyan.Sprint(plan.Title))

	return p.prompter.Confirm("Confirm? (y/n)")
}
