// Package gitkick standardizes branch, commit, and pull request creation
// around conventional-commit naming.
//
// The package is organized into subpackages by domain:
//
//   - prompt: Interactive terminal prompts (text, select, confirm, editor)
//   - prefs: Per-user preference store (access token, default PR description)
//   - git: Git repository operations, commit descriptors, branch naming
//   - flow: Interactive planning and execution of the branch/commit/PR flows
//   - pr: Pull request creation for GitHub and GitLab
//   - config: Layered settings (flags, env, local and global files)
//   - auth: Token fingerprinting for safe display
//   - errors: CLI error presentation with suggestions
//   - testutil: Test utilities and fixtures
//
// # Quick Start
//
//	import (
//	    "github.com/randalmurphal/gitkick/flow"
//	    "github.com/randalmurphal/gitkick/git"
//	    "github.com/randalmurphal/gitkick/prompt"
//	)
//
//	// Bind a git context to the working repository
//	repo, _ := git.NewContext(".")
//
//	// Collect and confirm a plan interactively
//	planner := flow.NewPlanner(prompt.NewTerminal(), repo)
//	plan, _ := planner.AskInit()
//
//	// Execute it: branch, commit, push
//	_ = flow.NewRunner(repo, "origin").RunInit(plan)
//
// The gitkick command in cmd/gitkick wires these packages into the
// interactive CLI.
//
// See individual package documentation for detailed usage.
package gitkick
