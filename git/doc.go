// Package git provides git operations and naming rules for gitkick
// workflows: branch and commit-message derivation, repository identity
// resolution, and command execution.
//
// Core types:
//   - Context: Git repository context with branch, commit, and push operations
//   - CommandRunner: Interface for executing git commands (with mocks for testing)
//   - Descriptor: Conventional commit subject builder
//   - Kinds: The selectable commit types with menu descriptions
//
// Example usage:
//
//	ctx, err := git.NewContext(".")
//	if err != nil {
//	    return err
//	}
//
//	d := git.Descriptor{Type: git.CommitTypeFix, Scope: "auth", Name: "handle expired tokens"}
//	branch := git.BranchName(d.Type, d.Name)
//
//	err = ctx.CheckoutNew(branch)
//	err = ctx.Commit(d.Message())
//	err = ctx.Push("origin", branch, true)
package git
