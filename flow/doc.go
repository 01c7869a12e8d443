// Package flow implements the interactive gitkick workflows: collecting
// a conventional commit descriptor, deriving branch and pull request
// names, gating execution behind an explicit confirmation, and running
// the confirmed plan.
//
// Two flows exist. The plain flow (AskInit/RunInit) creates a branch,
// stages and commits the pending work, and pushes. The pull request flow
// (AskPR/ConfirmPR/RunPR) creates a branch from an issue tracker's
// branch name, pushes an empty commit, and opens a self-assigned pull
// request.
//
// Example usage:
//
//	planner := flow.NewPlanner(prompt.NewTerminal(), gitCtx)
//	plan, err := planner.AskInit()
//	if errors.Is(err, prompt.ErrCanceled) {
//	    return nil // user backed out
//	}
//	if err != nil {
//	    return err
//	}
//
//	runner := flow.NewRunner(gitCtx, "origin")
//	return runner.RunInit(plan)
package flow
