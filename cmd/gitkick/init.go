package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/gitkick/flow"
	"github.com/randalmurphal/gitkick/git"
)

// newInitCmd builds the plain flow: branch, commit, push.
func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Branch, commit, and push the pending work",
		Long: `Collect a commit type, optional scope, and name, then create the derived
branch, commit everything pending, and push with upstream tracking.

Example:
  picking "fix", scope "auth", name "handle expired tokens" creates the
  branch fix/handle-expired-tokens with the commit
  "fix(auth): handle expired tokens".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, prompter := setup(nil)

			repo, err := git.NewContext(".")
			if err != nil {
				return err
			}

			planner := flow.NewPlanner(prompter, repo, flow.WithRemote(settings.Remote()))
			plan, err := planner.AskInit()
			if err != nil {
				return err
			}

			runner := flow.NewRunner(repo, settings.Remote())
			if err := runner.RunInit(plan); err != nil {
				return err
			}

			fmt.Printf("\nOpen a pull request: %s\n", plan.CompareURL)
			return nil
		},
	}
}
