package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/gitkick/config"
	"github.com/randalmurphal/gitkick/flow"
	"github.com/randalmurphal/gitkick/git"
	"github.com/randalmurphal/gitkick/pr"
	"github.com/randalmurphal/gitkick/prefs"
)

// newPRCmd builds the pull request flow: issue branch, empty commit,
// push, pull request.
func newPRCmd() *cobra.Command {
	var base string
	var draft bool

	cmd := &cobra.Command{
		Use:   "pr",
		Short: "Create a pull request from an issue branch",
		Long: `Name the issue tracker branch, describe the change, and confirm. gitkick
creates the branch, pushes an empty commit, and opens a self-assigned pull
request titled after the commit message, tagged with the issue ID when the
branch name carries one (web-482-login-fix tags [WEB-482]).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var flags map[string]string
			if cmd.Flags().Changed("base") {
				flags = map[string]string{config.KeyBaseBranch: base}
			}
			settings, prompter := setup(flags)

			repo, err := git.NewContext(".")
			if err != nil {
				return err
			}

			planner := flow.NewPlanner(prompter, repo, flow.WithRemote(settings.Remote()))
			plan, err := planner.AskPR()
			if err != nil {
				return err
			}

			ok, err := planner.ConfirmPR(plan)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("Aborted.")
				return nil
			}

			remoteURL, err := repo.RemoteURL(settings.Remote())
			if err != nil {
				return err
			}
			identity, err := repo.CurrentRepo(settings.Remote())
			if err != nil {
				return err
			}

			store, err := prefs.Open()
			if err != nil {
				return err
			}
			token, err := resolveToken(store, prompter, remoteURL)
			if err != nil {
				return err
			}

			provider, err := pr.FromRemote(remoteURL, identity, token)
			if err != nil {
				return err
			}

			body, err := store.DefaultDescription()
			if err != nil {
				if !errors.Is(err, prefs.ErrDescriptionNotSet) {
					return err
				}
				body = ""
			}

			runner := flow.NewRunner(repo, settings.Remote())
			created, err := runner.RunPR(cmd.Context(), plan, provider, flow.PROptions{
				Body:  body,
				Base:  settings.BaseBranch(),
				Draft: draft,
			})
			if err != nil {
				return err
			}

			fmt.Printf("\nPull request created: %s\n", created.URL)
			return nil
		},
	}

	cmd.Flags().StringVar(&base, "base", "", "Target branch for the pull request")
	cmd.Flags().BoolVar(&draft, "draft", false, "Open the pull request as a draft")

	return cmd
}
