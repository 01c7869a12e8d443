package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/gitkick/auth"
	"github.com/randalmurphal/gitkick/pr"
	"github.com/randalmurphal/gitkick/prefs"
	"github.com/randalmurphal/gitkick/prompt"
)

// newTokenCmd stores the access token used to create pull requests.
func newTokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Store the access token used to create pull requests",
		Long: `Prompt for an access token and store it under ~/.gitkick. Entering
nothing leaves any previously stored token untouched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, prompter := setup(nil)

			store, err := prefs.Open()
			if err != nil {
				return err
			}

			entered, err := prompter.Text("Github token:")
			if err != nil {
				return err
			}

			written, err := store.SetToken(entered)
			if err != nil {
				return err
			}
			if !written {
				fmt.Println("Nothing entered, stored token unchanged.")
				return nil
			}
			fmt.Println("Token stored.")
			return nil
		},
	}

	cmd.AddCommand(newTokenStatusCmd())

	return cmd
}

func newTokenStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether a token is stored",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := prefs.Open()
			if err != nil {
				return err
			}

			token, err := store.Token()
			if errors.Is(err, prefs.ErrTokenNotSet) {
				fmt.Println("No token stored.")
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Printf("Token stored: %s\n", auth.Mask(token))
			fmt.Printf("SHA-256: %s\n", auth.Fingerprint(token))
			return nil
		},
	}
}

// resolveToken finds the access token for the platform behind
// remoteURL: the preference store first, then the environment, and
// finally an interactive prompt whose answer is stored for next time.
func resolveToken(store *prefs.Store, prompter *prompt.Prompter, remoteURL string) (string, error) {
	token, err := store.Token()
	if err == nil {
		return token, nil
	}
	if !errors.Is(err, prefs.ErrTokenNotSet) {
		return "", err
	}

	if platform, err := pr.Detect(remoteURL); err == nil {
		if token := pr.TokenFromEnv(platform); token != "" {
			return token, nil
		}
	}

	entered, err := prompter.Text("Github token:")
	if err != nil {
		return "", err
	}
	written, err := store.SetToken(entered)
	if err != nil {
		return "", err
	}
	if !written {
		return "", prefs.ErrTokenNotSet
	}
	return entered, nil
}
