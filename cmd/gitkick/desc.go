package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/gitkick/prefs"
)

// newDescCmd edits the default pull request description.
func newDescCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "desc",
		Short: "Edit the default pull request description",
		Long: `Open an editor pre-filled with the stored description template. The
result becomes the body of every pull request gitkick creates. Saving
the template unchanged writes nothing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, prompter := setup(nil)

			store, err := prefs.Open()
			if err != nil {
				return err
			}

			current, err := store.DefaultDescription()
			if err != nil && !errors.Is(err, prefs.ErrDescriptionNotSet) {
				return err
			}

			edited, err := prompter.Editor("Default description:", current)
			if err != nil {
				return err
			}

			written, err := store.SetDefaultDescription(edited)
			if err != nil {
				return err
			}
			if !written {
				fmt.Println("Default description unchanged.")
				return nil
			}
			fmt.Println("Default description stored.")
			return nil
		},
	}
}
