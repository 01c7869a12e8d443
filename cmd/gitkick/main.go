package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	clierrors "github.com/randalmurphal/gitkick/errors"
	"github.com/randalmurphal/gitkick/prompt"
)

// version is stamped at build time via -ldflags.
var version = "dev"

func main() {
	root := &cobra.Command{
		Use:     "gitkick",
		Short:   "Conventional branches, commits, and pull requests",
		Version: version,
		Long: `gitkick standardizes how branches, commits, and pull requests are created.
Pick a conventional-commit type, name the change, review the derived plan,
and confirm before anything touches the repository.`,
		// main renders errors itself.
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newInitCmd())
	root.AddCommand(newPRCmd())
	root.AddCommand(newTokenCmd())
	root.AddCommand(newDescCmd())
	root.AddCommand(newConfigCmd())

	if err := root.Execute(); err != nil {
		if errors.Is(err, prompt.ErrCanceled) {
			fmt.Println("Aborted.")
			return
		}
		fmt.Fprintln(os.Stderr, clierrors.Explain(err))
		os.Exit(1)
	}
}
