package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/gitkick/config"
)

// newConfigCmd groups the settings subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and change gitkick settings",
		Long: `Settings resolve in order: flags, environment (GITKICK_*), the local
.gitkick.yaml at the git root, the global ~/.config/gitkick/config.yaml,
then built-in defaults.`,
	}

	cmd.AddCommand(newConfigGetCmd())
	cmd.AddCommand(newConfigSetCmd())
	cmd.AddCommand(newConfigUnsetCmd())

	return cmd
}

func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get [key]",
		Short: "Show a setting and where it comes from",
		Long: `Show the resolved value of a setting. Without a key, list every
setting with its value and source.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := config.NewResolver().Resolve()

			if len(args) == 0 {
				for _, key := range settings.Keys() {
					value, source := settings.GetWithSource(key)
					fmt.Printf("%s=%s (%s)\n", key, value, source)
				}
				return nil
			}

			key := args[0]
			if err := config.ValidateKey(key); err != nil {
				return err
			}

			value, source := settings.GetWithSource(key)
			fmt.Printf("%s=%s (%s)\n", key, value, source)
			return nil
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	var local bool

	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Write a setting",
		Long: `Write a setting to the global file, or with --local to .gitkick.yaml
at the git root so it can be committed and shared.

Examples:
  gitkick config set remote upstream
  gitkick config set base_branch develop --local`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver := config.NewResolver()

			if local {
				if err := resolver.SaveLocal(args[0], args[1]); err != nil {
					return err
				}
				fmt.Printf("Wrote %s to %s\n", args[0], resolver.LocalPath())
				return nil
			}

			if err := resolver.SaveGlobal(args[0], args[1]); err != nil {
				return err
			}
			fmt.Printf("Wrote %s to %s\n", args[0], resolver.GlobalPath())
			return nil
		},
	}

	cmd.Flags().BoolVar(&local, "local", false, "Write to .gitkick.yaml in the repository root")

	return cmd
}

func newConfigUnsetCmd() *cobra.Command {
	var local bool

	cmd := &cobra.Command{
		Use:   "unset <key>",
		Short: "Remove a setting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver := config.NewResolver()

			if local {
				return resolver.DeleteLocal(args[0])
			}
			return resolver.DeleteGlobal(args[0])
		},
	}

	cmd.Flags().BoolVar(&local, "local", false, "Remove from .gitkick.yaml in the repository root")

	return cmd
}
