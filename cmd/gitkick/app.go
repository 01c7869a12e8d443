package main

import (
	"strings"

	"github.com/fatih/color"

	"github.com/randalmurphal/gitkick/config"
	"github.com/randalmurphal/gitkick/prompt"
)

// setup resolves the layered settings and builds the terminal prompter.
// flags carries command-line overrides keyed by settings key; nil is
// fine when a command has none.
func setup(flags map[string]string) (*config.Settings, *prompt.Prompter) {
	settings := config.NewResolver().ResolveWithFlags(flags)

	if settings.NoColor() {
		color.NoColor = true
	}

	var opts []prompt.Option
	if editor := settings.Editor(); editor != "" {
		fields := strings.Fields(editor)
		opts = append(opts, prompt.WithEditor(fields[0], fields[1:]...))
	}

	return settings, prompt.NewTerminal(opts...)
}
