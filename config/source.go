package config

// Source indicates where a settings value came from.
type Source string

// Settings source constants.
const (
	// SourceDefault indicates the value is a built-in default.
	SourceDefault Source = "default"

	// SourceGlobal indicates the value came from
	// ~/.config/gitkick/config.yaml.
	SourceGlobal Source = "global"

	// SourceLocal indicates the value came from .gitkick.yaml in the
	// git root.
	SourceLocal Source = "local"

	// SourceEnv indicates the value came from an environment variable.
	SourceEnv Source = "env"

	// SourceFlag indicates the value was set via command-line flag.
	SourceFlag Source = "flag"
)
