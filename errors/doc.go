// Package errors turns known failures into printable guidance.
//
// Core types:
//   - CLIError: Wraps errors with message, suggestion, and details
//
// Explain recognizes the sentinels raised by the git, prefs, and pr
// packages plus common provider responses (rejected tokens, network
// failures) and wraps them so the CLI boundary can print something
// actionable. Anything unrecognized passes through unchanged.
//
// Example usage:
//
//	if err := run(); err != nil {
//	    fmt.Fprintln(os.Stderr, errors.Explain(err))
//	    os.Exit(1)
//	}
package errors
