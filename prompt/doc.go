// Package prompt provides blocking terminal prompts for interactive flows.
//
// Core types:
//   - Prompter: asks questions on a terminal and reads the answers
//
// Prompts block until the user answers or aborts the session. An abort
// (end of input) surfaces as ErrCanceled, which callers are expected to
// propagate unchanged rather than report as a failure.
//
// Example usage:
//
//	p := prompt.NewTerminal()
//	name, err := p.TextRequired("Name:")
//	if errors.Is(err, prompt.ErrCanceled) {
//	    return // user backed out, nothing to do
//	}
//	ok, err := p.Confirm("Confirm? (y/n)")
package prompt
