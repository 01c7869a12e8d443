// Package config resolves gitkick's layered settings.
//
// Settings merge from four places with clear precedence:
//  1. Environment variables (highest priority)
//  2. Local settings (.gitkick.yaml in the git root)
//  3. Global settings (~/.config/gitkick/config.yaml)
//  4. Built-in defaults (lowest priority)
//
// # Basic Usage
//
// Create a resolver and read the merged settings:
//
//	resolver := config.NewResolver()
//	settings := resolver.Resolve()
//
//	fmt.Println(settings.Remote())            // "origin"
//	fmt.Println(settings.Source("remote"))    // "default"
//
// # Keys
//
// Only the keys in KnownKeys are recognized:
//   - "remote": the git remote branches are pushed to
//   - "base_branch": the branch pull requests target
//   - "editor": editor command for description editing
//   - "no_color": disable colored plan output
//
// # Environment Variables
//
// Every key maps to an environment variable with the GITKICK_ prefix:
//
//	GITKICK_REMOTE=upstream       # sets "remote"
//	GITKICK_BASE_BRANCH=develop   # sets "base_branch"
//
// The standard NO_COLOR variable is also honored and sets "no_color"
// regardless of its value.
//
// # Saving
//
// SaveGlobal and SaveLocal write a single key back to the matching
// file, preserving the other entries:
//
//	if err := resolver.SaveGlobal("remote", "upstream"); err != nil {
//	    return err
//	}
//
// DeleteGlobal and DeleteLocal remove a key the same way. Removing a
// key that is not set is not an error.
package config
