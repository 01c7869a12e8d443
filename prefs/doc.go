// Package prefs stores per-user gitkick preferences on disk.
//
// Two values are kept, each in its own file under ~/.gitkick/:
//
//	~/.gitkick/token    access token for the pull request provider
//	~/.gitkick/desc.md  default pull request description template
//
// The directory and files are created lazily on first write. Writes
// replace the whole file (last write wins); there is no locking, so
// overlapping processes race and the last writer wins.
//
// # Basic Usage
//
//	store, err := prefs.Open()
//	if err != nil {
//	    return err
//	}
//
//	token, err := store.Token()
//	if errors.Is(err, prefs.ErrTokenNotSet) {
//	    // prompt the user and store the answer
//	    written, err := store.SetToken(answer)
//	    ...
//	}
//
// # Write Semantics
//
// Setters report whether a write happened. Empty input (after
// trimming) is a no-op, not an error. SetDefaultDescription also
// skips the write when the new text matches what is already stored,
// so callers can tell "unchanged" apart from "rewritten".
package prefs
