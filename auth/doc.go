// Package auth provides safe-display helpers for access tokens.
//
// Stored tokens are never printed. Status output identifies a token by
// its SHA-256 fingerprint and a short masked preview:
//
//	fmt.Println(auth.Fingerprint(token)) // "a665a459..."
//	fmt.Println(auth.Mask(token))        // "ghp_12345678..."
package auth
