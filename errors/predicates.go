package errors

import "strings"

// The hosting provider SDKs surface HTTP failures as plain error
// strings, so classification has to sniff the text. These predicates
// gather the known spellings in one place for Explain.

// IsAuthError reports whether an error looks like a rejected or
// missing credential.
func IsAuthError(err error) bool {
	if err == nil {
		return false
	}
	return containsAny(strings.ToLower(err.Error()),
		"unauthenticated", "unauthorized", "bad credentials", "401")
}

// IsConnectionError reports whether an error looks like a network,
// TLS, or timeout failure rather than an API-level rejection.
func IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return containsAny(s, "connection refused", "no such host", "network is unreachable", "dial tcp") ||
		containsAny(s, "certificate", "tls", "x509") ||
		containsAny(s, "timeout", "deadline exceeded")
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
