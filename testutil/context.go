package testutil

import (
	"context"
	"testing"
)

// TestContext returns a context scoped to the test: it inherits the
// test binary's -timeout as a deadline when one is set, and is always
// canceled when the test ends.
func TestContext(t *testing.T) context.Context {
	t.Helper()

	if deadline, ok := t.Deadline(); ok {
		ctx, cancel := context.WithDeadline(context.Background(), deadline)
		t.Cleanup(cancel)
		return ctx
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return ctx
}
