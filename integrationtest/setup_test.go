package integrationtest

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/gitkick/flow"
	"github.com/randalmurphal/gitkick/git"
	"github.com/randalmurphal/gitkick/prompt"
	"github.com/randalmurphal/gitkick/testutil"
)

// openRepo creates a real repository with a local bare remote and
// binds a git context to it. Pushes land in the bare remote, so the
// flows run end to end without a network.
func openRepo(t *testing.T) (repo *git.Context, dir, bare string) {
	t.Helper()

	dir = testutil.SetupTestRepo(t)
	bare = testutil.SetupBareRemote(t, dir)

	repo, err := git.NewContext(dir)
	require.NoError(t, err)

	return repo, dir, bare
}

// scriptedPlanner builds a planner fed from canned prompt answers,
// with the plan rendering discarded.
func scriptedPlanner(repo *git.Context, answers string) *flow.Planner {
	prompter := prompt.New(strings.NewReader(answers), io.Discard)
	return flow.NewPlanner(prompter, repo, flow.WithOutput(io.Discard))
}
