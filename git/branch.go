package git

import (
	"fmt"
	"strings"
)

// Slugify converts free text to a branch-safe slug. Spaces become
// hyphens, apostrophes are dropped, and the result is lower-cased.
// No other characters are touched.
func Slugify(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "'", "")
	return strings.ToLower(s)
}

// BranchName derives the branch for a commit: "{type}/{slug of name}".
func BranchName(t CommitType, name string) string {
	return string(t) + "/" + Slugify(name)
}

// IssueBranchName derives the branch for the pull request flow:
// "{type}/{issue branch}". The issue tracker's branch text is kept
// verbatim so the tracker can match the branch back to the issue.
func IssueBranchName(t CommitType, issueBranch string) string {
	return string(t) + "/" + issueBranch
}

// CompareURL builds the GitHub compare page URL for a branch.
// repo is the "owner/repo" identity.
func CompareURL(repo, branch string) string {
	return fmt.Sprintf("https://github.com/%s/compare/%s?expand=1", repo, branch)
}
