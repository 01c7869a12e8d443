package flow

import (
	"fmt"
	"strconv"
	"strings"
)

// IssueTag derives a tracker tag like "[WEB-482]" from an issue branch
// name such as "web-482-login-fix". The first segment is the project
// key, the second must be a non-negative number. Returns false when
// the branch name doesn't follow that shape.
func IssueTag(issueBranch string) (string, bool) {
	segments := strings.Split(issueBranch, "-")
	if len(segments) < 2 {
		return "", false
	}
	n, err := strconv.Atoi(segments[1])
	if err != nil || n < 0 {
		return "", false
	}
	return fmt.Sprintf("[%s-%s]", strings.ToUpper(segments[0]), segments[1]), true
}
