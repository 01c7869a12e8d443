package git

import (
	"fmt"
	"strings"
)

// CommitType represents the type of change in a commit.
type CommitType string

const (
	CommitTypeFeat     CommitType = "feat"
	CommitTypeFix      CommitType = "fix"
	CommitTypeDocs     CommitType = "docs"
	CommitTypeStyle    CommitType = "style"
	CommitTypeRefactor CommitType = "refactor"
	CommitTypePerf     CommitType = "perf"
	CommitTypeTest     CommitType = "test"
	CommitTypeBuild    CommitType = "build"
	CommitTypeCI       CommitType = "ci"
	CommitTypeChore    CommitType = "chore"
	CommitTypeRevert   CommitType = "revert"
)

// Kind pairs a commit type with its selection-menu description.
type Kind struct {
	Type        CommitType
	Description string
}

// Kinds lists the selectable commit types in menu order.
var Kinds = []Kind{
	{CommitTypeFeat, "A new feature"},
	{CommitTypeFix, "A bug fix"},
	{CommitTypeDocs, "Documentation only changes"},
	{CommitTypeStyle, "Changes that do not affect the meaning of the code"},
	{CommitTypeRefactor, "A code change that neither fixes a bug nor adds a feature"},
	{CommitTypePerf, "A code change that improves performance"},
	{CommitTypeTest, "Adding missing tests or correcting existing tests"},
	{CommitTypeBuild, "Changes that affect the build system or external dependencies"},
	{CommitTypeCI, "Changes to our CI configuration files and scripts"},
	{CommitTypeChore, "Other changes that don't modify src or test files"},
	{CommitTypeRevert, "Reverts a previous commit"},
}

// Descriptor is the structured form of a conventional commit subject.
type Descriptor struct {
	Type  CommitType // Required: type of change (feat, fix, etc.)
	Scope string     // Optional: area of codebase affected
	Name  string     // Required: short description
}

// Message renders the conventional commit subject line.
// With a scope the result is "type(scope): name", otherwise "type: name".
// The scope is trimmed before embedding; whitespace-only means absent.
// Downstream tooling parses this exact format.
func (d Descriptor) Message() string {
	if scope := strings.TrimSpace(d.Scope); scope != "" {
		return fmt.Sprintf("%s(%s): %s", d.Type, scope, d.Name)
	}
	return fmt.Sprintf("%s: %s", d.Type, d.Name)
}

// Validate checks that the descriptor can produce a usable message.
func (d Descriptor) Validate() error {
	if d.Type == "" {
		return fmt.Errorf("commit type is required")
	}
	known := false
	for _, k := range Kinds {
		if k.Type == d.Type {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("unknown commit type %q", d.Type)
	}
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("commit name is required")
	}
	return nil
}
