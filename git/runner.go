package git

import (
	"os/exec"
	"strings"
)

// CommandRunner executes external commands for git operations.
// The default implementation shells out; tests inject mocks.
type CommandRunner interface {
	// Run executes a command in the given directory and returns
	// trimmed combined output.
	Run(dir, name string, args ...string) (string, error)
}

// CommandError wraps a failed command with its output.
type CommandError struct {
	Command string   // Command that was run (e.g., "git")
	Args    []string // Arguments passed to the command
	Output  string   // Combined stdout/stderr output
	Err     error    // Underlying error
}

func (e *CommandError) Error() string {
	if e.Output != "" {
		return e.Output
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "command failed"
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ExecRunner runs commands using os/exec.
type ExecRunner struct{}

// NewExecRunner creates the default command runner.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run implements CommandRunner.
func (r *ExecRunner) Run(dir, name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	if dir != "" {
		cmd.Dir = dir
	}

	output, err := cmd.CombinedOutput()
	text := strings.TrimSpace(string(output))
	if err != nil {
		return text, &CommandError{
			Command: name,
			Args:    args,
			Output:  text,
			Err:     err,
		}
	}
	return text, nil
}
