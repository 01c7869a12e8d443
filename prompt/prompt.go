package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// ErrCanceled indicates the user aborted the interactive session.
// It is a deliberate exit, not a failure: callers propagate it to the
// process boundary and stop without diagnostics.
var ErrCanceled = errors.New("operation canceled")

// DefaultEditor is used when no editor is configured and $EDITOR is unset.
const DefaultEditor = "vim"

// Prompter asks questions and reads answers, one line per question.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer

	editorName string
	editorArgs []string
}

// Option configures a Prompter.
type Option func(*Prompter)

// WithEditor sets the command used by Editor prompts.
// The file to edit is appended as the final argument.
func WithEditor(name string, args ...string) Option {
	return func(p *Prompter) {
		p.editorName = name
		p.editorArgs = args
	}
}

// New creates a Prompter that reads answers from in and writes prompts to out.
func New(in io.Reader, out io.Writer, opts ...Option) *Prompter {
	p := &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.editorName == "" {
		p.editorName, p.editorArgs = editorFromEnv()
	}
	return p
}

// NewTerminal returns a Prompter bound to stdin/stdout.
func NewTerminal(opts ...Option) *Prompter {
	return New(os.Stdin, os.Stdout, opts...)
}

// Text asks for a single line of optional input and returns it trimmed.
// An empty answer means the user skipped the question.
func (p *Prompter) Text(label string) (string, error) {
	fmt.Fprintf(p.out, "%s ", label)
	line, err := p.readLine()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// TextRequired asks for a single line of input and re-prompts until the
// trimmed answer is non-empty.
func (p *Prompter) TextRequired(label string) (string, error) {
	for {
		value, err := p.Text(label)
		if err != nil {
			return "", err
		}
		if value != "" {
			return value, nil
		}
		fmt.Fprintln(p.out, "You must enter a value.")
	}
}

// Select presents a fixed ordered list of options and returns the index of
// the chosen one. Invalid answers re-prompt.
func (p *Prompter) Select(label string, options []string) (int, error) {
	fmt.Fprintln(p.out, label)
	for i, opt := range options {
		fmt.Fprintf(p.out, "  %2d) %s\n", i+1, opt)
	}

	for {
		fmt.Fprintf(p.out, "Select [1-%d]: ", len(options))
		line, err := p.readLine()
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || n < 1 || n > len(options) {
			fmt.Fprintf(p.out, "Enter a number between 1 and %d.\n", len(options))
			continue
		}
		return n - 1, nil
	}
}

// Confirm asks a yes/no question and re-prompts until it gets one.
func (p *Prompter) Confirm(label string) (bool, error) {
	for {
		fmt.Fprintf(p.out, "%s ", label)
		line, err := p.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(p.out, "Please answer y or n.")
	}
}

// Editor opens the configured editor on a temp file seeded with initial and
// returns the edited content. The label is informational only.
func (p *Prompter) Editor(label, initial string) (string, error) {
	fmt.Fprintf(p.out, "%s (opens %s)\n", label, p.editorName)

	tmp, err := os.CreateTemp("", "gitkick-*.md")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	path := tmp.Name()
	defer os.Remove(path)

	if _, err := tmp.WriteString(initial); err != nil {
		tmp.Close()
		return "", fmt.Errorf("seed temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close temp file: %w", err)
	}

	args := append(append([]string{}, p.editorArgs...), path)
	cmd := exec.Command(p.editorName, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("run editor %s: %w", p.editorName, err)
	}

	edited, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read edited file: %w", err)
	}
	return string(edited), nil
}

// readLine reads one answer line. End of input means the user aborted the
// session (ctrl-d), which maps to ErrCanceled.
func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err == io.EOF {
		if line == "" {
			return "", ErrCanceled
		}
		return line, nil // final line without trailing newline
	}
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return line, nil
}

// editorFromEnv resolves the editor command from $EDITOR, falling back to
// DefaultEditor. Extra words in $EDITOR become leading arguments.
func editorFromEnv() (string, []string) {
	fields := strings.Fields(os.Getenv("EDITOR"))
	if len(fields) == 0 {
		return DefaultEditor, nil
	}
	return fields[0], fields[1:]
}
