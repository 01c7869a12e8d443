package git

import "strings"

// MockResponse is a canned response for a mocked command.
type MockResponse struct {
	Stdout string
	Err    error
}

// Call records a single command execution.
type Call struct {
	WorkDir string
	Command string
	Args    []string
}

// MockRunner is a CommandRunner that returns canned responses keyed by
// command. Use OnCommand/OnAnyCommand to register responses; every call
// is recorded in Calls for assertions.
type MockRunner struct {
	// Responses maps a command key to its response. Keys are either
	// the bare command name or the full command line.
	Responses map[string]MockResponse

	// DefaultResponse is returned when no key matches.
	DefaultResponse MockResponse

	// Calls records every Run invocation in order.
	Calls []Call
}

// NewMockRunner creates an empty mock runner.
func NewMockRunner() *MockRunner {
	return &MockRunner{Responses: make(map[string]MockResponse)}
}

// MockStub registers the response for a matched command.
type MockStub struct {
	runner *MockRunner
	key    string
}

// OnCommand matches an exact command line.
func (m *MockRunner) OnCommand(name string, args ...string) *MockStub {
	return &MockStub{runner: m, key: commandKey(name, args)}
}

// OnAnyCommand matches every command not matched more specifically.
func (m *MockRunner) OnAnyCommand() *MockStub {
	return &MockStub{runner: m, key: "*"}
}

// Return sets the response for the matched command.
func (s *MockStub) Return(stdout string, err error) {
	s.runner.Responses[s.key] = MockResponse{Stdout: stdout, Err: err}
}

// Run implements CommandRunner. Match order: exact command line,
// bare command name, wildcard, then DefaultResponse.
func (m *MockRunner) Run(dir, name string, args ...string) (string, error) {
	m.Calls = append(m.Calls, Call{WorkDir: dir, Command: name, Args: args})

	if resp, ok := m.Responses[commandKey(name, args)]; ok {
		return resp.Stdout, resp.Err
	}
	if resp, ok := m.Responses[name]; ok {
		return resp.Stdout, resp.Err
	}
	if resp, ok := m.Responses["*"]; ok {
		return resp.Stdout, resp.Err
	}
	return m.DefaultResponse.Stdout, m.DefaultResponse.Err
}

// WasCalled reports whether a command was run. With args, the recorded
// call must start with those args.
func (m *MockRunner) WasCalled(name string, args ...string) bool {
	for _, call := range m.Calls {
		if call.Command != name {
			continue
		}
		if len(args) == 0 {
			return true
		}
		if len(call.Args) >= len(args) && argsMatch(call.Args[:len(args)], args) {
			return true
		}
	}
	return false
}

// CallCount returns how many times a command was run.
func (m *MockRunner) CallCount(name string) int {
	count := 0
	for _, call := range m.Calls {
		if call.Command == name {
			count++
		}
	}
	return count
}

// SequentialMockRunner is a CommandRunner that replays responses in
// the order they were added, regardless of the command. Use it to
// script a known command sequence.
type SequentialMockRunner struct {
	// Calls records every Run invocation in order.
	Calls []Call

	queue []MockResponse
}

// NewSequentialMockRunner creates an empty sequential runner.
func NewSequentialMockRunner() *SequentialMockRunner {
	return &SequentialMockRunner{}
}

// AddOutput queues a response.
func (m *SequentialMockRunner) AddOutput(stdout string, err error) {
	m.queue = append(m.queue, MockResponse{Stdout: stdout, Err: err})
}

// AddOutputError queues a failing response whose error carries the
// given command output.
func (m *SequentialMockRunner) AddOutputError(stdout, errOutput string, err error) {
	m.queue = append(m.queue, MockResponse{
		Stdout: stdout,
		Err:    &CommandError{Output: errOutput, Err: err},
	})
}

// Run implements CommandRunner. Once the queue is exhausted, further
// calls succeed with empty output.
func (m *SequentialMockRunner) Run(dir, name string, args ...string) (string, error) {
	m.Calls = append(m.Calls, Call{WorkDir: dir, Command: name, Args: args})

	if len(m.queue) == 0 {
		return "", nil
	}
	resp := m.queue[0]
	m.queue = m.queue[1:]
	return resp.Stdout, resp.Err
}

func commandKey(name string, args []string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}

func argsMatch(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}
	for i := range actual {
		if actual[i] != expected[i] {
			return false
		}
	}
	return true
}
