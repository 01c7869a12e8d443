package pr

import "context"

// MockProvider is a mock implementation of Provider for testing.
type MockProvider struct {
	CreatePRFunc func(ctx context.Context, opts Options) (*PullRequest, error)
	GetPRFunc    func(ctx context.Context, id int) (*PullRequest, error)

	// CreateCalls records the options passed to CreatePR.
	CreateCalls []Options
}

// CreatePR implements Provider.
func (m *MockProvider) CreatePR(ctx context.Context, opts Options) (*PullRequest, error) {
	m.CreateCalls = append(m.CreateCalls, opts)
	if m.CreatePRFunc != nil {
		return m.CreatePRFunc(ctx, opts)
	}
	return &PullRequest{
		ID:    1,
		URL:   "https://example.com/pr/1",
		Title: opts.Title,
		Head:  opts.Head,
		Base:  opts.Base,
		State: StateOpen,
	}, nil
}

// GetPR implements Provider.
func (m *MockProvider) GetPR(ctx context.Context, id int) (*PullRequest, error) {
	if m.GetPRFunc != nil {
		return m.GetPRFunc(ctx, id)
	}
	return &PullRequest{ID: id, State: StateOpen}, nil
}
