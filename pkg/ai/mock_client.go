package ai

import (
	"context"
	"time"

	"agrisense/pkg/advisory"
)

const mockSource = "Mock Ollama (Offline)"

type mockClient struct {
	delay time.Duration
}

// NewMock returns the offline advisory client. It evaluates the rule table
// after a fixed artificial delay so callers exercise the same asynchronous
// shape as the networked path.
func NewMock() Client { return &mockClient{delay: 500 * time.Millisecond} }

func (m *mockClient) Advise(ctx context.Context, req advisory.Context) (*Advisory, error) {
	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	res := advisory.Evaluate(req)
	return &Advisory{
		Result:    res,
		Timestamp: time.Now().Format(time.RFC3339),
		Source:    mockSource,
	}, nil
}
