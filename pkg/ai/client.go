package ai

import (
	"context"

	"agrisense/pkg/advisory"
)

// Advisory is what callers store and display. Source identifies which path
// produced it; advisories are explicitly non-authoritative.
type Advisory struct {
	advisory.Result
	Timestamp string `json:"timestamp"`
	Source    string `json:"source"`
}

type Client interface {
	Advise(ctx context.Context, req advisory.Context) (*Advisory, error)
}
