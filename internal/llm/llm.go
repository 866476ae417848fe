package llm

import (
	"context"
	"encoding/json"
	"errors"
)

// Client abstracts AI providers that turn free-text plan requests into
// structured work-item candidates. The raw JSON is untrusted and partial;
// the planner normalizes it before it reaches the schedule engine.
type Client interface {
	ParsePlan(ctx context.Context, input ParseInput) (json.RawMessage, error)
}

// ParseInput captures the inputs for plan parsing. Known fabric and client
// names are passed along so the model can anchor its answer to real records.
type ParseInput struct {
	Text    string
	Fabrics []string
	Clients []string
}

// ErrNotImplemented is returned by the placeholder client.
var ErrNotImplemented = errors.New("plan parser not implemented")

// PlaceholderClient is a stub implementation used when no provider is
// configured.
type PlaceholderClient struct{}

// ParsePlan returns ErrNotImplemented.
func (PlaceholderClient) ParsePlan(ctx context.Context, input ParseInput) (json.RawMessage, error) {
	_ = ctx
	_ = input
	return nil, ErrNotImplemented
}
