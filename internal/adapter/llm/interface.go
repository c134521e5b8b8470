package llm

import "context"

// CompletionClient defines the interface for the completion gateway.
type CompletionClient interface {
	// Complete sends the full message history and returns the next
	// assistant turn.
	Complete(ctx context.Context, messages []ChatMessage) (ChatMessage, error)
}

// Ensure Client implements CompletionClient interface.
var _ CompletionClient = (*Client)(nil)
