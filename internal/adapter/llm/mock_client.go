package llm

import (
	"context"
	"fmt"
)

// MockClient is a mock implementation of CompletionClient for testing and
// for running without an upstream.
type MockClient struct {
	// Reply overrides the generated response when non-empty.
	Reply string
	// Err is returned instead of a reply when set.
	Err error
}

// NewMockClient creates a new mock completion client.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Ensure MockClient implements CompletionClient interface.
var _ CompletionClient = (*MockClient)(nil)

// Complete returns a canned assistant turn.
func (m *MockClient) Complete(ctx context.Context, messages []ChatMessage) (ChatMessage, error) {
	if m.Err != nil {
		return ChatMessage{}, m.Err
	}
	if m.Reply != "" {
		return ChatMessage{Role: "assistant", Content: m.Reply}, nil
	}
	return ChatMessage{Role: "assistant", Content: m.generateMockResponse(messages)}, nil
}

// generateMockResponse generates a response based on the last user message.
func (m *MockClient) generateMockResponse(messages []ChatMessage) string {
	var lastUserMessage string
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == "user" {
			lastUserMessage = messages[i].Content
			break
		}
	}
	if lastUserMessage == "" {
		return "[MOCK] This is a mock response from the completion client."
	}
	return fmt.Sprintf("[MOCK] Received your message: %q. This is a mock response.", truncate(lastUserMessage, 100))
}

// truncate truncates a string to the given length.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
