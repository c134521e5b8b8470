// Package llm provides the completion gateway client. The upstream speaks
// the OpenAI chat-completions wire format.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/moazzaza2009/ai-chat/internal/domain"
)

// Client is the HTTP completion gateway client.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewClient creates a new gateway client. timeout bounds the whole upstream
// call; the upstream is untrusted for liveness.
func NewClient(baseURL, apiKey, model string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// ChatMessage represents a chat message on the wire.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatCompletionRequest represents the chat completion request.
type chatCompletionRequest struct {
	Model    string        `json:"model"`
	Messages []ChatMessage `json:"messages"`
}

// chatCompletionResponse represents the chat completion response.
type chatCompletionResponse struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Created int64    `json:"created"`
	Model   string   `json:"model"`
	Choices []choice `json:"choices"`
}

type choice struct {
	Index        int          `json:"index"`
	Message      *ChatMessage `json:"message,omitempty"`
	FinishReason string       `json:"finish_reason,omitempty"`
}

// Complete sends the full message history and returns the assistant's reply.
// Transport errors, non-success statuses, and malformed bodies all surface
// as *domain.GatewayError; the response body is carried for debuggability
// but the API key never is.
func (c *Client) Complete(ctx context.Context, messages []ChatMessage) (ChatMessage, error) {
	body, err := json.Marshal(&chatCompletionRequest{
		Model:    c.model,
		Messages: messages,
	})
	if err != nil {
		return ChatMessage{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return ChatMessage{}, fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return ChatMessage{}, &domain.GatewayError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return ChatMessage{}, &domain.GatewayError{Status: resp.StatusCode, Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return ChatMessage{}, &domain.GatewayError{Status: resp.StatusCode, Body: string(respBody)}
	}

	var result chatCompletionResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return ChatMessage{}, &domain.GatewayError{Status: resp.StatusCode, Body: string(respBody), Err: err}
	}
	if len(result.Choices) == 0 || result.Choices[0].Message == nil {
		return ChatMessage{}, &domain.GatewayError{Status: resp.StatusCode, Body: string(respBody), Err: fmt.Errorf("response has no choices")}
	}

	reply := *result.Choices[0].Message
	if reply.Role == "" {
		reply.Role = "assistant"
	}
	return reply, nil
}

// setHeaders sets common request headers.
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
}
