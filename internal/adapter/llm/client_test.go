package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/moazzaza2009/ai-chat/internal/domain"
)

func TestClientComplete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Fatalf("unexpected method: %s", r.Method)
		}
		var req struct {
			Model    string        `json:"model"`
			Messages []ChatMessage `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Model != "gpt" || len(req.Messages) != 2 {
			t.Fatalf("unexpected request: %+v", req)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"c1","object":"chat.completion","created":1,"model":"gpt","choices":[{"index":0,"message":{"role":"assistant","content":"Hi"},"finish_reason":"stop"}]}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "", "gpt", time.Second)
	reply, err := client.Complete(context.Background(), []ChatMessage{
		{Role: "user", Content: "Hello"},
		{Role: "assistant", Content: "Hey"},
	})
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if reply.Role != "assistant" || reply.Content != "Hi" {
		t.Fatalf("unexpected reply: %+v", reply)
	}
}

func TestClientCompleteUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `{"error":{"message":"rate limited"}}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "", "gpt", time.Second)
	_, err := client.Complete(context.Background(), []ChatMessage{{Role: "user", Content: "Hello"}})

	var gatewayErr *domain.GatewayError
	if !errors.As(err, &gatewayErr) {
		t.Fatalf("expected GatewayError, got %v", err)
	}
	if gatewayErr.Status != http.StatusTooManyRequests {
		t.Fatalf("expected status 429, got %d", gatewayErr.Status)
	}
	if !strings.Contains(gatewayErr.Body, "rate limited") {
		t.Fatalf("expected body to carry upstream message, got %q", gatewayErr.Body)
	}
}

func TestClientCompleteTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := NewClient(server.URL, "", "gpt", 20*time.Millisecond)
	_, err := client.Complete(context.Background(), []ChatMessage{{Role: "user", Content: "Hello"}})

	var gatewayErr *domain.GatewayError
	if !errors.As(err, &gatewayErr) {
		t.Fatalf("expected GatewayError on timeout, got %v", err)
	}
	if gatewayErr.Status != 0 {
		t.Fatalf("expected no upstream status on timeout, got %d", gatewayErr.Status)
	}
}

func TestClientCompleteMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `not json`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "", "gpt", time.Second)
	_, err := client.Complete(context.Background(), []ChatMessage{{Role: "user", Content: "Hello"}})

	var gatewayErr *domain.GatewayError
	if !errors.As(err, &gatewayErr) {
		t.Fatalf("expected GatewayError, got %v", err)
	}
}

func TestClientCompleteEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"c1","object":"chat.completion","created":1,"model":"gpt","choices":[]}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "", "gpt", time.Second)
	_, err := client.Complete(context.Background(), []ChatMessage{{Role: "user", Content: "Hello"}})

	var gatewayErr *domain.GatewayError
	if !errors.As(err, &gatewayErr) {
		t.Fatalf("expected GatewayError for empty choices, got %v", err)
	}
}

func TestClientSetHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Fatalf("unexpected Authorization header: %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"c1","object":"chat.completion","created":1,"model":"gpt","choices":[{"index":0,"message":{"role":"assistant","content":"ok"}}]}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret", "gpt", time.Second)
	if _, err := client.Complete(context.Background(), []ChatMessage{{Role: "user", Content: "Hello"}}); err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
}

func TestGatewayErrorOmitsAPIKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error":{"message":"bad key"}}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "sk-super-secret", "gpt", time.Second)
	_, err := client.Complete(context.Background(), []ChatMessage{{Role: "user", Content: "Hello"}})
	if err == nil {
		t.Fatalf("expected error")
	}
	if strings.Contains(err.Error(), "sk-super-secret") {
		t.Fatalf("error leaks the API key: %v", err)
	}
}

func TestMockClientComplete(t *testing.T) {
	mock := NewMockClient()
	reply, err := mock.Complete(context.Background(), []ChatMessage{{Role: "user", Content: "Hello"}})
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if reply.Role != "assistant" || reply.Content == "" {
		t.Fatalf("unexpected reply: %+v", reply)
	}
}
