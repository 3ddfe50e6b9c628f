package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func claudeServer(t *testing.T, text string) (server *httptest.Server) {
	t.Helper()

	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claudeResp := ClaudeResponse{
			ID:   "test-id",
			Type: "message",
			Role: "assistant",
			Content: []Content{
				{
					Type: "text",
					Text: text,
				},
			},
			Model: ClaudeModel,
		}

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(claudeResp)
	}))
	return server
}

func TestNewClientDefaults(t *testing.T) {
	client := NewClient("key", "")
	if client.model != ClaudeModel {
		t.Errorf("Expected default model '%s', got '%s'", ClaudeModel, client.model)
	}

	if client.endpoint != ClaudeAPIEndpoint {
		t.Errorf("Expected endpoint '%s', got '%s'", ClaudeAPIEndpoint, client.endpoint)
	}
}

func TestComplete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
		}

		var req ClaudeRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			t.Errorf("Failed to decode request: %v", err)
		}

		if len(req.Messages) != 1 || req.Messages[0].Role != "user" {
			t.Errorf("Expected a single user message, got %+v", req.Messages)
		}

		if req.Temperature != temperature || req.TopP != topP {
			t.Errorf("Expected sampling %v/%v, got %v/%v", temperature, topP, req.Temperature, req.TopP)
		}

		claudeResp := ClaudeResponse{
			Content: []Content{{Type: "text", Text: "echo: " + req.Messages[0].Content}},
		}
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(claudeResp)
	}))
	defer server.Close()

	client := NewClient("test-key", "")
	client.endpoint = server.URL

	text, err := client.Complete(context.Background(), "hello")
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}

	if text != "echo: hello" {
		t.Errorf("Expected 'echo: hello', got '%s'", text)
	}
}

func TestAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": "Invalid request"}`))
	}))
	defer server.Close()

	client := NewClient("test-key", "")
	client.endpoint = server.URL

	_, err := client.Complete(context.Background(), "prompt")
	if err == nil {
		t.Fatal("Expected error for bad request, got nil")
	}

	if !strings.Contains(err.Error(), "400") {
		t.Errorf("Error should mention status code 400: %v", err)
	}
}

func TestInvalidJSONResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("not valid json"))
	}))
	defer server.Close()

	client := NewClient("test-key", "")
	client.endpoint = server.URL

	_, err := client.Complete(context.Background(), "prompt")
	if err == nil {
		t.Error("Expected error for invalid JSON, got nil")
	}
}

func TestEmptyContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claudeResp := ClaudeResponse{
			Content: []Content{},
		}

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(claudeResp)
	}))
	defer server.Close()

	client := NewClient("test-key", "")
	client.endpoint = server.URL

	_, err := client.Complete(context.Background(), "prompt")
	if err == nil {
		t.Fatal("Expected error for empty content, got nil")
	}

	if !strings.Contains(err.Error(), "no content") {
		t.Errorf("Error should mention 'no content': %v", err)
	}
}

func TestContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient("test-key", "")
	client.endpoint = server.URL

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err := client.Complete(ctx, "prompt")
	if err == nil {
		t.Error("Expected error for cancelled context, got nil")
	}
}

func TestRequestHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			t.Error("Missing Content-Type header")
		}

		if r.Header.Get("X-Api-Key") != "my-api-key" {
			t.Errorf("Expected API key 'my-api-key', got '%s'", r.Header.Get("X-Api-Key"))
		}

		if r.Header.Get("Anthropic-Version") != ClaudeAPIVersion {
			t.Errorf("Expected version '%s', got '%s'", ClaudeAPIVersion, r.Header.Get("Anthropic-Version"))
		}

		claudeResp := ClaudeResponse{
			Content: []Content{{Type: "text", Text: "ok"}},
		}

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(claudeResp)
	}))
	defer server.Close()

	client := NewClient("my-api-key", "")
	client.endpoint = server.URL

	_, _ = client.Complete(context.Background(), "Test")
}
