package llmprovider_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"feedback-server/services/feedback-api/internal/domain/llm"
	"feedback-server/services/feedback-api/internal/infrastructure/llmprovider"
)

func TestClient_CreateChatCompletion(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody llm.ChatCompletionRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request body: %v", err)
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(llm.ChatCompletionResponse{
			ID:    "cmpl-1",
			Model: "test-model",
			Choices: []llm.ChatCompletionChoice{
				{Message: llm.ChatMessage{Role: "assistant", Content: "Generated text"}},
			},
		})
	}))
	defer server.Close()

	client := llmprovider.NewClient(server.URL, "secret-key", 5*time.Second)
	resp, err := client.CreateChatCompletion(context.Background(), llm.UserPrompt("test-model", "hello", 0.7, 100))
	if err != nil {
		t.Fatalf("CreateChatCompletion() error = %v", err)
	}

	if gotPath != "/v1/chat/completions" {
		t.Errorf("request path = %q, want /v1/chat/completions", gotPath)
	}
	if gotAuth != "Bearer secret-key" {
		t.Errorf("Authorization header = %q, want Bearer secret-key", gotAuth)
	}
	if gotBody.Model != "test-model" {
		t.Errorf("request model = %q, want test-model", gotBody.Model)
	}
	if resp.Text() != "Generated text" {
		t.Errorf("Text() = %q, want Generated text", resp.Text())
	}
}

func TestClient_CreateChatCompletion_NoAuthHeaderWithoutKey(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"ok"}}]}`))
	}))
	defer server.Close()

	client := llmprovider.NewClient(server.URL, "", 5*time.Second)
	if _, err := client.CreateChatCompletion(context.Background(), llm.UserPrompt("m", "p", 0.5, 10)); err != nil {
		t.Fatalf("CreateChatCompletion() error = %v", err)
	}
	if gotAuth != "" {
		t.Errorf("Authorization header = %q, want empty", gotAuth)
	}
}

func TestClient_CreateChatCompletion_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"rate limited"}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := llmprovider.NewClient(server.URL, "key", 5*time.Second)
	_, err := client.CreateChatCompletion(context.Background(), llm.UserPrompt("m", "p", 0.5, 10))
	if err == nil {
		t.Fatal("Expected an error for a 429 response")
	}
}

func TestClient_CreateChatCompletion_ContextCancellation(t *testing.T) {
	block := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer server.Close()
	defer close(block)

	client := llmprovider.NewClient(server.URL, "", 5*time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.CreateChatCompletion(ctx, llm.UserPrompt("m", "p", 0.5, 10))
	if err == nil {
		t.Fatal("Expected an error when the context deadline passes")
	}
}
