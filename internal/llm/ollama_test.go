package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOllamaClient_Complete(t *testing.T) {
	var gotReq generateRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		json.NewEncoder(w).Encode(generateResponse{Response: "generated text", Done: true})
	}))
	defer server.Close()

	client := NewOllamaClient(OllamaConfig{
		BaseURL:      server.URL,
		Model:        "qwen2.5:7b",
		SystemPrompt: "stay on topic",
		Temperature:  0.7,
		MaxTokens:    150,
	})

	text, err := client.Complete(context.Background(), "what is a widget")
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if text != "generated text" {
		t.Errorf("got %q", text)
	}

	if gotReq.Model != "qwen2.5:7b" {
		t.Errorf("model = %q", gotReq.Model)
	}
	if gotReq.System != "stay on topic" {
		t.Errorf("system prompt not forwarded: %q", gotReq.System)
	}
	if gotReq.Options.Temperature != 0.7 || gotReq.Options.NumPredict != 150 {
		t.Errorf("options not forwarded: %+v", gotReq.Options)
	}
	if gotReq.Stream {
		t.Error("streaming must be disabled")
	}
}

func TestOllamaClient_Embed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/embed" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req embedRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		if req.Input != "What does EVA do?" {
			t.Errorf("input = %q", req.Input)
		}
		json.NewEncoder(w).Encode(embedResponse{Embeddings: [][]float32{{0.1, 0.2, 0.3}}})
	}))
	defer server.Close()

	client := NewOllamaClient(OllamaConfig{BaseURL: server.URL})

	vec, err := client.Embed(context.Background(), "What does EVA do?")
	if err != nil {
		t.Fatalf("Embed failed: %v", err)
	}
	if len(vec) != 3 || vec[0] != 0.1 {
		t.Errorf("unexpected vector: %v", vec)
	}
}

func TestOllamaClient_EmbedEmptyResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(embedResponse{})
	}))
	defer server.Close()

	client := NewOllamaClient(OllamaConfig{BaseURL: server.URL})
	if _, err := client.Embed(context.Background(), "text"); err == nil {
		t.Error("expected an error for an empty embedding response")
	}
}

func TestOllamaClient_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer server.Close()

	client := NewOllamaClient(OllamaConfig{BaseURL: server.URL})
	if _, err := client.Complete(context.Background(), "prompt"); err == nil {
		t.Error("expected an error for a non-200 status")
	}
}

func TestOllamaClient_HealthCheck(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/version" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"version":"0.5.0"}`))
	}))
	defer server.Close()

	client := NewOllamaClient(OllamaConfig{BaseURL: server.URL})
	if err := client.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck failed: %v", err)
	}
}

func TestOllamaClient_HealthCheckUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // immediately unreachable

	client := NewOllamaClient(OllamaConfig{BaseURL: server.URL})
	if err := client.HealthCheck(context.Background()); err == nil {
		t.Error("expected an error for an unreachable server")
	}
}

func TestOllamaClient_Defaults(t *testing.T) {
	client := NewOllamaClient(OllamaConfig{})
	if client.GetModel() != "nomic-embed-text" {
		t.Errorf("default model = %q", client.GetModel())
	}
	if client.baseURL != "http://localhost:11434" {
		t.Errorf("default base URL = %q", client.baseURL)
	}
}
