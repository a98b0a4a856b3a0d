package scheduling

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCompletionClient_Complete(t *testing.T) {
	t.Run("fails fast without a credential and makes no network call", func(t *testing.T) {
		calls := 0
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
		}))
		defer srv.Close()

		client := NewCompletionClient("", srv.URL, "llama-3.3-70b-versatile")
		_, err := client.Complete(context.Background(), "prompt")

		var configErr *ConfigurationError
		if !errors.As(err, &configErr) {
			t.Fatalf("expected ConfigurationError, got %v", err)
		}
		if calls != 0 {
			t.Fatalf("expected 0 upstream calls, got %d", calls)
		}
	})

	t.Run("sends the fixed decoding parameters and bearer credential", func(t *testing.T) {
		var got completionRequest
		var authHeader string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader = r.Header.Get("Authorization")
			if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
				t.Errorf("failed to decode request body: %v", err)
			}
			w.Write([]byte(`{"choices":[{"message":{"content":"hello"}}]}`))
		}))
		defer srv.Close()

		client := NewCompletionClient("test-key", srv.URL, "llama-3.3-70b-versatile")
		content, err := client.Complete(context.Background(), "find a slot")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if content != "hello" {
			t.Fatalf("unexpected content: %q", content)
		}

		if authHeader != "Bearer test-key" {
			t.Fatalf("unexpected Authorization header: %q", authHeader)
		}
		if got.Model != "llama-3.3-70b-versatile" {
			t.Fatalf("unexpected model: %q", got.Model)
		}
		if got.Temperature != 0.5 || got.TopP != 1 || got.MaxTokens != 1500 || got.Stream {
			t.Fatalf("unexpected decoding parameters: %+v", got)
		}
		if len(got.Messages) != 2 || got.Messages[0].Role != "system" || got.Messages[1].Role != "user" {
			t.Fatalf("expected a system+user turn, got %+v", got.Messages)
		}
		if got.Messages[1].Content != "find a slot" {
			t.Fatalf("unexpected user prompt: %q", got.Messages[1].Content)
		}
	})

	t.Run("surfaces non-success statuses as UpstreamError with the raw body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":"rate limited"}`))
		}))
		defer srv.Close()

		client := NewCompletionClient("test-key", srv.URL, "m")
		_, err := client.Complete(context.Background(), "prompt")

		var upstreamErr *UpstreamError
		if !errors.As(err, &upstreamErr) {
			t.Fatalf("expected UpstreamError, got %v", err)
		}
		if upstreamErr.StatusCode != http.StatusTooManyRequests {
			t.Fatalf("unexpected status: %d", upstreamErr.StatusCode)
		}
		if upstreamErr.Body != `{"error":"rate limited"}` {
			t.Fatalf("unexpected body: %q", upstreamErr.Body)
		}
	})

	t.Run("treats missing content at any level as EmptyResponseError", func(t *testing.T) {
		bodies := []string{
			`{}`,
			`{"choices":[]}`,
			`{"choices":[{"message":{}}]}`,
			`{"choices":[{"message":{"content":""}}]}`,
			`not json at all`,
		}
		for _, body := range bodies {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(body))
			}))

			client := NewCompletionClient("test-key", srv.URL, "m")
			_, err := client.Complete(context.Background(), "prompt")
			srv.Close()

			var emptyErr *EmptyResponseError
			if !errors.As(err, &emptyErr) {
				t.Fatalf("body %q: expected EmptyResponseError, got %v", body, err)
			}
		}
	})
}
