package scheduling

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Fixed decoding parameters for every completion request.
const (
	completionTemperature = 0.5
	completionTopP        = 1
	completionMaxTokens   = 1500
)

// chatMessage is one conversational turn sent to the completion endpoint.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
	TopP        float64       `json:"top_p"`
	Stream      bool          `json:"stream"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// CompletionClient issues one blocking chat-completions call per request.
// No retry, no backoff, no streaming.
type CompletionClient struct {
	APIKey     string
	APIURL     string
	Model      string
	HTTPClient *http.Client
}

// NewCompletionClient builds a client for the given endpoint and credential.
// LLM responses routinely take tens of seconds, hence the generous timeout.
func NewCompletionClient(apiKey, apiURL, model string) *CompletionClient {
	return &CompletionClient{
		APIKey:     apiKey,
		APIURL:     apiURL,
		Model:      model,
		HTTPClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// Complete sends the fixed system turn plus the user prompt and returns the
// raw text content of the first choice. The credential is checked before any
// network I/O so a misconfigured deployment fails fast.
func (c *CompletionClient) Complete(ctx context.Context, prompt string) (string, error) {
	if c.APIKey == "" {
		return "", &ConfigurationError{Message: "Groq API key not configured"}
	}

	payload := completionRequest{
		Model: c.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemInstruction},
			{Role: "user", Content: prompt},
		},
		Temperature: completionTemperature,
		MaxTokens:   completionMaxTokens,
		TopP:        completionTopP,
		Stream:      false,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.APIURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read completion response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &UpstreamError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var parsed completionResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", &EmptyResponseError{}
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", &EmptyResponseError{}
	}
	return parsed.Choices[0].Message.Content, nil
}
