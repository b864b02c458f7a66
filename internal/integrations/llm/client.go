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

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Client клиент OpenAI-совместимого Chat Completions API
// (OpenAI, OpenRouter, vLLM, Ollama и т.п.)
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	log        Logger
}

// NewClient создает клиент. baseURL без /v1, например https://api.openai.com
func NewClient(baseURL, apiKey, model string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		log: log,
	}
}

// Complete отправляет system + user сообщения и возвращает текст первого ответа.
// temperature = 0: ответы должны быть воспроизводимыми.
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	temperature := 0.0
	wireReq := chatRequest{
		Model:       c.model,
		Temperature: &temperature,
	}
	if system != "" {
		wireReq.Messages = append(wireReq.Messages, chatMessage{Role: "system", Content: system})
	}
	wireReq.Messages = append(wireReq.Messages, chatMessage{Role: "user", Content: user})

	body, err := json.Marshal(wireReq)
	if err != nil {
		return "", fmt.Errorf("%w: marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: send request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", readProviderError(resp)
	}

	var wireResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&wireResp); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", ErrInvalidResponse, err)
	}
	if len(wireResp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in response", ErrInvalidResponse)
	}

	c.log.Info("Complete: model=%s prompt_tokens=%d completion_tokens=%d took=%s",
		wireResp.Model, wireResp.Usage.PromptTokens, wireResp.Usage.CompletionTokens, time.Since(start))

	return strings.TrimSpace(wireResp.Choices[0].Message.Content), nil
}

// readProviderError разбирает {"error":{"type":"...","message":"..."}}
func readProviderError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var wireErr struct {
		Error struct {
			Type    string `json:"type"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if json.Unmarshal(raw, &wireErr) == nil && wireErr.Error.Message != "" {
		return &ProviderError{StatusCode: resp.StatusCode, Type: wireErr.Error.Type, Message: wireErr.Error.Message}
	}
	return &ProviderError{StatusCode: resp.StatusCode, Message: string(raw)}
}
