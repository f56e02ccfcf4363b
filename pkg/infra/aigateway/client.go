package aigateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/BOKA26/lovotech-nexus/pkg/domain/chat"
)

var (
	// ErrMissingCredential means the server-held gateway key is absent; a
	// configuration error, never caused by the caller.
	ErrMissingCredential = errors.New("ai gateway api key is not configured")

	// ErrQuotaExceeded maps the upstream's 429.
	ErrQuotaExceeded = errors.New("ai gateway rate limit exceeded")

	// ErrInsufficientCredits maps the upstream's 402.
	ErrInsufficientCredits = errors.New("ai gateway credits exhausted")
)

// UpstreamError carries any other non-2xx upstream outcome. It is logged
// server-side in full and must never be surfaced verbatim to the caller.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("ai gateway returned %d: %s", e.StatusCode, e.Body)
}

type completionRequest struct {
	Model    string         `json:"model"`
	Messages []chat.Message `json:"messages"`
	Stream   bool           `json:"stream"`
}

type Client interface {
	// StreamCompletion forwards the conversation with the fixed system
	// prompt injected as the first message and returns the upstream's
	// event-stream body for verbatim piping. The caller owns closing it.
	StreamCompletion(ctx context.Context, conversation chat.Conversation) (io.ReadCloser, error)
}

type client struct {
	httpClient   *http.Client
	gatewayURL   string
	apiKey       string
	model        string
	systemPrompt string
}

func NewClient(gatewayURL, apiKey, model string) Client {
	return &client{
		// No client-side timeout: streamed completions hold the connection
		// open for as long as the upstream generates.
		httpClient:   &http.Client{},
		gatewayURL:   gatewayURL,
		apiKey:       apiKey,
		model:        model,
		systemPrompt: chat.SystemPrompt,
	}
}

func (c *client) StreamCompletion(ctx context.Context, conversation chat.Conversation) (io.ReadCloser, error) {
	if c.apiKey == "" {
		return nil, ErrMissingCredential
	}

	messages := make([]chat.Message, 0, len(conversation)+1)
	messages = append(messages, chat.Message{Role: chat.RoleSystem, Content: c.systemPrompt})
	messages = append(messages, conversation...)

	payload, err := json.Marshal(completionRequest{
		Model:    c.model,
		Messages: messages,
		Stream:   true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.gatewayURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create completion request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "text/event-stream")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("completion request failed: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer func() { _ = resp.Body.Close() }()
		switch resp.StatusCode {
		case http.StatusTooManyRequests:
			return nil, ErrQuotaExceeded
		case http.StatusPaymentRequired:
			return nil, ErrInsufficientCredits
		}
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 8*1024))
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return resp.Body, nil
}
