// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP client for the Mistral chat
// completions API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/morganforge/mistral-tui/internal/config"
	"github.com/morganforge/mistral-tui/internal/model"
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// ClientError represents an error from the API client.
type ClientError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *ClientError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

// ErrorType categorizes client errors for handling.
type ErrorType int

const (
	ErrTypeUnknown ErrorType = iota
	ErrTypeAuth
	ErrTypeTimeout
	ErrTypeRateLimited
	ErrTypeConnection
	ErrTypeInvalidResponse
)

// Sentinel errors for easy checking.
var (
	ErrAuth        = &ClientError{Type: ErrTypeAuth, Message: "invalid or missing API key"}
	ErrTimeout     = &ClientError{Type: ErrTypeTimeout, Message: "request timed out"}
	ErrRateLimited = &ClientError{Type: ErrTypeRateLimited, Message: "rate limited by the API"}
)

// IsAuth checks if an error is an authentication error.
func IsAuth(err error) bool {
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return clientErr.Type == ErrTypeAuth
	}
	return false
}

// IsTimeout checks if an error is a timeout error.
func IsTimeout(err error) bool {
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return clientErr.Type == ErrTypeTimeout
	}
	return false
}

// IsRateLimited checks if an error indicates API rate limiting.
func IsRateLimited(err error) bool {
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return clientErr.Type == ErrTypeRateLimited
	}
	return false
}

// =============================================================================
// CLIENT
// =============================================================================

const chatCompletionsPath = "/v1/chat/completions"

// Client handles communication with the Mistral API.
//
// The Client is safe for concurrent use.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// New creates a client from configuration.
func New(cfg *config.Config) *Client {
	var limiter *rate.Limiter
	if rpm := cfg.API.RequestsPerMinute; rpm > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(rpm)/60.0), 1)
	}

	return &Client{
		baseURL: cfg.API.BaseURL,
		apiKey:  cfg.API.Key,
		model:   cfg.Model,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.API.TimeoutSecs) * time.Second,
		},
		limiter: limiter,
	}
}

// Model returns the model sent with chat requests.
func (c *Client) Model() string {
	return c.model
}

// SetModel updates the model sent with chat requests.
func (c *Client) SetModel(name string) {
	c.model = name
}

// =============================================================================
// CHAT
// =============================================================================

// Chat sends the conversation history and returns the assistant reply.
func (c *Client) Chat(ctx context.Context, messages []*model.Message) (*ChatResponse, error) {
	if c.apiKey == "" {
		return nil, ErrAuth
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, ErrTimeout
		}
	}

	reqBody := ChatRequest{
		Model:    c.model,
		Messages: toWire(messages),
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to marshal request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+chatCompletionsPath, bytes.NewReader(body))
	if err != nil {
		return nil, &ClientError{Type: ErrTypeConnection, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return nil, ErrTimeout
		}
		return nil, &ClientError{Type: ErrTypeConnection, Message: "request failed", Cause: err}
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrAuth
	case http.StatusTooManyRequests:
		return nil, ErrRateLimited
	default:
		var apiErr apiError
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Message != "" {
			return nil, &ClientError{Type: ErrTypeInvalidResponse, Message: apiErr.Message}
		}
		return nil, &ClientError{
			Type:    ErrTypeInvalidResponse,
			Message: "chat request failed: " + resp.Status,
		}
	}

	var result ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to decode response", Cause: err}
	}

	slog.Debug("chat completion",
		"model", result.Model,
		"prompt_tokens", result.Usage.PromptTokens,
		"completion_tokens", result.Usage.CompletionTokens,
		"elapsed", time.Since(start))

	return &result, nil
}

// toWire converts conversation messages to the wire format.
func toWire(messages []*model.Message) []ChatMessage {
	wire := make([]ChatMessage, 0, len(messages))
	for _, m := range messages {
		wire = append(wire, ChatMessage{
			Role:    m.Role.String(),
			Content: m.Content,
		})
	}
	return wire
}
