// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import (
	"context"
	"fmt"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/pdiddy/requirements-engine/internal/httputil"
	"github.com/pdiddy/requirements-engine/pkg/types"
)

const (
	// defaultBaseURL targets a local Ollama server's OpenAI-compatible API.
	defaultBaseURL = "http://localhost:11434/v1"

	// defaultTimeout bounds the inference request. Local models on small
	// hardware can be slow, so the bound is generous but finite.
	defaultTimeout = 120 * time.Second
)

// ChatBackend talks to an OpenAI-compatible chat-completions endpoint and
// works against any inference server exposing that API surface.
type ChatBackend struct {
	client *openai.Client
	model  string
}

// NewChatBackend builds a backend from the analysis configuration. The HTTP
// client carries the configured request timeout and transport-level 429
// retry, so the call never runs on bare transport defaults.
func NewChatBackend(cfg types.AnalysisConfig) *ChatBackend {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	clientCfg.BaseURL = baseURL
	clientCfg.HTTPClient = &http.Client{
		Timeout: timeout,
		Transport: &httputil.UserAgentTransport{
			Base:      httputil.NewRetryTransport(nil, 0),
			UserAgent: cfg.UserAgent,
		},
	}

	return &ChatBackend{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
	}
}

// Complete performs the two-message exchange and returns the first choice's
// content. A response without choices yields empty content, which the
// caller classifies as an empty-response failure.
func (b *ChatBackend) Complete(ctx context.Context, system, user string) (string, error) {
	resp, err := b.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: b.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
