// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package analyze submits normalized document text to an inference service
// and returns the structured requirements report.
package analyze

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/pdiddy/requirements-engine/pkg/types"
)

const (
	// defaultMaxInputChars caps the submitted text when the config sets no
	// budget. Keeps the prompt inside small local-model context windows.
	defaultMaxInputChars = 12000

	defaultLanguage   = "German"
	defaultMaxRetries = 1
)

// Backend abstracts the inference service so tests can supply a mock.
type Backend interface {
	// Complete submits a system instruction and a user message and returns
	// the raw response content.
	Complete(ctx context.Context, system, user string) (string, error)
}

// backoffBase controls the base duration for retry backoff. Tests override
// this to avoid real sleeps.
var backoffBase = time.Second

// Analyze truncates text to the configured character budget, submits the
// two-message exchange, and returns the model's answer unmodified. Transport
// failures surface as KindInferenceError after the configured retries; a
// blank answer surfaces as KindEmptyResponse, never as an empty report.
func Analyze(ctx context.Context, backend Backend, text string, cfg types.AnalysisConfig) (*types.AnalysisReport, error) {
	maxChars := cfg.MaxInputChars
	if maxChars <= 0 {
		maxChars = defaultMaxInputChars
	}
	language := cfg.Language
	if language == "" {
		language = defaultLanguage
	}
	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	system, err := systemPrompt(language)
	if err != nil {
		return nil, types.WrapStageError(types.KindInferenceError, err, "rendering system prompt")
	}

	user := userPrefix + Truncate(text, maxChars)

	content, err := completeWithRetry(ctx, backend, system, user, maxRetries)
	if err != nil {
		return nil, types.WrapStageError(types.KindInferenceError, err, "calling inference service")
	}
	if strings.TrimSpace(content) == "" {
		return nil, types.NewStageError(types.KindEmptyResponse, "inference service returned empty content")
	}

	return &types.AnalysisReport{Content: content, Model: cfg.Model}, nil
}

// Truncate returns at most max characters of text, counted in runes so a
// multi-byte character is never split.
func Truncate(text string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max])
}

// completeWithRetry retries backend failures with exponential backoff,
// honoring context cancellation during the waits.
func completeWithRetry(ctx context.Context, backend Backend, system, user string, maxRetries int) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(math.Pow(2, float64(attempt-1))) * backoffBase
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(backoff):
			}
		}

		content, err := backend.Complete(ctx, system, user)
		if err == nil {
			return content, nil
		}
		lastErr = err
	}
	return "", fmt.Errorf("after %d retries: %w", maxRetries, lastErr)
}
