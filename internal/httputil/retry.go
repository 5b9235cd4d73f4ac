// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across stages.
package httputil

import (
	"io"
	"math"
	"net/http"
	"time"
)

// RetryBaseDelay controls the base duration for exponential backoff on
// HTTP 429 responses. Tests override this to avoid real sleeps.
var RetryBaseDelay = 2 * time.Second

const defaultMaxRetries = 2

// RetryTransport is an http.RoundTripper that retries HTTP 429 (Too Many
// Requests) with exponential backoff: RetryBaseDelay, doubled each attempt.
// It wraps the inference client's transport so rate limiting is absorbed
// below the request level.
type RetryTransport struct {
	base       http.RoundTripper
	maxRetries int
}

// NewRetryTransport wraps base (http.DefaultTransport when nil). When
// maxRetries is 0 the default (2) is used.
func NewRetryTransport(base http.RoundTripper, maxRetries int) *RetryTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}
	return &RetryTransport{base: base, maxRetries: maxRetries}
}

// UserAgentTransport sets a fixed User-Agent header on every request before
// delegating to the wrapped transport.
type UserAgentTransport struct {
	Base      http.RoundTripper
	UserAgent string
}

func (t *UserAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.UserAgent != "" && req.Header.Get("User-Agent") == "" {
		clone := req.Clone(req.Context())
		clone.Header.Set("User-Agent", t.UserAgent)
		req = clone
	}
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(req)
}

// RoundTrip sends the request, retrying 429 responses. A request whose body
// cannot be replayed (no GetBody) is sent exactly once. On each 429 the
// response body is drained and closed before sleeping; a context cancelled
// during a backoff wait returns ctx.Err(). After exhausting retries the
// last 429 response is returned so the caller can inspect it.
func (t *RetryTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	for attempt := 0; ; attempt++ {
		resp, err := t.base.RoundTrip(req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusTooManyRequests || attempt >= t.maxRetries {
			return resp, nil
		}
		if req.Body != nil && req.GetBody == nil {
			return resp, nil
		}

		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		backoff := time.Duration(math.Pow(2, float64(attempt))) * RetryBaseDelay
		select {
		case <-req.Context().Done():
			return nil, req.Context().Err()
		case <-time.After(backoff):
		}

		if req.Body != nil {
			body, err := req.GetBody()
			if err != nil {
				return nil, err
			}
			clone := req.Clone(req.Context())
			clone.Body = body
			req = clone
		}
	}
}
