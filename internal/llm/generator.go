// Package llm wraps the language-model call behind a narrow Generator
// interface and classifies its failures into the categories the
// conversation flow reports to users.
package llm

import (
	"context"
	"errors"
	"strings"
)

// Generator produces a model response for a fully assembled prompt.
// Implementations must respect ctx cancellation and return a non-nil
// error on any failure, including empty model output.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ErrEmptyResponse is returned when the model call succeeds at the
// transport level but yields no usable text.
var ErrEmptyResponse = errors.New("llm: model returned no text")

// IsTimeoutError reports whether err represents a deadline or
// cancellation outcome of the model call.
func IsTimeoutError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

// IsAPIKeyError reports whether err points at a missing or rejected
// API key. Matching is textual because the upstream SDK wraps HTTP
// errors without stable sentinel values.
func IsAPIKeyError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "api key") ||
		strings.Contains(msg, "api_key") ||
		strings.Contains(msg, "unauthenticated") ||
		strings.Contains(msg, "permission denied")
}

// IsNetworkError reports whether err looks like a connectivity
// failure rather than a model-side rejection.
func IsNetworkError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "network") ||
		strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "no such host") ||
		strings.Contains(msg, "dial tcp")
}
