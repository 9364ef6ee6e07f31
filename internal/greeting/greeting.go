// Package greeting implements the Lambda function that answers every
// invocation with a configurable greeting.
package greeting

import (
	"context"
	"encoding/json"
	"net/http"
	"os"

	"go.uber.org/zap"

	applog "github.com/janisto/greeting-lambda/internal/platform/logging"
)

const (
	// EnvKey is the environment variable holding the greeting.
	EnvKey = "greeting"
	// DefaultGreeting is used when EnvKey is unset.
	DefaultGreeting = "Hi"
	// ContentType is the only header the function returns.
	ContentType = "application/json; charset=utf-8"
)

// Response is the proxy-style result handed back to the host runtime.
type Response struct {
	StatusCode int               `json:"statusCode"`
	Headers    map[string]string `json:"headers"`
	Body       string            `json:"body"`
}

// Body is the document serialized into Response.Body.
type Body struct {
	Message string `json:"message"`
}

// LookupFunc reports the value of an environment variable and whether it is set.
type LookupFunc func(key string) (string, bool)

// Option configures a Handler.
type Option func(*Handler)

// WithLookup replaces os.LookupEnv as the environment source.
func WithLookup(fn LookupFunc) Option {
	return func(h *Handler) {
		if fn != nil {
			h.lookup = fn
		}
	}
}

// Handler produces greeting responses. It holds no mutable state and is safe
// for concurrent use.
type Handler struct {
	lookup LookupFunc
}

// New returns a Handler reading the process environment.
func New(opts ...Option) *Handler {
	h := &Handler{lookup: os.LookupEnv}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Greeting returns the configured greeting, or DefaultGreeting when unset.
// A variable set to the empty string yields an empty greeting.
func (h *Handler) Greeting() string {
	if v, ok := h.lookup(EnvKey); ok {
		return v
	}
	return DefaultGreeting
}

// Handle answers one invocation. The event is accepted for signature
// compatibility only and never inspected.
func (h *Handler) Handle(ctx context.Context, _ json.RawMessage) (Response, error) {
	msg := Message(h.Greeting())
	body, err := EncodeBody(msg)
	if err != nil {
		return Response{}, err
	}
	applog.LoggerFromContext(ctx).Debug("greeting rendered", zap.String("message", msg))
	return Response{
		StatusCode: http.StatusOK,
		Headers:    map[string]string{"Content-Type": ContentType},
		Body:       body,
	}, nil
}

// Message formats the greeting sentence.
func Message(greeting string) string {
	return greeting + " from Lambda!"
}
