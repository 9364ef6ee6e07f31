package main

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/janisto/greeting-lambda/internal/greeting"
	"github.com/janisto/greeting-lambda/internal/platform/config"
	applog "github.com/janisto/greeting-lambda/internal/platform/logging"
)

type handleFunc func(ctx context.Context, event json.RawMessage) (greeting.Response, error)

// withInvocationLogging gives every invocation a logger tagged with its
// request ID and X-Ray trace.
func withInvocationLogging(h *greeting.Handler) handleFunc {
	return func(ctx context.Context, event json.RawMessage) (greeting.Response, error) {
		return h.Handle(applog.WithInvocation(ctx), event)
	}
}

func main() {
	defer func() {
		if err := applog.Sync(); err != nil {
			applog.LogError(context.Background(), "logger sync error", err)
		}
	}()
	if err := applog.Err(); err != nil {
		applog.LogError(context.Background(), "logger init error", err)
	}
	if _, err := config.Load(); err != nil {
		applog.LogError(context.Background(), "config load failed", err)
	}

	lambda.Start(withInvocationLogging(greeting.New()))
}
