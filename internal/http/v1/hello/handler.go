// Package hello serves the function's greeting as a typed, content-negotiated
// API operation.
package hello

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	"github.com/janisto/greeting-lambda/internal/greeting"
	applog "github.com/janisto/greeting-lambda/internal/platform/logging"
)

// Path is the route of the hello operation.
const Path = "/v1/hello"

// Function renders the greeting response.
type Function interface {
	Handle(ctx context.Context, event json.RawMessage) (greeting.Response, error)
}

// Register wires the hello operation into the provided API.
func Register(api huma.API, fn Function) {
	huma.Register(api, huma.Operation{
		OperationID: "get-hello",
		Method:      http.MethodGet,
		Path:        Path,
		Summary:     "Get the greeting",
		Description: "Invokes the function and returns the message from its response body.",
	}, func(ctx context.Context, _ *struct{}) (*GetOutput, error) {
		return get(ctx, fn)
	})
}

func get(ctx context.Context, fn Function) (*GetOutput, error) {
	resp, err := fn.Handle(ctx, nil)
	if err != nil {
		applog.LogError(ctx, "function failed", err, zap.String("path", Path))
		return nil, huma.Error502BadGateway("function returned an error")
	}
	var body greeting.Body
	if err := json.Unmarshal([]byte(resp.Body), &body); err != nil {
		applog.LogError(ctx, "function body is not JSON", err, zap.String("path", Path))
		return nil, huma.Error502BadGateway("function returned an invalid body")
	}
	applog.LogInfo(ctx, "hello get", zap.String("path", Path))
	return &GetOutput{Body: Data{Message: body.Message}}, nil
}
