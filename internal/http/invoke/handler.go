// Package invoke exposes the function through the HTTP contract of the
// Lambda Runtime Interface Emulator, so local tooling built for
// `aws lambda invoke` style calls works against the dev server.
package invoke

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/janisto/greeting-lambda/internal/greeting"
	applog "github.com/janisto/greeting-lambda/internal/platform/logging"
	"github.com/janisto/greeting-lambda/internal/platform/respond"
)

const (
	// Path is the emulator's invocation endpoint.
	Path = "/2015-03-31/functions/function/invocations"
	// ErrorTypeHeader flags a failed invocation, as the emulator does.
	ErrorTypeHeader = "Lambda-Runtime-Function-Error-Type"
)

// Function is the single function the endpoint invokes.
type Function interface {
	Handle(ctx context.Context, event json.RawMessage) (greeting.Response, error)
}

// Handler returns the POST handler for Path. The raw request body is the
// event; an empty body is delivered as JSON null.
func Handler(fn Function) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		payload, err := io.ReadAll(r.Body)
		if err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				respond.Problem(w, r, http.StatusRequestEntityTooLarge, "event exceeds size limit", err)
				return
			}
			respond.Problem(w, r, http.StatusBadRequest, "failed to read event", err)
			return
		}
		payload = bytes.TrimSpace(payload)
		if len(payload) == 0 {
			payload = []byte("null")
		}
		if !json.Valid(payload) {
			respond.Problem(w, r, http.StatusBadRequest, "event is not valid JSON")
			return
		}

		resp, err := fn.Handle(ctx, json.RawMessage(payload))
		if err != nil {
			w.Header().Set(ErrorTypeHeader, "Unhandled")
			respond.Problem(w, r, http.StatusBadGateway, "function returned an error", err)
			return
		}

		applog.LogInfo(ctx, "function invoked", zap.Int("statusCode", resp.StatusCode), zap.Int("eventBytes", len(payload)))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(resp); err != nil {
			applog.LogError(ctx, "failed to write invocation result", err)
		}
	}
}
