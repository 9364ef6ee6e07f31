// Package respond renders transport-level failures of the local invoke server
// as RFC 9457 Problem Details, in JSON or CBOR depending on the Accept header.
package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"strconv"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/fxamacker/cbor/v2"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	applog "github.com/janisto/greeting-lambda/internal/platform/logging"
)

const (
	contentTypeProblemJSON = "application/problem+json"
	contentTypeProblemCBOR = "application/problem+cbor"

	msgNotFound      = "resource not found"
	msgInternalError = "internal server error"
)

// Problem writes a Problem Details document. The body is CBOR when the client
// prefers application/cbor, JSON otherwise.
func Problem(w http.ResponseWriter, r *http.Request, status int, detail string, errs ...error) {
	model := &huma.ErrorModel{
		Title:  http.StatusText(status),
		Status: status,
		Detail: detail,
	}
	logProblem(r, status, detail, errors.Join(errs...))

	contentType := contentTypeProblemJSON
	var (
		body []byte
		err  error
	)
	if PrefersCBOR(r.Header.Get("Accept")) {
		contentType = contentTypeProblemCBOR
		body, err = cbor.Marshal(model)
	} else {
		body, err = json.Marshal(model)
	}
	if err != nil {
		applog.LogError(r.Context(), "failed to encode problem", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		applog.LogWarn(r.Context(), "failed to write problem", zap.Error(err))
	}
}

// NotFoundHandler emits a 404 Problem Details response.
func NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		Problem(w, r, http.StatusNotFound, msgNotFound)
	}
}

// MethodNotAllowedHandler emits a 405 Problem Details response with an Allow header.
func MethodNotAllowedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if allow := allowedMethods(r); len(allow) > 0 {
			w.Header().Set("Allow", strings.Join(allow, ", "))
		}
		Problem(w, r, http.StatusMethodNotAllowed, fmt.Sprintf("method %s not allowed", r.Method))
	}
}

// Recoverer converts panics into 500 Problem Details responses.
// http.ErrAbortHandler is re-raised so net/http can abort the connection.
func Recoverer() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				var err error
				switch v := rec.(type) {
				case error:
					err = v
				default:
					err = fmt.Errorf("%v", v)
				}
				err = fmt.Errorf("%w\n%s", err, debug.Stack())
				Problem(w, r, http.StatusInternalServerError, msgInternalError, err)
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// PrefersCBOR reports whether the Accept header ranks application/cbor above
// application/json. Wildcards and missing headers select JSON.
func PrefersCBOR(accept string) bool {
	if accept == "" {
		return false
	}
	cborQ, jsonQ := -1.0, -1.0
	for part := range strings.SplitSeq(accept, ",") {
		mediaType, q := parseAcceptPart(part)
		switch mediaType {
		case "application/cbor", "application/problem+cbor":
			cborQ = max(cborQ, q)
		case "application/json", "application/problem+json", "application/*", "*/*":
			jsonQ = max(jsonQ, q)
		}
	}
	return cborQ > 0 && cborQ > jsonQ
}

func parseAcceptPart(part string) (string, float64) {
	segments := strings.Split(part, ";")
	mediaType := strings.ToLower(strings.TrimSpace(segments[0]))
	q := 1.0
	for _, param := range segments[1:] {
		key, value, ok := strings.Cut(strings.TrimSpace(param), "=")
		if !ok || strings.TrimSpace(key) != "q" {
			continue
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil || parsed < 0 || parsed > 1 {
			continue
		}
		q = parsed
	}
	return mediaType, q
}

// allowedMethods inspects chi's routing context to discover allowed methods.
func allowedMethods(r *http.Request) []string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil || rctx.Routes == nil {
		return nil
	}

	routePath := rctx.RoutePath
	if routePath == "" {
		routePath = r.URL.Path
		if r.URL.RawPath != "" {
			routePath = r.URL.RawPath
		}
		if routePath == "" {
			routePath = "/"
		}
	}

	methods := []string{
		http.MethodGet,
		http.MethodHead,
		http.MethodPost,
		http.MethodPut,
		http.MethodPatch,
		http.MethodDelete,
		http.MethodOptions,
	}
	allowed := make([]string, 0, len(methods))
	for _, method := range methods {
		if rctx.Routes.Match(chi.NewRouteContext(), method, routePath) {
			allowed = append(allowed, method)
		}
	}
	return allowed
}

func logProblem(r *http.Request, status int, detail string, err error) {
	fields := []zap.Field{
		zap.Int("status", status),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	}
	ctx := r.Context()
	switch {
	case status >= 500:
		applog.LogError(ctx, detail, err, fields...)
	case err != nil:
		applog.LogWarn(ctx, detail, append(fields, zap.Error(err))...)
	default:
		applog.LogWarn(ctx, detail, fields...)
	}
}
