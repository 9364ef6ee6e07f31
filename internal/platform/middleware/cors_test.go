package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func containsHeader(headerValue, target string) bool {
	for part := range strings.SplitSeq(headerValue, ",") {
		if strings.EqualFold(strings.TrimSpace(part), target) {
			return true
		}
	}
	return false
}

func TestCORSAllowsOrigin(t *testing.T) {
	called := false
	h := CORS()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "http://localhost/v1/hello", nil)
	req.Header.Set("Origin", "http://example.com")
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, req)

	if !called {
		t.Fatalf("expected downstream handler to be called")
	}
	if got := resp.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected Access-Control-Allow-Origin '*', got %q", got)
	}
	exposed := resp.Header().Get("Access-Control-Expose-Headers")
	for _, h := range []string{"X-Request-Id", "Lambda-Runtime-Function-Error-Type"} {
		if !containsHeader(exposed, h) {
			t.Fatalf("expected Access-Control-Expose-Headers to contain %q, got %q", h, exposed)
		}
	}
}

func TestCORSPreflightForInvocation(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"content type", "Content-Type"},
		{"request id", "X-Request-ID"},
		{"xray", "X-Amzn-Trace-Id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			h := CORS()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
			}))

			req := httptest.NewRequest(http.MethodOptions, "http://localhost/2015-03-31/functions/function/invocations", nil)
			req.Header.Set("Origin", "http://example.com")
			req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			req.Header.Set("Access-Control-Request-Headers", tt.header)
			resp := httptest.NewRecorder()
			h.ServeHTTP(resp, req)

			if called {
				t.Fatalf("expected preflight to be answered by the CORS middleware")
			}
			if resp.Code != http.StatusOK {
				t.Fatalf("expected status 200 for preflight, got %d", resp.Code)
			}
			if got := resp.Header().Get("Access-Control-Allow-Methods"); !containsHeader(got, http.MethodPost) {
				t.Fatalf("expected POST to be allowed, got %q", got)
			}
			if got := resp.Header().Get("Access-Control-Allow-Headers"); !containsHeader(got, tt.header) {
				t.Fatalf("expected %s to be allowed, got %q", tt.header, got)
			}
		})
	}
}
