package greeting

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	applog "github.com/janisto/greeting-lambda/internal/platform/logging"
)

func unsetLookup(string) (string, bool) { return "", false }

func fixedLookup(value string) LookupFunc {
	return func(key string) (string, bool) {
		if key != EnvKey {
			return "", false
		}
		return value, true
	}
}

func TestHandleDefaultGreeting(t *testing.T) {
	h := New(WithLookup(unsetLookup))

	resp, err := h.Handle(context.Background(), json.RawMessage(`{}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}
	if len(resp.Headers) != 1 || resp.Headers["Content-Type"] != ContentType {
		t.Fatalf("unexpected headers: %v", resp.Headers)
	}
	if resp.Body != `{"message": "Hi from Lambda!"}` {
		t.Fatalf("unexpected body: %s", resp.Body)
	}
}

func TestHandleSerializedResponse(t *testing.T) {
	h := New(WithLookup(unsetLookup))

	resp, err := h.Handle(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	expected := `{"statusCode":200,"headers":{"Content-Type":"application/json; charset=utf-8"},"body":"{\"message\": \"Hi from Lambda!\"}"}`
	if string(data) != expected {
		t.Fatalf("expected %s, got %s", expected, string(data))
	}
}

func TestHandleConfiguredGreeting(t *testing.T) {
	tests := []struct {
		name     string
		greeting string
		body     string
	}{
		{"hello", "Hello", `{"message": "Hello from Lambda!"}`},
		{"empty string is a value", "", `{"message": " from Lambda!"}`},
		{"quotes", `Say "hey"`, `{"message": "Say \"hey\" from Lambda!"}`},
		{"backslash", `C:\`, `{"message": "C:\\ from Lambda!"}`},
		{"newline", "Hi\nthere", `{"message": "Hi\nthere from Lambda!"}`},
		{"html is not escaped", "<b>&</b>", `{"message": "<b>&</b> from Lambda!"}`},
		{"latin1", "Hallå", `{"message": "Hall\u00e5 from Lambda!"}`},
		{"cjk", "你好", `{"message": "\u4f60\u597d from Lambda!"}`},
		{"astral plane", "😀", `{"message": "\ud83d\ude00 from Lambda!"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New(WithLookup(fixedLookup(tt.greeting)))
			resp, err := h.Handle(context.Background(), json.RawMessage(`null`))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("expected status 200, got %d", resp.StatusCode)
			}
			if resp.Body != tt.body {
				t.Fatalf("expected body %s, got %s", tt.body, resp.Body)
			}

			var decoded Body
			if err := json.Unmarshal([]byte(resp.Body), &decoded); err != nil {
				t.Fatalf("body is not valid JSON: %v", err)
			}
			if decoded.Message != Message(tt.greeting) {
				t.Fatalf("expected decoded message %q, got %q", Message(tt.greeting), decoded.Message)
			}
		})
	}
}

func TestHandleReadsProcessEnvironment(t *testing.T) {
	t.Setenv(EnvKey, "Hello")

	resp, err := New().Handle(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Body != `{"message": "Hello from Lambda!"}` {
		t.Fatalf("unexpected body: %s", resp.Body)
	}
}

func TestHandleReadsEnvironmentPerInvocation(t *testing.T) {
	value := "Hello"
	h := New(WithLookup(func(string) (string, bool) { return value, true }))

	first, _ := h.Handle(context.Background(), nil)
	value = "Howdy"
	second, _ := h.Handle(context.Background(), nil)

	if first.Body != `{"message": "Hello from Lambda!"}` {
		t.Fatalf("unexpected first body: %s", first.Body)
	}
	if second.Body != `{"message": "Howdy from Lambda!"}` {
		t.Fatalf("unexpected second body: %s", second.Body)
	}
}

func TestHandleIgnoresEvent(t *testing.T) {
	h := New(WithLookup(fixedLookup("Hello")))
	events := []json.RawMessage{
		nil,
		json.RawMessage(`null`),
		json.RawMessage(`{"body":"ignored","httpMethod":"POST"}`),
		json.RawMessage(`[1,2,3]`),
		json.RawMessage(`"text"`),
	}

	var nilCtx context.Context
	for i, event := range events {
		resp, err := h.Handle(nilCtx, event)
		if err != nil {
			t.Fatalf("event %d: unexpected error: %v", i, err)
		}
		if resp.Body != `{"message": "Hello from Lambda!"}` {
			t.Fatalf("event %d: unexpected body: %s", i, resp.Body)
		}
	}
}

func TestHandleIsIdempotent(t *testing.T) {
	h := New(WithLookup(fixedLookup("Hello")))

	first, err := h.Handle(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	firstJSON, _ := json.Marshal(first)

	for range 5 {
		next, err := h.Handle(context.Background(), nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		nextJSON, _ := json.Marshal(next)
		if string(nextJSON) != string(firstJSON) {
			t.Fatalf("expected identical output, got %s and %s", firstJSON, nextJSON)
		}
	}
}

func TestHandleReturnsFreshHeaders(t *testing.T) {
	h := New(WithLookup(unsetLookup))

	first, _ := h.Handle(context.Background(), nil)
	first.Headers["X-Mutated"] = "yes"
	second, _ := h.Handle(context.Background(), nil)

	if _, ok := second.Headers["X-Mutated"]; ok {
		t.Fatalf("headers map must not be shared between responses")
	}
}

func TestHandleLogsThroughContextLogger(t *testing.T) {
	core, recorded := observer.New(zapcore.DebugLevel)
	ctx := applog.ContextWithLogger(context.Background(), zap.New(core))

	if _, err := New(WithLookup(unsetLookup)).Handle(ctx, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries := recorded.FilterMessage("greeting rendered").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["message"]; got != "Hi from Lambda!" {
		t.Fatalf("expected logged message 'Hi from Lambda!', got %v", got)
	}
}

func TestGreeting(t *testing.T) {
	if got := New(WithLookup(unsetLookup)).Greeting(); got != DefaultGreeting {
		t.Fatalf("expected %q, got %q", DefaultGreeting, got)
	}
	if got := New(WithLookup(fixedLookup("Yo"))).Greeting(); got != "Yo" {
		t.Fatalf("expected Yo, got %q", got)
	}
}

func TestWithLookupIgnoresNil(t *testing.T) {
	h := New(WithLookup(nil))
	if h.lookup == nil {
		t.Fatal("expected default lookup to be kept")
	}
}
