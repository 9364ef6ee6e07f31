package logging

import (
	"strings"

	"go.uber.org/zap"
)

// XRayHeader carries the X-Ray trace context on HTTP requests.
const XRayHeader = "X-Amzn-Trace-Id"

// xrayTraceEnv is set by the Lambda runtime for the invocation in flight.
const xrayTraceEnv = "_X_AMZN_TRACE_ID"

// xrayTrace is the parsed form of "Root=1-...;Parent=...;Sampled=1".
type xrayTrace struct {
	Root    string
	Parent  string
	Sampled bool
}

// parseXRay extracts the trace fields. ok is false when no Root is present.
func parseXRay(header string) (xrayTrace, bool) {
	var tr xrayTrace
	for part := range strings.SplitSeq(header, ";") {
		key, value, found := strings.Cut(strings.TrimSpace(part), "=")
		if !found {
			continue
		}
		switch key {
		case "Root":
			tr.Root = value
		case "Parent":
			tr.Parent = value
		case "Sampled":
			tr.Sampled = value == "1"
		}
	}
	if !validRoot(tr.Root) {
		return xrayTrace{}, false
	}
	return tr, true
}

// validRoot checks the "1-<8 hex>-<24 hex>" trace ID layout.
func validRoot(root string) bool {
	parts := strings.Split(root, "-")
	if len(parts) != 3 || parts[0] != "1" || len(parts[1]) != 8 || len(parts[2]) != 24 {
		return false
	}
	return isHex(parts[1]) && isHex(parts[2])
}

func isHex(s string) bool {
	for i := range len(s) {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') && (c < 'A' || c > 'F') {
			return false
		}
	}
	return true
}

func traceFields(header string) []zap.Field {
	tr, ok := parseXRay(header)
	if !ok {
		return nil
	}
	fields := []zap.Field{zap.String("xray.traceId", tr.Root)}
	if tr.Parent != "" {
		fields = append(fields, zap.String("xray.parentId", tr.Parent))
	}
	return append(fields, zap.Bool("xray.sampled", tr.Sampled))
}

func traceRoot(header string) string {
	tr, ok := parseXRay(header)
	if !ok {
		return ""
	}
	return tr.Root
}

func loggerWithTrace(base *zap.Logger, header, requestID string) *zap.Logger {
	if base == nil {
		base = zap.NewNop()
	}
	fields := traceFields(header)
	if requestID != "" {
		fields = append(fields, zap.String("requestId", requestID))
	}
	if len(fields) == 0 {
		return base
	}
	return base.With(fields...)
}
