package logging

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"go.uber.org/zap"
)

// WithInvocation returns ctx carrying a logger annotated with the Lambda
// request ID, function ARN and X-Ray trace of the current invocation.
// The base logger is the one already scoped to ctx, so outside the Lambda
// runtime the logger is returned unchanged.
func WithInvocation(ctx context.Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	header := os.Getenv(xrayTraceEnv)
	fields := traceFields(header)
	traceID := traceRoot(header)

	if lc, ok := lambdacontext.FromContext(ctx); ok {
		if lc.AwsRequestID != "" {
			fields = append(fields, zap.String("awsRequestId", lc.AwsRequestID))
			if traceID == "" {
				traceID = lc.AwsRequestID
			}
		}
		if lc.InvokedFunctionArn != "" {
			fields = append(fields, zap.String("functionArn", lc.InvokedFunctionArn))
		}
	}

	logger := LoggerFromContext(ctx)
	if len(fields) > 0 {
		logger = logger.With(fields...)
	}
	ctx = contextWithTraceID(ctx, traceID)
	return ContextWithLogger(ctx, logger)
}
