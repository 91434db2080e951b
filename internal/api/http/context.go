package http

import "context"

type contextKey string

const (
	contextKeyRequestID contextKey = "request-id"
	contextKeyOperator  contextKey = "operator"
)

const headerRequestID = "X-Request-ID"

// RequestIDFromContext returns the id assigned by the request id middleware.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(contextKeyRequestID).(string)
	return id
}

// OperatorFromContext returns the token subject of an authenticated operator.
func OperatorFromContext(ctx context.Context) (string, bool) {
	sub, ok := ctx.Value(contextKeyOperator).(string)
	return sub, ok
}
