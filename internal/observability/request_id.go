package observability

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const RequestIDKey contextKey = "request_id"

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

// NewRequestID returns a random UUID string.
func NewRequestID() string {
	return uuid.New().String()
}

// RequestIDFromHeader returns the incoming id when it is a well-formed UUID,
// otherwise a fresh one. Arbitrary client strings never reach the logs.
func RequestIDFromHeader(value string) string {
	if value == "" {
		return NewRequestID()
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return NewRequestID()
	}
	return id.String()
}

// ContextWithRequestID stores id on ctx.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// RequestIDFromContext returns the id stored on ctx, or "".
func RequestIDFromContext(ctx context.Context) string {
	id, ok := ctx.Value(RequestIDKey).(string)
	if !ok {
		return ""
	}
	return id
}
