// Package utils provides general-purpose helpers shared by the refute server
// and CLI: context keys, JSON response writing, the resty HTTP client and
// trace id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// TraceIDCtxKey is the key under which transports store the request trace
// id.
//
//	ctx := context.WithValue(ctx, utils.TraceIDCtxKey, "0b6f...")
var TraceIDCtxKey = contextKey("traceID")

// GetTraceIDFromContext returns the trace id stored in ctx. ok is false when
// the value is missing or not a non-empty string.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok && traceID != ""
}
