package utils

import (
	"context"

	"github.com/google/uuid"
)

// UUIDGenerator produces trace ids for outgoing requests.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a time-ordered UUIDv7, or a random v4 when the clock
// source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// ForContext returns the trace id stored in ctx under [TraceIDCtxKey] so one
// CLI invocation keeps a single id across calls. Without one it generates a
// fresh id.
func (g *UUIDGenerator) ForContext(ctx context.Context) string {
	if traceID, ok := GetTraceIDFromContext(ctx); ok {
		return traceID
	}
	return g.Generate()
}
