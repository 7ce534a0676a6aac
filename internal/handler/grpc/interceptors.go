package grpc

import (
	"context"
	"runtime/debug"
	"time"

	"github.com/MKhiriev/go-refute/internal/app"
	"github.com/MKhiriev/go-refute/internal/logger"
	"github.com/MKhiriev/go-refute/internal/utils"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// traceIDKey is the incoming metadata key holding the caller's trace id.
const traceIDKey = "x-trace-id"

func (h *Handler) withTraceID(ctx context.Context, req any, _ *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	var traceID string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(traceIDKey); len(values) > 0 && values[0] != "" {
			traceID = values[0]
		}
	}
	if traceID == "" {
		traceID = uuid.NewString()
	}

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID)
	})

	_ = grpc.SetHeader(ctx, metadata.Pairs(traceIDKey, traceID))

	ctx = context.WithValue(ctx, utils.TraceIDCtxKey, traceID)
	return next(l.WithContext(ctx), req)
}

func (h *Handler) withLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	start := time.Now()

	resp, err := next(ctx, req)

	logger.FromContext(ctx).Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}

func (h *Handler) recoverer(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (resp any, err error) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error().
				Str("method", info.FullMethod).
				Interface("panic", r).
				Bytes("stack", debug.Stack()).
				Msg("recovered from panic")
			resp, err = nil, status.Error(codes.Internal, app.MsgInternalServerError)
		}
	}()

	return next(ctx, req)
}
