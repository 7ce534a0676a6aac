package grpc

import (
	"github.com/MKhiriev/go-refute/internal/logger"
	"github.com/MKhiriev/go-refute/internal/rpc"
	"github.com/MKhiriev/go-refute/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthgrpc "google.golang.org/grpc/health/grpc_health_v1"
)

// Handler is the root gRPC transport handler.
//
// It implements [rpc.ShareServer] on top of the service layer and owns the
// standard health service reported alongside it. A handler instance is
// created once at startup and shared by the gRPC server.
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	// health reports SERVING for the share service until Shutdown.
	health *health.Server

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger, and returns the initialized instance.
//
// Parameters:
//   - services: application service layer used by gRPC method handlers.
//   - logger: structured logger used for transport diagnostics.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
}

// ServerOptions returns the interceptor chain every request passes through:
// panic recovery, trace id, access log.
func (h *Handler) ServerOptions() []grpc.ServerOption {
	return []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(
			h.recoverer,
			h.withTraceID,
			h.withLogging,
		),
	}
}

// Register installs the share and health services on s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	rpc.RegisterShareServer(s, h)

	h.health.SetServingStatus("", healthgrpc.HealthCheckResponse_SERVING)
	h.health.SetServingStatus(rpc.ShareServiceName, healthgrpc.HealthCheckResponse_SERVING)
	healthgrpc.RegisterHealthServer(s, h.health)
}

// Shutdown flips every health status to NOT_SERVING.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
