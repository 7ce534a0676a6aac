// Package handler builds the transport handlers of the refute server.
package handler

import (
	"github.com/MKhiriev/go-refute/internal/config"
	"github.com/MKhiriev/go-refute/internal/handler/grpc"
	"github.com/MKhiriev/go-refute/internal/handler/http"
	"github.com/MKhiriev/go-refute/internal/logger"
	"github.com/MKhiriev/go-refute/internal/service"
)

// Handlers holds one handler per enabled transport. A nil field means the
// transport is off.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers creates the HTTP handler when cfg has an HTTP address and the
// gRPC handler when it has a gRPC address. Both share services.
func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	logger.Info().
		Bool("http", handlers.HTTP != nil).
		Bool("grpc", handlers.GRPC != nil).
		Msg("handlers created")

	return handlers, nil
}
