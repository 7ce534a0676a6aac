package adapter

import (
	"github.com/MKhiriev/go-refute/internal/config"
	"github.com/MKhiriev/go-refute/internal/logger"
)

// NewServerAdapter picks the transport from cfg: gRPC when a gRPC address is
// set, HTTP otherwise.
func NewServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	if cfg.GRPCAddress != "" {
		logger.Debug().Str("address", cfg.GRPCAddress).Msg("using gRPC server adapter")
		return NewGRPCServerAdapter(cfg, logger)
	}

	logger.Debug().Str("address", cfg.HTTPAddress).Msg("using HTTP server adapter")
	return NewHTTPServerAdapter(cfg, logger)
}
