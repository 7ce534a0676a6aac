package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-refute/internal/config"
	"github.com/MKhiriev/go-refute/internal/handler"
	"github.com/MKhiriev/go-refute/internal/logger"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger
}

// NewServer creates a server for every transport that has both an address in
// cfg and a handler. Listeners are opened here.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		httpSrv, err := newHTTPServer(handlers.HTTP.Init(), cfg, logger)
		if err != nil {
			return nil, err
		}
		servers.httpServer = httpSrv
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		grpcSrv, err := newGRPCServer(handlers.GRPC, cfg, logger)
		if err != nil {
			if servers.httpServer != nil {
				_ = servers.httpServer.listener.Close()
			}
			return nil, err
		}
		servers.gRPCServer = grpcSrv
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	// finish HTTP server
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}

	// finish gRPC server
	if s.gRPCServer != nil {
		s.gRPCServer.Shutdown()
	}
}

// run serves every created transport until ctx is done, then shuts them down
// and waits for the serve loops to return.
func (s *server) run(ctx context.Context) error {
	// check if any server was created
	if s.httpServer == nil && s.gRPCServer == nil {
		return errNoServersToRun
	}

	done := make(chan struct{}, 2)
	running := 0

	// launch all created servers
	if s.httpServer != nil {
		s.logger.Info().Msg("Launching HTTP server")
		running++
		go func() {
			s.httpServer.RunServer()
			done <- struct{}{}
		}()
	}
	if s.gRPCServer != nil {
		s.logger.Info().Msg("Launching gRPC server")
		running++
		go func() {
			s.gRPCServer.RunServer()
			done <- struct{}{}
		}()
	}

	<-ctx.Done()
	s.Shutdown()

	for range running {
		<-done
	}
	s.logger.Info().Msg("server Shutdown gracefully")

	return nil
}
