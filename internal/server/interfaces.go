package server

// Server runs the refute HTTP API and gRPC service until the process is asked
// to stop.
type Server interface {
	// RunServer serves every configured transport and blocks until SIGTERM,
	// SIGINT or SIGQUIT, then shuts them down gracefully.
	RunServer()

	// Shutdown stops all transports. In-flight requests are allowed to
	// finish.
	Shutdown()
}
