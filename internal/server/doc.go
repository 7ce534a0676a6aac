// Package server runs the refute transports.
//
// NewServer opens the HTTP and gRPC listeners named in the config, and
// RunServer serves them until a termination signal arrives.
package server
