// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging environment variables, command-line flags and an optional
// JSON or YAML file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds settings of the share core: candidates, trial workers,
	// log level and the application version.
	App App `envPrefix:"APP_"`

	// Server holds listen addresses and the request timeout of the HTTP
	// and gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the remote server the CLI talks to. Left empty, the
	// CLI runs the core in-process.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON or YAML configuration
	// file. Files ending in .yaml or .yml are read as YAML.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// Version is the version string reported by /api/version/.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// Candidates replaces the default candidate list tried when a decrypt
	// request names no candidate. Order matters: the first match wins.
	// Env: APP_CANDIDATES (comma separated)
	Candidates []string `env:"CANDIDATES" envSeparator:","`

	// TrialWorkers is the number of candidates tried concurrently.
	// 0 or 1 keeps trials sequential.
	// Env: APP_TRIAL_WORKERS
	TrialWorkers int `env:"TRIAL_WORKERS"`

	// LogLevel is a zerolog level name. Empty means debug.
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address of the HTTP server, "host:port".
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC server, "host:port".
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds a single inbound request (e.g. "30s").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the address of a remote refute server.
type Adapter struct {
	// HTTPAddress is the base URL of the remote HTTP API.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the remote gRPC endpoint. It takes precedence over
	// HTTPAddress when both are set.
	// Env: ADAPTER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads and merges the configuration from all sources
// in the following order (a later source overrides non-zero fields of an
// earlier one):
//  1. Environment variables
//  2. Command-line flags parsed from args
//  3. JSON/YAML file (path resolved from sources 1 and 2)
//
// The positional arguments left after flag parsing are returned as well;
// the CLI reads its subcommand from them.
func GetStructuredConfig(args []string) (*StructuredConfig, []string, error) {
	b := newConfigBuilder().
		withEnv().
		withFlags(args).
		withFile()

	cfg, err := b.build()
	return cfg, b.rest, err
}
