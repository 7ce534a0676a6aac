package config

import (
	"fmt"
	"time"
)

// ClientApp holds the share settings the CLI uses in local mode.
type ClientApp struct {
	// Candidates overrides the default candidate list when non-empty.
	Candidates []string
	// TrialWorkers is the number of concurrent candidate trials.
	TrialWorkers int
	// LogLevel is the zerolog level name for the CLI log file.
	LogLevel string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the HTTP endpoint address used by the client.
	HTTPAddress string
	// GRPCAddress is the gRPC endpoint address used by the client.
	GRPCAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// Remote reports whether the CLI should talk to a server instead of running
// the core in-process.
func (a ClientAdapter) Remote() bool {
	return a.HTTPAddress != "" || a.GRPCAddress != ""
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains the share settings for local mode.
	App ClientApp
	// Adapter contains the remote server, if any.
	Adapter ClientAdapter
	// Args are the positional arguments left after the global flags: the
	// subcommand and its own arguments.
	Args []string
}

// GetClientConfig builds and validates the CLI view of the merged
// configuration. args are the process arguments without the program name.
//
// No adapter address is required: without one the CLI runs locally.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, rest, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Candidates:   cfg.App.Candidates,
			TrialWorkers: cfg.App.TrialWorkers,
			LogLevel:     cfg.App.LogLevel,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			GRPCAddress:    cfg.Adapter.GRPCAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Args: rest,
	}

	return clientCfg, clientCfg.validate()
}

// GetServerConfig loads the merged configuration for the server binary and
// checks that at least one listener is configured.
func GetServerConfig(args []string) (*StructuredConfig, error) {
	cfg, _, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return cfg, cfg.validateServer()
}
