// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// validate checks the settings shared by both binaries.
func (cfg *StructuredConfig) validate() error {
	return validateApp(cfg.App.Candidates, cfg.App.TrialWorkers, cfg.App.LogLevel)
}

// validateServer additionally requires at least one listen address.
func (cfg *StructuredConfig) validateServer() error {
	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return fmt.Errorf("%w: no HTTP or gRPC address", ErrInvalidServerConfigs)
	}
	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if err := validateApp(cfg.App.Candidates, cfg.App.TrialWorkers, cfg.App.LogLevel); err != nil {
		return err
	}

	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs)
	}

	return nil
}

func validateApp(candidates []string, workers int, logLevel string) error {
	if workers < 0 {
		return fmt.Errorf("%w: trial workers must not be negative", ErrInvalidAppConfigs)
	}

	for i, c := range candidates {
		if c == "" {
			return fmt.Errorf("%w: candidate %d is empty", ErrInvalidAppConfigs, i)
		}
	}

	if logLevel != "" {
		if _, err := zerolog.ParseLevel(strings.ToLower(logLevel)); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidAppConfigs, err)
		}
	}

	return nil
}
