package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors [StructuredConfig] with the keys used in JSON and YAML
// config files.
type fileConfig struct {
	App struct {
		Version      string   `json:"version" yaml:"version"`
		Candidates   []string `json:"candidates" yaml:"candidates"`
		TrialWorkers int      `json:"trial_workers" yaml:"trial_workers"`
		LogLevel     string   `json:"log_level" yaml:"log_level"`
	} `json:"app" yaml:"app"`

	Server struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		GRPCAddress    string   `json:"grpc_address" yaml:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"server" yaml:"server"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		GRPCAddress    string   `json:"grpc_address" yaml:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"adapter" yaml:"adapter"`
}

// parseFile reads a config file. ".yaml" and ".yml" files are decoded as
// YAML, anything else as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err = json.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return &StructuredConfig{
		App: App{
			Version:      fc.App.Version,
			Candidates:   fc.App.Candidates,
			TrialWorkers: fc.App.TrialWorkers,
			LogLevel:     fc.App.LogLevel,
		},
		Server: Server{
			HTTPAddress:    fc.Server.HTTPAddress,
			GRPCAddress:    fc.Server.GRPCAddress,
			RequestTimeout: time.Duration(fc.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    fc.Adapter.HTTPAddress,
			GRPCAddress:    fc.Adapter.GRPCAddress,
			RequestTimeout: time.Duration(fc.Adapter.RequestTimeout),
		},
	}, nil
}

// Duration is a time.Duration read from strings like "1h" or "30s", or from
// a number of nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!int" {
		var n int64
		if err := node.Decode(&n); err != nil {
			return err
		}
		*d = Duration(time.Duration(n))
		return nil
	}

	tmp, err := time.ParseDuration(node.Value)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}
