package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFile_JSON(t *testing.T) {
	path := writeTempFile(t, "config.json", `{
		"app": {
			"version": "1.0.0",
			"candidates": ["he/him", "she/her"],
			"trial_workers": 2,
			"log_level": "info"
		},
		"server": {
			"http_address": "localhost:8080",
			"grpc_address": "localhost:9090",
			"request_timeout": "30s"
		},
		"adapter": {
			"http_address": "http://localhost:8080",
			"request_timeout": 1000000000
		}
	}`)

	cfg, err := parseFile(path)
	require.NoError(t, err)

	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, []string{"he/him", "she/her"}, cfg.App.Candidates)
	assert.Equal(t, 2, cfg.App.TrialWorkers)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "localhost:9090", cfg.Server.GRPCAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "http://localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, time.Second, cfg.Adapter.RequestTimeout)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseFile_YAML(t *testing.T) {
	path := writeTempFile(t, "config.yaml", `
app:
  version: 2.0.0
  candidates:
    - xe/xem
    - ze/zir
  trial_workers: 3
server:
  http_address: localhost:8081
  request_timeout: 1m
adapter:
  request_timeout: 2000000000
`)

	cfg, err := parseFile(path)
	require.NoError(t, err)

	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, []string{"xe/xem", "ze/zir"}, cfg.App.Candidates)
	assert.Equal(t, 3, cfg.App.TrialWorkers)
	assert.Equal(t, "localhost:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, time.Minute, cfg.Server.RequestTimeout)
	assert.Equal(t, 2*time.Second, cfg.Adapter.RequestTimeout)
}

func TestParseFile_Errors(t *testing.T) {
	tests := []struct {
		name string
		file string
		body string
	}{
		{name: "bad json", file: "c.json", body: "{"},
		{name: "bad json duration", file: "c.json", body: `{"server": {"request_timeout": "forever"}}`},
		{name: "json duration of wrong type", file: "c.json", body: `{"server": {"request_timeout": true}}`},
		{name: "bad yaml", file: "c.yml", body: "app: [unclosed"},
		{name: "bad yaml duration", file: "c.yml", body: "server:\n  request_timeout: forever\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseFile(writeTempFile(t, tt.file, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestParseFile_Missing(t *testing.T) {
	_, err := parseFile("/nonexistent/refute.json")
	assert.Error(t, err)
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
