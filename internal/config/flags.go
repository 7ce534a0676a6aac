package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// candidateList is a comma separated flag.Value.
type candidateList []string

func (c *candidateList) String() string {
	if c == nil {
		return ""
	}
	return strings.Join(*c, ",")
}

func (c *candidateList) Set(s string) error {
	*c = nil
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			*c = append(*c, part)
		}
	}
	return nil
}

// ParseFlags parses configuration flags from args (without the program
// name) and returns the positional arguments that follow them.
//
// Flags:
//
//	-a server HTTP address in format [host]:[port]
//	-grpc-address server gRPC address in format [host]:[port]
//	-request-timeout server request timeout (e.g., "30s", "1m")
//	-server remote HTTP API base URL used by the CLI
//	-server-grpc remote gRPC address used by the CLI
//	-adapter-timeout outbound request timeout
//	-candidates comma separated candidate list
//	-workers concurrent candidate trials
//	-log-level zerolog level name
//	-app-version application version
//	-c/-config JSON or YAML config file path
func ParseFlags(args []string) (*StructuredConfig, []string, error) {
	var serverAddress, grpcServerAddress NetAddress
	var requestTimeout, adapterTimeout time.Duration
	var adapterAddress, adapterGRPCAddress string
	var candidates candidateList
	var workers int
	var logLevel, appVersion string
	var configPath string

	fs := flag.NewFlagSet("refute", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&adapterAddress, "server", "", "Remote HTTP API base URL")
	fs.StringVar(&adapterGRPCAddress, "server-grpc", "", "Remote gRPC address host:port")
	fs.DurationVar(&adapterTimeout, "adapter-timeout", 0, "Outbound request timeout")
	fs.Var(&candidates, "candidates", "Comma separated candidate phrases")
	fs.IntVar(&workers, "workers", 0, "Concurrent candidate trials")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&appVersion, "app-version", "", "Application version")
	fs.StringVar(&configPath, "c", "", "JSON or YAML config file path")
	fs.StringVar(&configPath, "config", "", "JSON or YAML config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Version:      appVersion,
			Candidates:   candidates,
			TrialWorkers: workers,
			LogLevel:     logLevel,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			GRPCAddress:    adapterGRPCAddress,
			RequestTimeout: adapterTimeout,
		},
		JSONFilePath: configPath,
	}, fs.Args(), nil
}

// String returns a canonical host:port string for a NetAddress, or "" when
// neither part is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number is an integer in 1..65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
