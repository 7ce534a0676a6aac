package client

import "errors"

var (
	// ErrUnknownCommand is returned for a subcommand the CLI does not know.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrNoCommand is returned when no subcommand is given.
	ErrNoCommand = errors.New("no command given")
	// ErrMissingBlob is returned by "decrypt" without a blob argument.
	ErrMissingBlob = errors.New("missing blob argument")
)
