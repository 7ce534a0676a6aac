package client

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-refute/internal/app"
	"github.com/MKhiriev/go-refute/internal/logger"
	"github.com/MKhiriev/go-refute/internal/service"
	"github.com/MKhiriev/go-refute/internal/utils"
	"github.com/MKhiriev/go-refute/models"
	"github.com/atotto/clipboard"
	"github.com/rs/zerolog"
)

const usage = `usage: refute [global flags] <command> [flags] [args]

commands:
  encrypt    [-input PHRASE | PHRASE] [-copy]   encrypt the shared message under PHRASE
  decrypt    [-key PHRASE] BLOB                 try candidates (or PHRASE) against BLOB
  candidates                                    list the default candidates
  check                                         report key collisions among candidates
  version                                       print build information

global flags:
  -server URL, -server-grpc ADDR   use a remote refute server
  -candidates LIST                 comma separated candidate list
  -workers N                       concurrent candidate trials
`

// App is the CLI runtime.
type App struct {
	services  *service.Services
	buildInfo models.AppBuildInfo

	copyToClipboard func(string) error
	ids             *utils.UUIDGenerator
	out             io.Writer
	errOut          io.Writer

	logger *logger.Logger
}

// Option customises an [App].
type Option func(*App)

// WithOutput redirects normal and error output.
func WithOutput(out, errOut io.Writer) Option {
	return func(a *App) {
		a.out = out
		a.errOut = errOut
	}
}

// WithClipboard replaces the system clipboard writer used by "encrypt -copy".
func WithClipboard(copyFn func(string) error) Option {
	return func(a *App) {
		a.copyToClipboard = copyFn
	}
}

// NewApp creates the CLI runtime over services. Output goes to os.Stdout and
// os.Stderr unless overridden.
func NewApp(services *service.Services, buildInfo models.AppBuildInfo, logger *logger.Logger, opts ...Option) *App {
	a := &App{
		services:        services,
		buildInfo:       buildInfo,
		copyToClipboard: clipboard.WriteAll,
		ids:             utils.NewUUIDGenerator(),
		out:             os.Stdout,
		errOut:          os.Stderr,
		logger:          logger,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run executes args[0] with the remaining arguments. On failure the human
// message is already printed to the error output when Run returns.
//
// Every server request made by one Run carries the same trace id, which is
// also attached to the CLI log entries.
func (a *App) Run(ctx context.Context, args []string) error {
	traceID := a.ids.ForContext(ctx)
	ctx = context.WithValue(ctx, utils.TraceIDCtxKey, traceID)
	log := a.logger.GetChildLogger()
	log.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID)
	})
	ctx = log.WithContext(ctx)

	err := a.dispatch(ctx, args)
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return nil
	}

	log.Err(err).Strs("args", args).Msg("command failed")

	switch {
	case errors.Is(err, ErrNoCommand), errors.Is(err, ErrUnknownCommand):
		fmt.Fprintf(a.errOut, "%v\n\n%s", err, usage)
	default:
		fmt.Fprintln(a.errOut, humanMessage(err))
	}
	return err
}

func (a *App) dispatch(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return ErrNoCommand
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "encrypt":
		return a.encrypt(ctx, rest)
	case "decrypt":
		return a.decrypt(ctx, rest)
	case "candidates":
		return a.candidates(ctx)
	case "check":
		return a.check(ctx)
	case "version":
		return a.version(ctx)
	case "help", "-h", "-help", "--help":
		fmt.Fprint(a.out, usage)
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
	}
}

// humanMessage turns a service error into the line shown to the user.
func humanMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrEmptyInput):
		return app.MsgEmptyInput
	case errors.Is(err, service.ErrEmptyBlob), errors.Is(err, ErrMissingBlob):
		return app.MsgEmptyBlob
	case errors.Is(err, service.ErrDecryptionFailed):
		return app.MsgDecryptFailed
	case errors.Is(err, service.ErrMalformedBlob):
		return app.MsgMalformedBlob
	case errors.Is(err, service.ErrInputTooLong):
		return app.MsgInputTooLong
	case errors.Is(err, service.ErrBlobTooLong):
		return app.MsgBlobTooLong
	default:
		return err.Error()
	}
}
