package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/delatech/waveform/internal/cli"
	"github.com/delatech/waveform/internal/config"
	apperrors "github.com/delatech/waveform/internal/errors"
	"github.com/delatech/waveform/internal/logging"
	"github.com/delatech/waveform/internal/telemetry"
	"github.com/delatech/waveform/internal/ui"
)

// ShutdownTimeout bounds the time spent flushing spans on exit.
const ShutdownTimeout = 5 * time.Second

// Application represents the wavecmp application instance.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
	Program   string
	Logger    logging.Logger
	Presenter cli.ReportPresenter
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithLogger sets the logger used for diagnostics.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// WithPresenter overrides the presenter selected by --format.
func WithPresenter(p cli.ReportPresenter) AppOption {
	return func(a *Application) { a.Presenter = p }
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	programName := "wavecmp"
	var cmdArgs []string
	if len(args) > 0 {
		programName = filepath.Base(args[0])
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	app := &Application{Config: cfg, ErrWriter: errWriter, Program: programName}
	for _, opt := range opts {
		opt(app)
	}
	if app.Logger == nil {
		noColor := cfg.NoColor || !ui.IsTerminal(errWriter)
		app.Logger = logging.NewConsoleLogger(errWriter, programName, cfg.Verbose, noColor)
	}
	if app.Presenter == nil {
		presenter, err := cli.NewPresenter(cfg.Format, cfg.Threshold)
		if err != nil {
			return nil, err
		}
		app.Presenter = presenter
	}
	return app, nil
}

// Run executes the application and returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}
	if a.Config.Version {
		PrintVersion(out, a.Program)
		return apperrors.ExitSuccess
	}

	ui.InitTheme(out, a.Config.Theme, a.Config.NoColor)

	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	shutdown, err := telemetry.Setup(ctx, config.EnvPrefix, a.Program, Version)
	if err != nil {
		a.Logger.Warn("tracing disabled", logging.Err(err))
	}
	defer a.shutdownTelemetry(shutdown)

	bw := bufio.NewWriter(out)
	err = a.runCompare(ctx, bw)
	if flushErr := bw.Flush(); err == nil && flushErr != nil {
		err = apperrors.WrapError(flushErr, "write report")
	}
	if err != nil {
		a.Logger.Error("comparison failed", err)
		return apperrors.ExitCode(err)
	}
	return apperrors.ExitSuccess
}

func (a *Application) shutdownTelemetry(shutdown func(context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := shutdown(ctx); err != nil {
		a.Logger.Warn("failed to flush traces", logging.Err(err))
	}
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion, a.Program); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
