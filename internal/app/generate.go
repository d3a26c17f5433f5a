package app

import (
	"bufio"
	"context"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/delatech/waveform/internal/cli"
	"github.com/delatech/waveform/internal/config"
	apperrors "github.com/delatech/waveform/internal/errors"
	"github.com/delatech/waveform/internal/logging"
	"github.com/delatech/waveform/internal/telemetry"
	"github.com/delatech/waveform/internal/ui"
	"github.com/delatech/waveform/internal/waveform"
)

// GenerateApplication represents the waveform generator instance.
type GenerateApplication struct {
	Config    config.GenerateConfig
	ErrWriter io.Writer
	Program   string
	Logger    logging.Logger
	Decoder   waveform.Decoder
}

// GenerateOption configures a GenerateApplication during construction.
type GenerateOption func(*GenerateApplication)

// WithDecoder replaces the sox decoder.
func WithDecoder(d waveform.Decoder) GenerateOption {
	return func(a *GenerateApplication) { a.Decoder = d }
}

// WithGenerateLogger sets the logger used for diagnostics.
func WithGenerateLogger(l logging.Logger) GenerateOption {
	return func(a *GenerateApplication) { a.Logger = l }
}

// NewGenerate creates a generator instance by parsing command-line arguments.
func NewGenerate(args []string, errWriter io.Writer, opts ...GenerateOption) (*GenerateApplication, error) {
	programName := "waveform"
	var cmdArgs []string
	if len(args) > 0 {
		programName = filepath.Base(args[0])
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseGenerateConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	app := &GenerateApplication{Config: cfg, ErrWriter: errWriter, Program: programName}
	for _, opt := range opts {
		opt(app)
	}
	if app.Logger == nil {
		app.Logger = logging.NewConsoleLogger(errWriter, programName, cfg.Verbose, !ui.IsTerminal(errWriter))
	}
	if app.Decoder == nil {
		app.Decoder = waveform.SoxDecoder{}
	}
	return app, nil
}

// Run generates the waveform and returns the process exit code.
func (a *GenerateApplication) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Version {
		PrintVersion(out, a.Program)
		return apperrors.ExitSuccess
	}

	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	shutdown, err := telemetry.Setup(ctx, config.GenerateEnvPrefix, a.Program, Version)
	if err != nil {
		a.Logger.Warn("tracing disabled", logging.Err(err))
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		if err := shutdown(sctx); err != nil {
			a.Logger.Warn("failed to flush traces", logging.Err(err))
		}
	}()

	if err := a.generate(ctx, out); err != nil {
		a.Logger.Error("waveform generation failed", err, logging.String("source", a.Config.Source))
		return apperrors.ExitCode(err)
	}
	return apperrors.ExitSuccess
}

func (a *GenerateApplication) generate(ctx context.Context, out io.Writer) (err error) {
	if a.Config.OutputFile != "" {
		f, createErr := os.Create(a.Config.OutputFile)
		if createErr != nil {
			return apperrors.InputError{Path: a.Config.OutputFile, Err: createErr}
		}
		defer func() {
			if cerr := f.Close(); err == nil && cerr != nil {
				err = apperrors.WrapError(cerr, "close %s", a.Config.OutputFile)
			}
			if err != nil {
				os.Remove(a.Config.OutputFile)
			}
		}()
		out = f
	}

	spinner := cli.NewSpinner(a.ErrWriter, " decoding "+filepath.Base(a.Config.Source))
	if a.Config.Quiet {
		spinner = cli.NewSpinner(io.Discard, "")
	}
	spinner.Start()
	defer spinner.Stop()

	opts := a.Config.Options()
	opts.Decoder = a.Decoder
	opts.Logger = a.Logger

	bw := bufio.NewWriter(out)
	if err := waveform.Generate(ctx, a.Config.Source, bw, opts); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return apperrors.WrapError(err, "write waveform")
	}
	if !a.Config.Quiet && a.Config.OutputFile != "" {
		a.Logger.Info("waveform written", logging.String("path", a.Config.OutputFile))
	}
	return nil
}
