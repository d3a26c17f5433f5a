// Package config handles command-line and environment configuration for the
// wavecmp and waveform binaries.
package config

import (
	"flag"
	"fmt"
	"io"
	"math"
	"slices"

	"github.com/delatech/waveform/internal/cli"
	"github.com/delatech/waveform/internal/compare"
	apperrors "github.com/delatech/waveform/internal/errors"
	"github.com/delatech/waveform/internal/sequence"
	"github.com/delatech/waveform/internal/ui"
)

// EnvPrefix is the prefix for all wavecmp environment variables.
const EnvPrefix = "WAVECMP_"

// Default input paths, relative to the working directory.
const (
	DefaultReferencePath = "origin.json"
	DefaultCandidatePath = "test.json"
)

// AppConfig aggregates the configuration of a wavecmp run.
type AppConfig struct {
	// ReferencePath is the file holding the expected sequence (a JSON array).
	ReferencePath string
	// CandidatePath is the file holding the produced document (a JSON object).
	CandidatePath string
	// Field is the gjson path of the candidate sequence inside the document.
	Field string
	// Threshold is the largest accepted absolute difference.
	Threshold float64
	// StrictLength rejects sequences of different lengths before comparing.
	StrictLength bool
	// Format selects the report presenter ("text" or "json").
	Format string
	// MetricsFile, if set, receives a Prometheus textfile after a successful run.
	MetricsFile string
	// Verbose enables debug logging.
	Verbose bool
	// NoColor disables ANSI colors even on a terminal.
	NoColor bool
	// Theme names the color theme used on a terminal.
	Theme string
	// Completion, if set, prints a completion script for the given shell.
	Completion string
	// Version prints version information and exits.
	Version bool
}

// Validate checks the configuration for semantic consistency.
func (c AppConfig) Validate() error {
	if c.ReferencePath == "" {
		return apperrors.NewConfigError("reference path must not be empty")
	}
	if c.CandidatePath == "" {
		return apperrors.NewConfigError("candidate path must not be empty")
	}
	if c.Field == "" {
		return apperrors.NewConfigError("candidate field must not be empty")
	}
	if math.IsNaN(c.Threshold) || math.IsInf(c.Threshold, 0) || c.Threshold < 0 {
		return apperrors.NewConfigError("threshold must be a finite, non-negative number, got %v", c.Threshold)
	}
	if !slices.Contains(cli.ValidFormats, c.Format) {
		return apperrors.NewConfigError("invalid format %q: must be one of %v", c.Format, cli.ValidFormats)
	}
	if !slices.Contains(ui.ThemeNames, c.Theme) {
		return apperrors.NewConfigError("invalid theme %q: must be one of %v", c.Theme, ui.ThemeNames)
	}
	if c.Completion != "" && !slices.Contains(cli.Shells, c.Completion) {
		return apperrors.NewConfigError("unsupported shell %q: must be one of %v", c.Completion, cli.Shells)
	}
	return nil
}

// ParseConfig parses the command-line arguments and applies environment
// overrides.
//
// Parameters:
//   - programName: The name of the program, used in usage output.
//   - args: The command-line arguments, without the program name.
//   - errorOutput: The writer receiving usage and flag errors.
//
// Returns:
//   - AppConfig: The resolved configuration.
//   - error: flag.ErrHelp when help was requested, a ConfigError otherwise.
func ParseConfig(programName string, args []string, errorOutput io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorOutput)

	config := AppConfig{}
	fs.StringVar(&config.ReferencePath, "reference", DefaultReferencePath, "Reference sequence file (JSON array).")
	fs.StringVar(&config.ReferencePath, "r", DefaultReferencePath, "Reference sequence file (shorthand).")
	fs.StringVar(&config.CandidatePath, "candidate", DefaultCandidatePath, "Candidate document file (JSON object).")
	fs.StringVar(&config.CandidatePath, "c", DefaultCandidatePath, "Candidate document file (shorthand).")
	fs.StringVar(&config.Field, "field", sequence.DefaultField, "Field holding the candidate sequence.")
	fs.Float64Var(&config.Threshold, "threshold", compare.DefaultThreshold, "Maximum accepted absolute difference.")
	fs.Float64Var(&config.Threshold, "t", compare.DefaultThreshold, "Maximum accepted absolute difference (shorthand).")
	fs.BoolVar(&config.StrictLength, "strict-length", false, "Fail before comparing when the sequences differ in length.")
	fs.StringVar(&config.Format, "format", cli.FormatText, "Report format (text, json).")
	fs.StringVar(&config.MetricsFile, "metrics-file", "", "Write Prometheus metrics to this file after the run.")
	fs.BoolVar(&config.Verbose, "verbose", false, "Enable debug logging.")
	fs.BoolVar(&config.Verbose, "v", false, "Enable debug logging (shorthand).")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output.")
	fs.StringVar(&config.Theme, "theme", ui.DarkTheme.Name, "Color theme on a terminal (dark, light, none).")
	fs.StringVar(&config.Completion, "completion", "", "Generate a completion script (bash, zsh, fish).")
	fs.BoolVar(&config.Version, "version", false, "Show version information.")
	fs.BoolVar(&config.Version, "V", false, "Show version information (shorthand).")

	fs.Usage = func() {
		fmt.Fprintf(errorOutput, "Usage: %s [flags]\n\n", programName)
		fmt.Fprintln(errorOutput, "Compares a reference sequence against a candidate sequence and")
		fmt.Fprintln(errorOutput, "reports every value whose difference exceeds the threshold.")
		fmt.Fprintln(errorOutput)
		fmt.Fprintln(errorOutput, "Flags:")
		fs.PrintDefaults()
		fmt.Fprintf(errorOutput, "\nEnvironment variables (prefix %s) apply when the flag is not given.\n", EnvPrefix)
	}

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return AppConfig{}, err
		}
		return AppConfig{}, apperrors.NewConfigError("%v", err)
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected argument %q", fs.Arg(0))
	}

	if err := applyEnvOverrides(&config, fs); err != nil {
		return AppConfig{}, err
	}
	if err := config.Validate(); err != nil {
		return AppConfig{}, err
	}
	return config, nil
}
