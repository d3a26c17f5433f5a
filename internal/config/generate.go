package config

import (
	"flag"
	"fmt"
	"io"
	"math"
	"slices"

	apperrors "github.com/delatech/waveform/internal/errors"
	"github.com/delatech/waveform/internal/waveform"
)

// GenerateEnvPrefix is the prefix for all waveform environment variables.
const GenerateEnvPrefix = "WAVEFORM_"

// GenerateConfig aggregates the configuration of a waveform run.
type GenerateConfig struct {
	// Source is the audio file to process (positional argument).
	Source string
	// OutputFile receives the encoded peaks; empty means stdout.
	OutputFile string
	// Format selects the encoding ("waves" or "ints").
	Format string
	// SampleRate is the rate the audio is resampled to before extraction.
	SampleRate int
	// PixelsPerSecond sets the horizontal resolution of the waveform.
	PixelsPerSecond float64
	// Quiet suppresses the spinner and informational logs.
	Quiet bool
	// Verbose enables debug logging.
	Verbose bool
	// Version prints version information and exits.
	Version bool
}

// Options converts the configuration into generator options.
func (c GenerateConfig) Options() waveform.Options {
	return waveform.Options{
		Format:          c.Format,
		SampleRate:      c.SampleRate,
		PixelsPerSecond: c.PixelsPerSecond,
	}
}

// Validate checks the configuration for semantic consistency.
func (c GenerateConfig) Validate() error {
	if c.Source == "" {
		return apperrors.NewConfigError("missing audio file argument")
	}
	if !slices.Contains(waveform.ValidFormats, c.Format) {
		return apperrors.NewConfigError("invalid format %q: must be one of %v", c.Format, waveform.ValidFormats)
	}
	if c.SampleRate <= 0 {
		return apperrors.NewConfigError("sample rate must be positive, got %d", c.SampleRate)
	}
	if math.IsNaN(c.PixelsPerSecond) || math.IsInf(c.PixelsPerSecond, 0) || c.PixelsPerSecond <= 0 {
		return apperrors.NewConfigError("pixels per second must be a finite, positive number, got %v", c.PixelsPerSecond)
	}
	return nil
}

// generateEnv mirrors the WAVEFORM_ environment variables.
type generateEnv struct {
	Output          string  `env:"OUTPUT"`
	Format          string  `env:"FORMAT"`
	SampleRate      int     `env:"SAMPLE_RATE"`
	PixelsPerSecond float64 `env:"PIXELS_PER_SECOND"`
	Quiet           bool    `env:"QUIET"`
	Verbose         bool    `env:"VERBOSE"`
}

var generateEnvOverrides = []struct {
	envKey string
	flags  []string
	apply  func(*GenerateConfig, generateEnv)
}{
	{"OUTPUT", []string{"output", "o"}, func(c *GenerateConfig, e generateEnv) { c.OutputFile = e.Output }},
	{"FORMAT", []string{"format"}, func(c *GenerateConfig, e generateEnv) { c.Format = e.Format }},
	{"SAMPLE_RATE", []string{"sample-rate"}, func(c *GenerateConfig, e generateEnv) { c.SampleRate = e.SampleRate }},
	{"PIXELS_PER_SECOND", []string{"pixels-per-second"}, func(c *GenerateConfig, e generateEnv) { c.PixelsPerSecond = e.PixelsPerSecond }},
	{"QUIET", []string{"quiet", "q"}, func(c *GenerateConfig, e generateEnv) { c.Quiet = e.Quiet }},
	{"VERBOSE", []string{"verbose", "v"}, func(c *GenerateConfig, e generateEnv) { c.Verbose = e.Verbose }},
}

// ParseGenerateConfig parses the waveform command line. The audio file is
// the single positional argument.
func ParseGenerateConfig(programName string, args []string, errorOutput io.Writer) (GenerateConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorOutput)

	config := GenerateConfig{}
	fs.StringVar(&config.OutputFile, "output", "", "Write the waveform to this file instead of stdout.")
	fs.StringVar(&config.OutputFile, "o", "", "Output file (shorthand).")
	fs.StringVar(&config.Format, "format", waveform.FormatWaves, "Output encoding (waves, ints).")
	fs.IntVar(&config.SampleRate, "sample-rate", waveform.DefaultSampleRate, "Sample rate used when decoding the audio.")
	fs.Float64Var(&config.PixelsPerSecond, "pixels-per-second", waveform.DefaultPixelsPerSecond, "Horizontal resolution of the waveform.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Suppress progress output.")
	fs.BoolVar(&config.Quiet, "q", false, "Suppress progress output (shorthand).")
	fs.BoolVar(&config.Verbose, "verbose", false, "Enable debug logging.")
	fs.BoolVar(&config.Verbose, "v", false, "Enable debug logging (shorthand).")
	fs.BoolVar(&config.Version, "version", false, "Show version information.")
	fs.BoolVar(&config.Version, "V", false, "Show version information (shorthand).")

	fs.Usage = func() {
		fmt.Fprintf(errorOutput, "Usage: %s [flags] <audio-file>\n\n", programName)
		fmt.Fprintln(errorOutput, "Decodes an audio file with sox and writes its normalized peak sequence as JSON.")
		fmt.Fprintln(errorOutput)
		fmt.Fprintln(errorOutput, "Flags:")
		fs.PrintDefaults()
		fmt.Fprintf(errorOutput, "\nEnvironment variables (prefix %s) apply when the flag is not given.\n", GenerateEnvPrefix)
	}

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return GenerateConfig{}, err
		}
		return GenerateConfig{}, apperrors.NewConfigError("%v", err)
	}
	if fs.NArg() > 1 {
		return GenerateConfig{}, apperrors.NewConfigError("expected a single audio file, got %d arguments", fs.NArg())
	}
	config.Source = fs.Arg(0)

	var e generateEnv
	if err := parseEnv(&e, GenerateEnvPrefix); err != nil {
		return GenerateConfig{}, err
	}
	for _, o := range generateEnvOverrides {
		if isFlagSetAny(fs, o.flags...) || !isEnvSet(GenerateEnvPrefix, o.envKey) {
			continue
		}
		o.apply(&config, e)
	}

	if config.Version {
		return config, nil
	}
	if err := config.Validate(); err != nil {
		return GenerateConfig{}, err
	}
	return config, nil
}
