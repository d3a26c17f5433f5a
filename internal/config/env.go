// This file contains environment variable utilities for configuration override.

package config

import (
	"flag"
	"os"

	"github.com/caarlos0/env/v11"

	apperrors "github.com/delatech/waveform/internal/errors"
)

// ─────────────────────────────────────────────────────────────────────────────
// Environment Variable Utilities
// ─────────────────────────────────────────────────────────────────────────────

// compareEnv mirrors the WAVECMP_ environment variables.
type compareEnv struct {
	Reference    string  `env:"REFERENCE"`
	Candidate    string  `env:"CANDIDATE"`
	Field        string  `env:"FIELD"`
	Threshold    float64 `env:"THRESHOLD"`
	StrictLength bool    `env:"STRICT_LENGTH"`
	Format       string  `env:"FORMAT"`
	MetricsFile  string  `env:"METRICS_FILE"`
	Verbose      bool    `env:"VERBOSE"`
	NoColor      bool    `env:"NO_COLOR"`
	Theme        string  `env:"THEME"`
}

// parseEnv decodes the prefixed environment into target.
func parseEnv(target any, prefix string) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: prefix}); err != nil {
		return apperrors.NewConfigError("parse env: %v", err)
	}
	return nil
}

// isEnvSet reports whether the prefixed variable holds a non-empty value.
func isEnvSet(prefix, key string) bool {
	val, ok := os.LookupEnv(prefix + key)
	return ok && val != ""
}

// isFlagSet checks if a flag was explicitly set on the command line.
// This is used to determine whether to apply environment variable overrides.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isFlagSetAny checks if any of the specified flags were explicitly set.
// This is useful for aliased flags where either the short or long form may be used.
func isFlagSetAny(fs *flag.FlagSet, names ...string) bool {
	for _, name := range names {
		if isFlagSet(fs, name) {
			return true
		}
	}
	return false
}

// envOverride declares a single environment variable override.
// Each entry maps an env key (without the WAVECMP_ prefix) to the CLI flag
// name(s) it corresponds to and a function that copies the decoded value.
type envOverride struct {
	envKey string
	flags  []string
	apply  func(*AppConfig, compareEnv)
}

// envOverrides is the declarative table of all wavecmp environment overrides.
var envOverrides = []envOverride{
	{"REFERENCE", []string{"reference", "r"}, func(c *AppConfig, e compareEnv) { c.ReferencePath = e.Reference }},
	{"CANDIDATE", []string{"candidate", "c"}, func(c *AppConfig, e compareEnv) { c.CandidatePath = e.Candidate }},
	{"FIELD", []string{"field"}, func(c *AppConfig, e compareEnv) { c.Field = e.Field }},
	{"THRESHOLD", []string{"threshold", "t"}, func(c *AppConfig, e compareEnv) { c.Threshold = e.Threshold }},
	{"STRICT_LENGTH", []string{"strict-length"}, func(c *AppConfig, e compareEnv) { c.StrictLength = e.StrictLength }},
	{"FORMAT", []string{"format"}, func(c *AppConfig, e compareEnv) { c.Format = e.Format }},
	{"METRICS_FILE", []string{"metrics-file"}, func(c *AppConfig, e compareEnv) { c.MetricsFile = e.MetricsFile }},
	{"VERBOSE", []string{"verbose", "v"}, func(c *AppConfig, e compareEnv) { c.Verbose = e.Verbose }},
	{"NO_COLOR", []string{"no-color"}, func(c *AppConfig, e compareEnv) { c.NoColor = e.NoColor }},
	{"THEME", []string{"theme"}, func(c *AppConfig, e compareEnv) { c.Theme = e.Theme }},
}

// applyEnvOverrides applies environment variable values to the configuration
// for any flags that were not explicitly set on the command line.
// This implements the priority: CLI flags > Environment variables > Defaults.
//
// Supported environment variables (all prefixed with WAVECMP_):
//   - REFERENCE, CANDIDATE, FIELD, THRESHOLD, STRICT_LENGTH, FORMAT,
//     METRICS_FILE, VERBOSE, NO_COLOR, THEME
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) error {
	var e compareEnv
	if err := parseEnv(&e, EnvPrefix); err != nil {
		return err
	}
	for _, o := range envOverrides {
		if isFlagSetAny(fs, o.flags...) || !isEnvSet(EnvPrefix, o.envKey) {
			continue
		}
		o.apply(config, e)
	}
	return nil
}
