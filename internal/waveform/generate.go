package waveform

import (
	"context"
	"io"
	"os"
	"time"

	"go.opentelemetry.io/otel/attribute"

	apperrors "github.com/delatech/waveform/internal/errors"
	"github.com/delatech/waveform/internal/logging"
	"github.com/delatech/waveform/internal/telemetry"
)

// Options configures Generate. Zero values select the defaults.
type Options struct {
	// Format is the output encoding, FormatWaves by default.
	Format string
	// SampleRate is passed to the decoder, DefaultSampleRate by default.
	SampleRate int
	// PixelsPerSecond sets the resolution, DefaultPixelsPerSecond by default.
	PixelsPerSecond float64
	// Decoder produces the raw stream, SoxDecoder by default.
	Decoder Decoder
	// Logger receives progress logs. Nil discards them.
	Logger logging.Logger
	// TempDir holds the intermediate raw file, os.TempDir by default.
	TempDir string
}

func (o Options) withDefaults() Options {
	if o.Format == "" {
		o.Format = FormatWaves
	}
	if o.SampleRate <= 0 {
		o.SampleRate = DefaultSampleRate
	}
	if o.PixelsPerSecond <= 0 {
		o.PixelsPerSecond = DefaultPixelsPerSecond
	}
	if o.Decoder == nil {
		o.Decoder = SoxDecoder{}
	}
	if o.Logger == nil {
		o.Logger = logging.NewLogger(io.Discard, "waveform")
	}
	return o
}

// Generate decodes the audio file src and writes its normalized peaks to w.
//
// The raw stream is written to a temporary file that is removed before
// Generate returns.
func Generate(ctx context.Context, src string, w io.Writer, opts Options) (err error) {
	opts = opts.withDefaults()
	ctx, span := telemetry.StartSpan(ctx, "waveform.generate",
		attribute.String("waveform.source", src),
		attribute.String("waveform.format", opts.Format))
	defer func() { telemetry.EndSpan(span, err) }()

	if _, err := os.Stat(src); err != nil {
		return apperrors.InputError{Path: src, Err: err}
	}

	start := time.Now()
	duration, err := opts.Decoder.Duration(ctx, src)
	if err != nil {
		return err
	}
	width := Width(duration, opts.PixelsPerSecond)
	opts.Logger.Debug("audio inspected",
		logging.String("source", src),
		logging.Float64("duration_seconds", duration),
		logging.Int("width", width))

	raw, err := os.CreateTemp(opts.TempDir, "wv-*.raw")
	if err != nil {
		return apperrors.WrapError(err, "create raw file")
	}
	rawPath := raw.Name()
	defer os.Remove(rawPath)
	if err := raw.Close(); err != nil {
		return apperrors.WrapError(err, "close raw file")
	}

	if err := opts.Decoder.DecodeRaw(ctx, src, rawPath, opts.SampleRate); err != nil {
		return err
	}

	heights, err := peaksFromFile(ctx, rawPath, width, opts.Logger)
	if err != nil {
		return err
	}
	span.SetAttributes(attribute.Int("waveform.width", len(heights)))
	opts.Logger.Debug("peaks extracted",
		logging.Int("points", len(heights)),
		logging.Duration("elapsed", time.Since(start)))

	return Encode(w, heights, opts.Format)
}

// peaksFromFile runs ExtractPeaks and Normalize over a raw file.
func peaksFromFile(ctx context.Context, path string, width int, logger logging.Logger) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.InputError{Path: path, Err: err}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, apperrors.InputError{Path: path, Err: err}
	}
	logger.Debug("audio decoded", logging.Int64("raw_bytes", info.Size()))

	mins, maxs, err := ExtractPeaks(ctx, f, info.Size(), width)
	if err != nil {
		return nil, apperrors.DecodeError{Source: path, Cause: err}
	}
	return Normalize(mins, maxs), nil
}
