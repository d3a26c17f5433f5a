package app

import (
	"context"
	"io"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/delatech/waveform/internal/cli"
	"github.com/delatech/waveform/internal/compare"
	"github.com/delatech/waveform/internal/logging"
	"github.com/delatech/waveform/internal/metrics"
	"github.com/delatech/waveform/internal/sequence"
	"github.com/delatech/waveform/internal/telemetry"
)

// runCompare loads both sequences, streams mismatches to out and writes the
// summary once the pass completed. On failure the mismatches already
// written stay in out and no summary follows.
func (a *Application) runCompare(ctx context.Context, out io.Writer) error {
	start := time.Now()
	cfg := a.Config

	comparator, err := compare.New(
		compare.WithThreshold(cfg.Threshold),
		compare.WithStrictLength(cfg.StrictLength),
	)
	if err != nil {
		return err
	}

	spinner := cli.NewSpinner(a.ErrWriter, " loading sequences")
	spinner.Start()
	reference, candidate, err := a.loadSequences(ctx)
	spinner.Stop()
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	_, span := telemetry.StartSpan(ctx, "compare",
		attribute.Int("compare.reference_length", len(reference)),
		attribute.Int("compare.candidate_length", len(candidate)),
		attribute.Float64("compare.threshold", comparator.Threshold()))
	summary, err := comparator.Compare(reference, candidate, func(m compare.Mismatch) error {
		return a.Presenter.PresentMismatch(m, out)
	})
	if err == nil {
		span.SetAttributes(
			attribute.Int("compare.total", summary.Total),
			attribute.Int("compare.wrong", summary.Wrong))
	}
	telemetry.EndSpan(span, err)
	if err != nil {
		return err
	}

	if err := a.Presenter.PresentSummary(summary, out); err != nil {
		return err
	}

	elapsed := time.Since(start)
	a.Logger.Debug("comparison finished",
		logging.Int("total", summary.Total),
		logging.Int("wrong", summary.Wrong),
		logging.Float64("max_abs_diff", summary.MaxAbsDiff),
		logging.Bool("strict_length", cfg.StrictLength),
		logging.Duration("elapsed", elapsed))

	if cfg.MetricsFile != "" {
		m := metrics.NewRunMetrics()
		m.Observe(summary, comparator.Threshold(), elapsed)
		if err := m.WriteTextfile(cfg.MetricsFile); err != nil {
			return err
		}
		a.Logger.Debug("metrics written", logging.String("path", cfg.MetricsFile))
	}
	return nil
}

// loadSequences reads the reference then the candidate, each under its own
// span.
func (a *Application) loadSequences(ctx context.Context) (reference, candidate []float64, err error) {
	cfg := a.Config

	_, span := telemetry.StartSpan(ctx, "load.reference", attribute.String("file.path", cfg.ReferencePath))
	reference, err = sequence.LoadReference(cfg.ReferencePath)
	telemetry.EndSpan(span, err)
	if err != nil {
		return nil, nil, err
	}
	a.Logger.Debug("reference loaded",
		logging.String("path", cfg.ReferencePath),
		logging.Int("values", len(reference)))

	_, span = telemetry.StartSpan(ctx, "load.candidate",
		attribute.String("file.path", cfg.CandidatePath),
		attribute.String("candidate.field", cfg.Field))
	candidate, err = sequence.LoadCandidate(cfg.CandidatePath, cfg.Field)
	telemetry.EndSpan(span, err)
	if err != nil {
		return nil, nil, err
	}
	a.Logger.Debug("candidate loaded",
		logging.String("path", cfg.CandidatePath),
		logging.Int("values", len(candidate)))

	return reference, candidate, nil
}
