// Package compare pairs a reference sequence with a candidate sequence by
// index and flags the positions whose absolute difference strictly exceeds a
// fixed threshold.
package compare

import (
	"math"

	apperrors "github.com/delatech/waveform/internal/errors"
)

// DefaultThreshold is the maximum accepted absolute deviation between a
// reference value and its candidate value.
const DefaultThreshold = 0.1

// Mismatch is a flagged pair. It is produced only to be presented.
type Mismatch struct {
	Index     int
	Reference float64
	Candidate float64
}

// Diff returns Reference - Candidate.
func (m Mismatch) Diff() float64 { return m.Reference - m.Candidate }

// Summary holds the counts of a completed pass.
type Summary struct {
	// Total is the length of the reference sequence.
	Total int
	// Wrong is the number of flagged mismatches.
	Wrong int
	// MaxAbsDiff is the largest absolute difference seen over compared pairs.
	MaxAbsDiff float64
}

// Visitor receives each mismatch as soon as it is found, in ascending index
// order. Returning an error aborts the pass.
type Visitor func(Mismatch) error

// Option configures a Comparator.
type Option func(*Comparator)

// WithThreshold overrides DefaultThreshold.
func WithThreshold(threshold float64) Option {
	return func(c *Comparator) { c.threshold = threshold }
}

// WithStrictLength makes Compare reject sequences of different lengths
// before any mismatch is emitted.
func WithStrictLength(strict bool) Option {
	return func(c *Comparator) { c.strictLength = strict }
}

// Comparator compares sequences against an immutable threshold.
type Comparator struct {
	threshold    float64
	strictLength bool
}

// New creates a Comparator. The threshold must be a non-negative number.
func New(opts ...Option) (*Comparator, error) {
	c := &Comparator{threshold: DefaultThreshold}
	for _, opt := range opts {
		opt(c)
	}
	if math.IsNaN(c.threshold) || c.threshold < 0 {
		return nil, apperrors.NewConfigError("threshold must be a non-negative number, got %v", c.threshold)
	}
	return c, nil
}

// Threshold returns the configured threshold.
func (c *Comparator) Threshold() float64 { return c.threshold }

// Exceeds reports whether the pair deviates by strictly more than the
// threshold. No rounding is applied.
func (c *Comparator) Exceeds(reference, candidate float64) bool {
	return math.Abs(reference-candidate) > c.threshold
}

// Compare walks reference in order and calls visit for every mismatch.
//
// A candidate longer than reference is accepted; its extra values are never
// read. A shorter candidate fails with an apperrors.IndexError when the pass
// reaches the first missing index: mismatches before that index have already
// been visited. On any error the returned Summary counts only the pairs
// compared so far.
func (c *Comparator) Compare(reference, candidate []float64, visit Visitor) (Summary, error) {
	if c.strictLength && len(reference) != len(candidate) {
		return Summary{}, apperrors.LengthError{Reference: len(reference), Candidate: len(candidate)}
	}

	var s Summary
	for i, ref := range reference {
		if i >= len(candidate) {
			s.Total = i
			return s, apperrors.IndexError{Index: i, Length: len(candidate)}
		}
		cand := candidate[i]

		if d := math.Abs(ref - cand); d > s.MaxAbsDiff {
			s.MaxAbsDiff = d
		}
		if !c.Exceeds(ref, cand) {
			continue
		}
		s.Wrong++
		if visit != nil {
			if err := visit(Mismatch{Index: i, Reference: ref, Candidate: cand}); err != nil {
				s.Total = i + 1
				return s, err
			}
		}
	}
	s.Total = len(reference)
	return s, nil
}
