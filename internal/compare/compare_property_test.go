package compare

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// candidateFrom derives a candidate of the same length as reference by adding
// the offsets cyclically.
func candidateFrom(reference, offsets []float64) []float64 {
	candidate := make([]float64, len(reference))
	for i, v := range reference {
		if len(offsets) > 0 {
			v += offsets[i%len(offsets)]
		}
		candidate[i] = v
	}
	return candidate
}

func sequenceGen() gopter.Gen { return gen.SliceOf(gen.Float64Range(-100, 100)) }

func offsetGen() gopter.Gen { return gen.SliceOf(gen.Float64Range(-0.3, 0.3)) }

// TestIdenticalSequences_PropertyBased verifies that a sequence compared with
// itself never yields a mismatch.
func TestIdenticalSequences_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	c, err := New()
	if err != nil {
		t.Fatal(err)
	}

	properties.Property("identical sequences have no mismatches", prop.ForAll(
		func(reference []float64) bool {
			got, summary, err := collect(c, reference, reference)
			return err == nil && len(got) == 0 && summary.Wrong == 0 && summary.Total == len(reference)
		},
		sequenceGen(),
	))

	properties.TestingRun(t)
}

// TestCountConsistency_PropertyBased verifies that the summary counts agree
// with the emitted mismatches.
func TestCountConsistency_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	c, err := New()
	if err != nil {
		t.Fatal(err)
	}

	properties.Property("Total is len(reference) and Wrong is the number of mismatches", prop.ForAll(
		func(reference, offsets []float64) bool {
			got, summary, err := collect(c, reference, candidateFrom(reference, offsets))
			return err == nil && summary.Total == len(reference) && summary.Wrong == len(got)
		},
		sequenceGen(), offsetGen(),
	))

	properties.TestingRun(t)
}

// TestAscendingOrder_PropertyBased verifies mismatches are emitted in strictly
// ascending index order.
func TestAscendingOrder_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	c, err := New()
	if err != nil {
		t.Fatal(err)
	}

	properties.Property("mismatch indices are strictly ascending", prop.ForAll(
		func(reference, offsets []float64) bool {
			got, _, err := collect(c, reference, candidateFrom(reference, offsets))
			if err != nil {
				return false
			}
			for i := 1; i < len(got); i++ {
				if got[i].Index <= got[i-1].Index {
					return false
				}
			}
			return true
		},
		sequenceGen(), offsetGen(),
	))

	properties.TestingRun(t)
}

// TestFlaggedExactlyWhenExceeding_PropertyBased verifies that an index is
// flagged if and only if its absolute difference strictly exceeds the
// threshold.
func TestFlaggedExactlyWhenExceeding_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	c, err := New()
	if err != nil {
		t.Fatal(err)
	}

	properties.Property("flagged iff |diff| > threshold", prop.ForAll(
		func(reference, offsets []float64) bool {
			candidate := candidateFrom(reference, offsets)
			got, _, err := collect(c, reference, candidate)
			if err != nil {
				return false
			}
			flagged := make(map[int]bool, len(got))
			for _, m := range got {
				flagged[m.Index] = true
			}
			for i := range reference {
				exceeds := math.Abs(reference[i]-candidate[i]) > DefaultThreshold
				if exceeds != flagged[i] {
					return false
				}
			}
			return true
		},
		sequenceGen(), offsetGen(),
	))

	properties.TestingRun(t)
}
