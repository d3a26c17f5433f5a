package waveform

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"golang.org/x/sync/errgroup"
)

const (
	// DefaultSampleRate is the rate sox resamples the audio to.
	DefaultSampleRate = 8000
	// DefaultPixelsPerSecond is the horizontal resolution of the waveform.
	DefaultPixelsPerSecond float64 = (1000 / 30.0) * 6
	// ChunkSize is the number of segments read and scanned by one worker.
	ChunkSize = 300
	// WordSize is the byte width of one raw sample word.
	WordSize = 4

	initialMin int64 = 65536
	initialMax int64 = -65536
)

// Width returns the number of output points for an audio file of the given
// duration in seconds.
func Width(duration, pixelsPerSecond float64) int {
	if duration <= 0 || pixelsPerSecond <= 0 {
		return 0
	}
	return int(math.Ceil(duration * 1000 / pixelsPerSecond))
}

// SegmentByteSize returns the number of raw bytes that make up one output
// point, rounded down to whole words.
func SegmentByteSize(size int64, width int) int {
	if width <= 0 {
		return 0
	}
	return int(float64(size)/float64(width)+0.5) / WordSize * WordSize
}

// ExtractPeaks splits the raw stream r of length size into width segments
// and returns the minimum and maximum word of each one.
//
// Segments are read in chunks of ChunkSize, each chunk on its own
// goroutine. Segments lying past the end of the stream report 0 for both
// bounds.
func ExtractPeaks(ctx context.Context, r io.ReaderAt, size int64, width int) (mins, maxs []int64, err error) {
	if width <= 0 {
		return []int64{}, []int64{}, nil
	}
	segmentBytes := SegmentByteSize(size, width)
	mins = make([]int64, width)
	maxs = make([]int64, width)

	g, ctx := errgroup.WithContext(ctx)
	for start := 0; start < width; start += ChunkSize {
		start := start
		end := min(start+ChunkSize, width)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return scanChunk(r, start, end, segmentBytes, mins, maxs)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return mins, maxs, nil
}

// scanChunk fills mins[start:end] and maxs[start:end]. Each call writes a
// disjoint range of the slices.
func scanChunk(r io.ReaderAt, start, end, segmentBytes int, mins, maxs []int64) error {
	data := make([]byte, (end-start)*segmentBytes)
	n, err := r.ReadAt(data, int64(start)*int64(segmentBytes))
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("read segments %d-%d: %w", start, end-1, err)
	}
	data = data[:n]

	for i := start; i < end; i++ {
		lo := (i - start) * segmentBytes
		if lo >= len(data) {
			break
		}
		hi := min(lo+segmentBytes, len(data))
		mins[i], maxs[i] = MinMax(data[lo:hi])
	}
	return nil
}

// MinMax scans data as little-endian signed 32-bit words. Trailing bytes
// that do not form a whole word are ignored; data without any whole word
// yields (0, 0).
func MinMax(data []byte) (lo, hi int64) {
	if len(data) < WordSize {
		return 0, 0
	}
	lo, hi = initialMin, initialMax
	for off := 0; off+WordSize <= len(data); off += WordSize {
		v := int64(int32(binary.LittleEndian.Uint32(data[off:])))
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// Normalize converts per-segment bounds into heights in [0, 1].
//
// The first height is always reported as 0, although its span still takes
// part in choosing the tallest height. When every span is zero the result
// is all zeroes.
func Normalize(mins, maxs []int64) []float64 {
	width := min(len(mins), len(maxs))
	heights := make([]float64, width)
	if width == 0 {
		return heights
	}

	spans := make([]int64, width)
	highest := maxs[0] - mins[0]
	for i := 1; i < width; i++ {
		spans[i] = maxs[i] - mins[i]
		if spans[i] > highest {
			highest = spans[i]
		}
	}
	if highest <= 0 {
		return heights
	}
	for i := range spans {
		heights[i] = float64(spans[i]) / float64(highest)
	}
	return heights
}
