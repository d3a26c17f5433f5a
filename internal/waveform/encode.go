package waveform

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/tidwall/sjson"

	apperrors "github.com/delatech/waveform/internal/errors"
)

// Output encodings.
const (
	// FormatWaves writes {"Waves":[heights...]}, the document wavecmp reads.
	FormatWaves = "waves"
	// FormatInts writes a bare array of heights scaled to 0..128.
	FormatInts = "ints"
)

// ValidFormats lists the accepted output encodings.
var ValidFormats = []string{FormatWaves, FormatInts}

// WavesField is the key of the heights array in the waves document.
const WavesField = "Waves"

// Quantize scales heights by 128 and truncates them toward zero.
func Quantize(heights []float64) []int64 {
	ints := make([]int64, len(heights))
	for i, h := range heights {
		ints[i] = int64(h * 128)
	}
	return ints
}

// Encode writes heights to w in the given format, followed by a newline.
func Encode(w io.Writer, heights []float64, format string) error {
	if heights == nil {
		heights = []float64{}
	}

	var (
		doc []byte
		err error
	)
	switch format {
	case FormatWaves:
		doc, err = sjson.SetBytes([]byte(`{}`), WavesField, heights)
	case FormatInts:
		doc, err = json.Marshal(Quantize(heights))
	default:
		return apperrors.NewConfigError("invalid format %q: must be one of %v", format, ValidFormats)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", format, err)
	}

	if _, err := w.Write(append(doc, '\n')); err != nil {
		return fmt.Errorf("write waveform: %w", err)
	}
	return nil
}
