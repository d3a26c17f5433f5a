//go:generate mockgen -source=decoder.go -destination=mocks/mock_decoder.go -package=mocks

package waveform

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	apperrors "github.com/delatech/waveform/internal/errors"
)

// Decoder converts audio files into the raw stream ExtractPeaks reads.
type Decoder interface {
	// Duration returns the length of the audio file in seconds.
	Duration(ctx context.Context, path string) (float64, error)
	// DecodeRaw writes the audio in as mono, signed little-endian raw
	// samples at sampleRate into the file out.
	DecodeRaw(ctx context.Context, in, out string, sampleRate int) error
}

// SoxDecoder implements Decoder with the sox and soxi command-line tools.
type SoxDecoder struct {
	// SoxPath and SoxiPath default to "sox" and "soxi" looked up in PATH.
	SoxPath  string
	SoxiPath string
}

var _ Decoder = SoxDecoder{}

func (d SoxDecoder) sox() string {
	if d.SoxPath != "" {
		return d.SoxPath
	}
	return "sox"
}

func (d SoxDecoder) soxi() string {
	if d.SoxiPath != "" {
		return d.SoxiPath
	}
	return "soxi"
}

// Duration runs "soxi -D" and parses the reported number of seconds.
func (d SoxDecoder) Duration(ctx context.Context, path string) (float64, error) {
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, d.soxi(), "-D", path)
	cmd.Stderr = &stderr
	output, err := cmd.Output()
	if err != nil {
		return 0, apperrors.DecodeError{Source: path, Cause: commandError(err, &stderr)}
	}
	seconds, err := strconv.ParseFloat(strings.TrimSpace(string(output)), 64)
	if err != nil {
		return 0, apperrors.DecodeError{Source: path, Cause: fmt.Errorf("unexpected soxi output %q", strings.TrimSpace(string(output)))}
	}
	return seconds, nil
}

// DecodeRaw runs sox to produce mono signed-integer little-endian raw data.
func (d SoxDecoder) DecodeRaw(ctx context.Context, in, out string, sampleRate int) error {
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, d.sox(), in,
		"-t", "raw", "-r", strconv.Itoa(sampleRate), "-c", "1", "-e", "signed-integer", "-L", out)
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return apperrors.DecodeError{Source: in, Cause: commandError(err, &stderr)}
	}
	return nil
}

// commandError attaches the first line of the tool's stderr to err.
func commandError(err error, stderr *bytes.Buffer) error {
	msg, _, _ := strings.Cut(strings.TrimSpace(stderr.String()), "\n")
	if msg == "" {
		return err
	}
	return fmt.Errorf("%w: %s", err, msg)
}
