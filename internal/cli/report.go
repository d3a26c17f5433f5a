//go:generate mockgen -source=report.go -destination=mocks/mock_report.go -package=mocks

// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayMismatch], [DisplaySummary].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatMismatch], [FormatSummary].

package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/delatech/waveform/internal/compare"
	apperrors "github.com/delatech/waveform/internal/errors"
	"github.com/delatech/waveform/internal/ui"
)

// Report formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ValidFormats lists the accepted values of --format.
var ValidFormats = []string{FormatText, FormatJSON}

// ReportPresenter renders a comparison as it runs. PresentMismatch is called
// once per flagged pair in index order; PresentSummary is called only when
// the pass completed.
type ReportPresenter interface {
	PresentMismatch(m compare.Mismatch, out io.Writer) error
	PresentSummary(s compare.Summary, out io.Writer) error
}

// NewPresenter returns the presenter for a report format.
func NewPresenter(format string, threshold float64) (ReportPresenter, error) {
	switch format {
	case "", FormatText:
		return TextPresenter{}, nil
	case FormatJSON:
		return &JSONPresenter{Threshold: threshold}, nil
	default:
		return nil, apperrors.NewConfigError("invalid format %q: must be one of %v", format, ValidFormats)
	}
}

// FormatMismatch renders a mismatch as "[index] reference | candidate" with
// five decimals.
func FormatMismatch(m compare.Mismatch) string {
	return fmt.Sprintf("[%d] %.5f | %.5f", m.Index, m.Reference, m.Candidate)
}

// FormatSummary renders the two summary lines, newline terminated.
func FormatSummary(s compare.Summary) string {
	return fmt.Sprintf("total values : %d\nwrong values : %d\n", s.Total, s.Wrong)
}

// DisplayMismatch writes one mismatch line, colorized by the active theme.
func DisplayMismatch(out io.Writer, m compare.Mismatch) error {
	_, err := fmt.Fprintf(out, "[%s%d%s] %s%.5f%s %s|%s %s%.5f%s\n",
		ui.ColorPrimary(), m.Index, ui.ColorReset(),
		ui.ColorWarning(), m.Reference, ui.ColorReset(),
		ui.ColorSecondary(), ui.ColorReset(),
		ui.ColorError(), m.Candidate, ui.ColorReset())
	return err
}

// DisplaySummary writes the summary lines. The wrong count is green when
// zero and red otherwise.
func DisplaySummary(out io.Writer, s compare.Summary) error {
	color := ui.ColorSuccess()
	if s.Wrong > 0 {
		color = ui.ColorError()
	}
	_, err := fmt.Fprintf(out, "total values : %s%d%s\nwrong values : %s%d%s\n",
		ui.ColorBold(), s.Total, ui.ColorReset(),
		color, s.Wrong, ui.ColorReset())
	return err
}

// TextPresenter streams the human-readable report.
type TextPresenter struct{}

var _ ReportPresenter = TextPresenter{}

// PresentMismatch writes the mismatch line immediately.
func (TextPresenter) PresentMismatch(m compare.Mismatch, out io.Writer) error {
	return DisplayMismatch(out, m)
}

// PresentSummary writes the summary lines.
func (TextPresenter) PresentSummary(s compare.Summary, out io.Writer) error {
	return DisplaySummary(out, s)
}

// JSONPresenter buffers mismatches and writes a single document once the
// pass completed. Nothing is written for a failed pass.
type JSONPresenter struct {
	Threshold  float64
	mismatches []jsonMismatch
}

var _ ReportPresenter = (*JSONPresenter)(nil)

type jsonMismatch struct {
	Index     int     `json:"index"`
	Reference float64 `json:"reference"`
	Candidate float64 `json:"candidate"`
}

type jsonReport struct {
	Total      int            `json:"total"`
	Wrong      int            `json:"wrong"`
	Threshold  float64        `json:"threshold"`
	MaxAbsDiff float64        `json:"max_abs_diff"`
	Mismatches []jsonMismatch `json:"mismatches"`
}

// PresentMismatch records the mismatch.
func (p *JSONPresenter) PresentMismatch(m compare.Mismatch, _ io.Writer) error {
	p.mismatches = append(p.mismatches, jsonMismatch{Index: m.Index, Reference: m.Reference, Candidate: m.Candidate})
	return nil
}

// PresentSummary writes the report document.
func (p *JSONPresenter) PresentSummary(s compare.Summary, out io.Writer) error {
	report := jsonReport{
		Total:      s.Total,
		Wrong:      s.Wrong,
		Threshold:  p.Threshold,
		MaxAbsDiff: s.MaxAbsDiff,
		Mismatches: p.mismatches,
	}
	if report.Mismatches == nil {
		report.Mismatches = []jsonMismatch{}
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}
