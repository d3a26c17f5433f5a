package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/delatech/waveform/internal/compare"
	apperrors "github.com/delatech/waveform/internal/errors"
	"github.com/delatech/waveform/internal/ui"
)

// renderText runs a full comparison through the text presenter.
func renderText(t *testing.T, reference, candidate []float64) []byte {
	t.Helper()
	c, err := compare.New()
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	p := TextPresenter{}
	summary, err := c.Compare(reference, candidate, func(m compare.Mismatch) error {
		return p.PresentMismatch(m, &buf)
	})
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}
	if err := p.PresentSummary(summary, &buf); err != nil {
		t.Fatalf("PresentSummary() error = %v", err)
	}
	return buf.Bytes()
}

func TestTextPresenter_Golden(t *testing.T) {
	tests := []struct {
		name      string
		reference []float64
		candidate []float64
	}{
		{
			name:      "concrete_scenario",
			reference: []float64{1.0, 2.0, 3.0},
			candidate: []float64{1.0, 2.5, 3.0},
		},
		{
			name:      "no_mismatches",
			reference: []float64{0.25, 0.5, 0.75, 1},
			candidate: []float64{0.25, 0.5, 0.75, 1},
		},
		{
			name:      "five_decimals",
			reference: []float64{0.123456789, 12, -3.5, 100},
			candidate: []float64{0.5, 12.2, -3.25, 100.1},
		},
	}

	g := goldie.New(t)
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			g.Assert(t, tt.name, renderText(t, tt.reference, tt.candidate))
		})
	}
}

func TestFormatMismatch(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		m    compare.Mismatch
		want string
	}{
		{"integers padded", compare.Mismatch{Index: 1, Reference: 2, Candidate: 2.5}, "[1] 2.00000 | 2.50000"},
		{"rounded to five decimals", compare.Mismatch{Index: 7, Reference: 0.123456, Candidate: 0.9999999}, "[7] 0.12346 | 1.00000"},
		{"negative values", compare.Mismatch{Index: 0, Reference: -1.5, Candidate: 0}, "[0] -1.50000 | 0.00000"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := FormatMismatch(tt.m); got != tt.want {
				t.Errorf("FormatMismatch() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatSummary(t *testing.T) {
	t.Parallel()
	got := FormatSummary(compare.Summary{Total: 3, Wrong: 1})
	want := "total values : 3\nwrong values : 1\n"
	if got != want {
		t.Errorf("FormatSummary() = %q, want %q", got, want)
	}
}

func TestDisplayMatchesFormatWithoutColor(t *testing.T) {
	t.Parallel()
	m := compare.Mismatch{Index: 4, Reference: 1.25, Candidate: 9}
	var buf bytes.Buffer
	if err := DisplayMismatch(&buf, m); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), FormatMismatch(m)+"\n"; got != want {
		t.Errorf("DisplayMismatch() = %q, want %q", got, want)
	}

	buf.Reset()
	s := compare.Summary{Total: 10, Wrong: 0}
	if err := DisplaySummary(&buf, s); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), FormatSummary(s); got != want {
		t.Errorf("DisplaySummary() = %q, want %q", got, want)
	}
}

func TestDisplayMismatch_ThemeColors(t *testing.T) {
	original := ui.GetCurrentTheme()
	t.Cleanup(func() { ui.SetCurrentTheme(original) })
	ui.SetCurrentTheme(ui.LightTheme)

	var buf bytes.Buffer
	if err := DisplayMismatch(&buf, compare.Mismatch{Index: 4, Reference: 1.25, Candidate: 9}); err != nil {
		t.Fatal(err)
	}
	th := ui.LightTheme
	want := "[" + th.Primary + "4" + th.Reset + "] " +
		th.Warning + "1.25000" + th.Reset + " " +
		th.Secondary + "|" + th.Reset + " " +
		th.Error + "9.00000" + th.Reset + "\n"
	if got := buf.String(); got != want {
		t.Errorf("DisplayMismatch() = %q, want %q", got, want)
	}
}

func TestJSONPresenter(t *testing.T) {
	t.Parallel()
	p := &JSONPresenter{Threshold: 0.1}
	var buf bytes.Buffer

	if err := p.PresentMismatch(compare.Mismatch{Index: 1, Reference: 2, Candidate: 2.5}, &buf); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Fatalf("mismatches should be buffered until the summary, got %q", buf.String())
	}
	if err := p.PresentSummary(compare.Summary{Total: 3, Wrong: 1, MaxAbsDiff: 0.5}, &buf); err != nil {
		t.Fatal(err)
	}

	var report jsonReport
	if err := json.Unmarshal(buf.Bytes(), &report); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if report.Total != 3 || report.Wrong != 1 || report.Threshold != 0.1 || report.MaxAbsDiff != 0.5 {
		t.Errorf("unexpected report header: %+v", report)
	}
	if len(report.Mismatches) != 1 || report.Mismatches[0] != (jsonMismatch{Index: 1, Reference: 2, Candidate: 2.5}) {
		t.Errorf("unexpected mismatches: %+v", report.Mismatches)
	}
}

func TestJSONPresenter_EmptyMismatchesIsArray(t *testing.T) {
	t.Parallel()
	p := &JSONPresenter{Threshold: 0.1}
	var buf bytes.Buffer
	if err := p.PresentSummary(compare.Summary{Total: 2}, &buf); err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(buf.Bytes(), []byte(`"mismatches": []`)) {
		t.Errorf("mismatches should encode as an empty array, got %s", buf.String())
	}
}

func TestNewPresenter(t *testing.T) {
	t.Parallel()
	tests := []struct {
		format  string
		want    string
		wantErr bool
	}{
		{format: "", want: "text"},
		{format: FormatText, want: "text"},
		{format: FormatJSON, want: "json"},
		{format: "yaml", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()
			p, err := NewPresenter(tt.format, 0.1)
			if tt.wantErr {
				var configErr apperrors.ConfigError
				if !errors.As(err, &configErr) {
					t.Fatalf("NewPresenter(%q) error = %v, want ConfigError", tt.format, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewPresenter(%q) error = %v", tt.format, err)
			}
			switch p.(type) {
			case TextPresenter:
				if tt.want != "text" {
					t.Errorf("NewPresenter(%q) = text presenter, want %s", tt.format, tt.want)
				}
			case *JSONPresenter:
				if tt.want != "json" {
					t.Errorf("NewPresenter(%q) = json presenter, want %s", tt.format, tt.want)
				}
			}
		})
	}
}
