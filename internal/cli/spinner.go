package cli

import (
	"io"
	"time"

	"github.com/briandowns/spinner"

	"github.com/delatech/waveform/internal/ui"
)

// SpinnerRefreshRate defines the animation frequency of the spinner.
const SpinnerRefreshRate = 200 * time.Millisecond

// Spinner abstracts a terminal spinner so that long-running steps can report
// activity without depending on a specific implementation.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts spinner.Spinner to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start()                     { rs.s.Start() }
func (rs *realSpinner) Stop()                      { rs.s.Stop() }
func (rs *realSpinner) UpdateSuffix(suffix string) { rs.s.Suffix = suffix }

// nullSpinner is used when the output is not a terminal.
type nullSpinner struct{}

func (nullSpinner) Start()              {}
func (nullSpinner) Stop()               {}
func (nullSpinner) UpdateSuffix(string) {}

var newSpinner = func(out io.Writer) Spinner {
	s := spinner.New(spinner.CharSets[11], SpinnerRefreshRate, spinner.WithWriter(out))
	return &realSpinner{s}
}

// NewSpinner returns an animated spinner writing to out when out is a
// terminal, and a silent one otherwise.
func NewSpinner(out io.Writer, suffix string) Spinner {
	if !ui.IsTerminal(out) {
		return nullSpinner{}
	}
	s := newSpinner(out)
	s.UpdateSuffix(suffix)
	return s
}
