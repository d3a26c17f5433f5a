// Package logging provides a unified logging interface for the waveform tools.
// Diagnostics always go to stderr so that stdout carries only the report or
// the generated document.
package logging
