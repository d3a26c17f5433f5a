// Command wavecmp compares a reference sequence against a candidate
// sequence and reports every value whose difference exceeds a threshold.
package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/delatech/waveform/internal/app"
	apperrors "github.com/delatech/waveform/internal/errors"
)

func main() {
	if app.HasVersionFlag(os.Args[1:]) {
		app.PrintVersion(os.Stdout, filepath.Base(os.Args[0]))
		return
	}

	application, err := app.New(os.Args, os.Stderr)
	if err != nil {
		if app.IsHelpError(err) {
			os.Exit(apperrors.ExitSuccess)
		}
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(apperrors.ExitCode(err))
	}

	exitCode := application.Run(context.Background(), os.Stdout)
	os.Exit(exitCode)
}
