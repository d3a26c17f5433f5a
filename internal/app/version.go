package app

import (
	"fmt"
	"io"
	"runtime"
)

// Build information, set with -ldflags "-X".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// HasVersionFlag reports whether args request version information. Only
// the flags before a "--" terminator are considered.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "--":
			return false
		case "-V", "--V", "-version", "--version":
			return true
		}
	}
	return false
}

// FullVersion returns the version line printed by --version.
func FullVersion(program string) string {
	return fmt.Sprintf("%s %s (commit %s, built %s, %s/%s, %s)",
		program, Version, Commit, BuildDate, runtime.GOOS, runtime.GOARCH, runtime.Version())
}

// PrintVersion writes the version line for program to out.
func PrintVersion(out io.Writer, program string) {
	fmt.Fprintln(out, FullVersion(program))
}
