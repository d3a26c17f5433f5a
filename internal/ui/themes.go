package ui

import (
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
)

// Theme defines a color scheme for UI output.
// Each field contains an ANSI escape code for the corresponding color category.
type Theme struct {
	// Name is the identifier of the theme.
	Name string
	// Primary is the main accent color, used for mismatch indices.
	Primary string
	// Secondary is used for less prominent elements such as separators.
	Secondary string
	// Success indicates a clean comparison.
	Success string
	// Warning is used for reference values.
	Warning string
	// Error indicates mismatching candidate values and failures.
	Error string
	// Bold is the escape code for bold text.
	Bold string
	// Reset clears all formatting.
	Reset string
}

var (
	// DarkTheme is optimized for dark terminal backgrounds.
	DarkTheme = Theme{
		Name:      "dark",
		Primary:   "\033[38;5;39m",  // Bright blue
		Secondary: "\033[38;5;245m", // Grey
		Success:   "\033[38;5;82m",  // Bright green
		Warning:   "\033[38;5;220m", // Yellow
		Error:     "\033[38;5;196m", // Red
		Bold:      "\033[1m",
		Reset:     "\033[0m",
	}

	// LightTheme is optimized for light terminal backgrounds.
	LightTheme = Theme{
		Name:      "light",
		Primary:   "\033[38;5;27m",  // Dark blue
		Secondary: "\033[38;5;240m", // Dark grey
		Success:   "\033[38;5;28m",  // Dark green
		Warning:   "\033[38;5;130m", // Orange
		Error:     "\033[38;5;124m", // Dark red
		Bold:      "\033[1m",
		Reset:     "\033[0m",
	}

	// NoColorTheme disables all color output.
	// Used when NO_COLOR is set, --no-color is given, or output is not a terminal.
	NoColorTheme = Theme{Name: "none"}

	currentTheme = NoColorTheme
	themeMutex   sync.RWMutex
)

// GetCurrentTheme returns the currently active theme in a thread-safe manner.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme sets the currently active theme in a thread-safe manner.
// This is primarily used for testing purposes to restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// ThemeNames lists the accepted theme names.
var ThemeNames = []string{DarkTheme.Name, LightTheme.Name, NoColorTheme.Name}

// themeByName returns the theme with the given name. Unknown names default
// to dark.
func themeByName(name string) Theme {
	switch name {
	case LightTheme.Name:
		return LightTheme
	case NoColorTheme.Name:
		return NoColorTheme
	default:
		return DarkTheme
	}
}

// InitTheme initializes the theme for output written to out. Colors are
// disabled when noColor is set, when the NO_COLOR environment variable exists
// (https://no-color.org/), or when out is not a terminal. Otherwise the named
// theme becomes active.
func InitTheme(out io.Writer, name string, noColor bool) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	if noColor || !IsTerminal(out) {
		currentTheme = NoColorTheme
		return
	}
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		currentTheme = NoColorTheme
		return
	}
	currentTheme = themeByName(name)
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ColorPrimary returns the primary accent escape code.
func ColorPrimary() string { return GetCurrentTheme().Primary }

// ColorSecondary returns the secondary escape code.
func ColorSecondary() string { return GetCurrentTheme().Secondary }

// ColorSuccess returns the success escape code.
func ColorSuccess() string { return GetCurrentTheme().Success }

// ColorWarning returns the warning escape code.
func ColorWarning() string { return GetCurrentTheme().Warning }

// ColorError returns the error escape code.
func ColorError() string { return GetCurrentTheme().Error }

// ColorBold returns the bold escape code.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorReset returns the reset escape code.
func ColorReset() string { return GetCurrentTheme().Reset }
