package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/delatech/waveform/internal/ui"
)

// FlagCompletion describes a CLI flag for shell completion generation.
// All shell completion functions generate from flagRegistry, so adding a
// flag only requires appending to it.
type FlagCompletion struct {
	Long      string   // long flag name without "--"
	Short     string   // short flag without "-"
	Help      string   // description text
	Values    []string // suggested values (nil = boolean or free-form)
	ValueName string   // label for the value in zsh
	IsFile    bool     // true if the flag takes a file path
}

// flagRegistry is the list of wavecmp flags offered by completion scripts.
var flagRegistry = []FlagCompletion{
	{Long: "help", Short: "h", Help: "Show help message"},
	{Long: "version", Short: "V", Help: "Show version information"},
	{Long: "reference", Short: "r", Help: "Reference sequence file", IsFile: true, ValueName: "file"},
	{Long: "candidate", Short: "c", Help: "Candidate document file", IsFile: true, ValueName: "file"},
	{Long: "field", Help: "Field holding the candidate sequence", Values: []string{"Waves"}, ValueName: "path"},
	{Long: "threshold", Short: "t", Help: "Maximum accepted absolute difference", Values: []string{"0.01", "0.05", "0.1", "0.5"}, ValueName: "value"},
	{Long: "strict-length", Help: "Fail before comparing when lengths differ"},
	{Long: "format", Help: "Report format", Values: ValidFormats, ValueName: "format"},
	{Long: "metrics-file", Help: "Write Prometheus metrics to this file", IsFile: true, ValueName: "file"},
	{Long: "no-color", Help: "Disable colored output"},
	{Long: "theme", Help: "Color theme", Values: ui.ThemeNames, ValueName: "theme"},
	{Long: "verbose", Short: "v", Help: "Enable debug logging"},
	{Long: "completion", Help: "Generate completion script", Values: Shells, ValueName: "shell"},
}

// Shells lists the shells GenerateCompletion supports.
var Shells = []string{"bash", "zsh", "fish"}

// GenerateCompletion writes a completion script for program to out.
func GenerateCompletion(out io.Writer, shell, program string) error {
	var script string
	switch shell {
	case "bash":
		script = bashCompletion(program)
	case "zsh":
		script = zshCompletion(program)
	case "fish":
		script = fishCompletion(program)
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: %s)", shell, strings.Join(Shells, ", "))
	}
	if _, err := fmt.Fprint(out, script); err != nil {
		return fmt.Errorf("completion %s generation failed: %w", shell, err)
	}
	return nil
}

func bashCompletion(program string) string {
	var opts []string
	var cases strings.Builder
	var filePatterns []string
	for _, f := range flagRegistry {
		var patterns []string
		if f.Long != "" {
			patterns = append(patterns, "--"+f.Long)
		}
		if f.Short != "" {
			patterns = append(patterns, "-"+f.Short)
		}
		opts = append(opts, patterns...)

		switch {
		case f.IsFile:
			filePatterns = append(filePatterns, patterns...)
		case len(f.Values) > 0:
			fmt.Fprintf(&cases, "        %s)\n            COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") )\n            return 0\n            ;;\n",
				strings.Join(patterns, "|"), strings.Join(f.Values, " "))
		}
	}
	if len(filePatterns) > 0 {
		fmt.Fprintf(&cases, "        %s)\n            COMPREPLY=( $(compgen -f -- \"${cur}\") )\n            return 0\n            ;;\n",
			strings.Join(filePatterns, "|"))
	}

	fn := "_" + strings.ReplaceAll(program, "-", "_") + "_completions"
	return fmt.Sprintf(`# Bash completion script for %[1]s
# Add this to your ~/.bashrc or ~/.bash_completion

%[2]s() {
    local cur prev opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"
    opts="%[3]s"

    case "${prev}" in
%[4]s    esac

    if [[ "${cur}" == -* ]]; then
        COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
        return 0
    fi
}

complete -F %[2]s %[1]s
`, program, fn, strings.Join(opts, " "), cases.String())
}

func zshCompletion(program string) string {
	args := make([]string, 0, len(flagRegistry))
	for _, f := range flagRegistry {
		valueSuffix := ""
		switch {
		case f.IsFile:
			valueSuffix = fmt.Sprintf(":%s:_files", f.ValueName)
		case len(f.Values) > 0:
			valueSuffix = fmt.Sprintf(":%s:(%s)", f.ValueName, strings.Join(f.Values, " "))
		case f.ValueName != "":
			valueSuffix = fmt.Sprintf(":%s:", f.ValueName)
		}

		if f.Short != "" {
			args = append(args, fmt.Sprintf("        '(-%s --%s)'{-%s,--%s}'[%s]%s'",
				f.Short, f.Long, f.Short, f.Long, f.Help, valueSuffix))
		} else {
			args = append(args, fmt.Sprintf("        '--%s[%s]%s'", f.Long, f.Help, valueSuffix))
		}
	}

	return fmt.Sprintf(`#compdef %[1]s

# Zsh completion script for %[1]s
# Place this file in $fpath

_%[1]s() {
    _arguments -s \
%[2]s
}

_%[1]s "$@"
`, program, strings.Join(args, " \\\n"))
}

func fishCompletion(program string) string {
	lines := []string{
		"# Fish completion script for " + program,
		fmt.Sprintf("# Add this to ~/.config/fish/completions/%s.fish", program),
		"",
		"complete -c " + program + " -f",
	}
	for _, f := range flagRegistry {
		parts := []string{"complete -c " + program}
		if f.Short != "" {
			parts = append(parts, "-s "+f.Short)
		}
		parts = append(parts, "-l "+f.Long, fmt.Sprintf("-d '%s'", f.Help))
		switch {
		case f.IsFile:
			parts = append(parts, "-rF")
		case len(f.Values) > 0:
			parts = append(parts, fmt.Sprintf("-xa '%s'", strings.Join(f.Values, " ")))
		case f.ValueName != "":
			parts = append(parts, "-x")
		}
		lines = append(lines, strings.Join(parts, " "))
	}
	return strings.Join(lines, "\n") + "\n"
}
