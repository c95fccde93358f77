package ui

import (
	"fmt"
	"io"

	"github.com/kernelops/taintinfo/internal/taint"
)

// PrintWarnings renders query warnings to w in the WARN style.
func PrintWarnings(w io.Writer, warnings []taint.Warning) {
	for _, warning := range warnings {
		switch warning.Kind {
		case taint.WarningUnknownFlag:
			fmt.Fprintln(w, warnStyle.Sprintf("Warning: Unknown taint flag '%c' ignored.", warning.Char))
		case taint.WarningConflictingFlags:
			fmt.Fprintln(w, warnStyle.Sprintf("Warning: Conflicting taint flags '%c' and '%c'",
				warning.SetChar, warning.UnsetChar))
			fmt.Fprintln(w, warnStyle.Sprintf("         Using taint-enabling flag '%c'", warning.SetChar))
		}
	}
}

// Alertf prints a fatal error message to w in the ALERT style.
func Alertf(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, alertStyle.Sprintf(format, args...))
}

// PrintSyntax prints the command line syntax to w.
func PrintSyntax(w io.Writer, program string) {
	fmt.Fprintf(w, "Syntax: %s { current | list | taint=<flags> }\n", program)
	fmt.Fprintln(w, "        current      Display information about the current taint status of the running kernel")
	fmt.Fprintln(w, "        list         List all known taint flags and their descriptions")
	fmt.Fprintln(w, "        taint=flags  Display information about the specified taint flags")
	fmt.Fprintln(w)
}
