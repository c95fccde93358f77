package ui

import (
	"fmt"
	"io"

	"github.com/kernelops/taintinfo/internal/taint"
	"github.com/pterm/pterm"
)

var (
	labelStyle = pterm.NewStyle(pterm.Bold)
	infoStyle  = pterm.NewStyle(pterm.FgGreen)
	warnStyle  = pterm.NewStyle(pterm.FgYellow, pterm.Bold)
	alertStyle = pterm.NewStyle(pterm.FgRed, pterm.Bold)
)

func severityStyle(level taint.Severity) *pterm.Style {
	switch level {
	case taint.SeverityInfo:
		return infoStyle
	case taint.SeverityWarn:
		return warnStyle
	default:
		return alertStyle
	}
}

// Report renders the full taint report for status to w: the flag summary
// line, the numeric representation, and one detail line per relevant flag.
func Report(w io.Writer, status uint64) {
	fmt.Fprint(w, labelStyle.Sprint("Taint flags:            "))
	for _, def := range taint.Flags {
		switch {
		case status&def.Value() == def.Value():
			fmt.Fprint(w, severityStyle(def.Level).Sprintf("%c", def.SetChar))
		case def.HasUnsetChar():
			fmt.Fprint(w, severityStyle(def.Level).Sprintf("%c", def.UnsetChar))
		default:
			fmt.Fprintf(w, "%c", def.UnsetChar)
		}
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s%d / 0x%016X\n", labelStyle.Sprint("Numeric representation: "), status, status)
	fmt.Fprintln(w)

	for _, def := range taint.Flags {
		switch {
		case status&def.Value() == def.Value():
			fmt.Fprintf(w, "- %s %s (%d)\n",
				severityStyle(def.Level).Sprintf("%c", def.SetChar), def.SetDescription, def.Value())
		case def.HasUnsetChar() && def.UnsetDescription != "":
			fmt.Fprintf(w, "- %s %s (%d unset)\n",
				infoStyle.Sprintf("%c", def.UnsetChar), def.UnsetDescription, def.Value())
		}
	}
	if status == 0 {
		fmt.Fprintln(w, "(Kernel is not tainted)")
	}
	fmt.Fprintln(w)
}

// ListFlags renders the description of every known flag to w, with the
// unset description first where one exists.
func ListFlags(w io.Writer) {
	for _, def := range taint.Flags {
		if def.HasUnsetChar() && def.UnsetDescription != "" {
			fmt.Fprintf(w, "- %c: %s (%d unset)\n", def.UnsetChar, def.UnsetDescription, def.Value())
		}
		fmt.Fprintf(w, "- %c: %s (%d)\n", def.SetChar, def.SetDescription, def.Value())
	}
}
