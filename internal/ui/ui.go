package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	styleErrorPrefix  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true) // red
	styleDetailPrefix = lipgloss.NewStyle().Faint(true)
)

// isTTY reports whether w is a terminal. Styling is only applied on terminals.
func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

func prefix(w io.Writer, style lipgloss.Style, p string) string {
	if isTTY(w) {
		return style.Render(p)
	}
	return p
}

// Errorf writes "Error: <msg>" to w.
func Errorf(w io.Writer, format string, a ...any) {
	_, _ = fmt.Fprintf(w, "%s %s\n", prefix(w, styleErrorPrefix, "Error:"), fmt.Sprintf(format, a...))
}

// Detailf writes "Detail: <msg>" to w, used for the full error chain in verbose mode.
func Detailf(w io.Writer, format string, a ...any) {
	_, _ = fmt.Fprintf(w, "%s %s\n", prefix(w, styleDetailPrefix, "Detail:"), fmt.Sprintf(format, a...))
}
