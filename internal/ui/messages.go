// Package ui renders user-facing messages and the overwrite confirmation
// prompt. Everything here writes to the error stream; stdout is reserved
// for the final destination path.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Nerd-font glyphs prefixing each message class.
const (
	glyphClone   = ""
	glyphCreate  = ""
	glyphWarn    = ""
	glyphSuccess = ""
	glyphError   = ""
)

var (
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("228"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
)

func Cloningf(w io.Writer, format string, a ...any) {
	fmt.Fprintln(w, infoStyle.Render(glyphClone+" "+fmt.Sprintf(format, a...)))
}

func Creatingf(w io.Writer, format string, a ...any) {
	fmt.Fprintln(w, infoStyle.Render(glyphCreate+" "+fmt.Sprintf(format, a...)))
}

func Warnf(w io.Writer, format string, a ...any) {
	fmt.Fprintln(w, warnStyle.Render(glyphWarn+" "+fmt.Sprintf(format, a...)))
}

func Successf(w io.Writer, format string, a ...any) {
	fmt.Fprintln(w, successStyle.Render(glyphSuccess+" "+fmt.Sprintf(format, a...)))
}

func Errorf(w io.Writer, format string, a ...any) {
	fmt.Fprintln(w, errorStyle.Render(glyphError+" "+fmt.Sprintf(format, a...)))
}
