package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	idPrefixStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))

	// HeaderStyle is used for section headers.
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))

	// CriticalStyle marks tasks on the critical path.
	CriticalStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))

	// WarningStyle is used for warnings such as the cycle banner.
	WarningStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))

	// MutedStyle is used for secondary details.
	MutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// ANSIEnabled reports whether stdout should receive ANSI styling.
func ANSIEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Style renders text with style when ANSI output is enabled.
func Style(style lipgloss.Style, text string) string {
	if !ANSIEnabled() {
		return text
	}
	return style.Render(text)
}
