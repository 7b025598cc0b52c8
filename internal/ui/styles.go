// Package ui provides terminal styling for skillvet output.
package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

// IsTTY indicates whether stdout is an interactive terminal.
// When false, UI functions produce plain text without colors.
var IsTTY = term.IsTerminal(os.Stdout.Fd())

// ErrIsTTY is the same signal for stderr, where lint findings go.
var ErrIsTTY = term.IsTerminal(os.Stderr.Fd())

var (
	Green    = lipgloss.Color("#36B37E")
	Red      = lipgloss.Color("#E5484D")
	Yellow   = lipgloss.Color("#D9A514")
	Blue     = lipgloss.Color("#4C9AFF")
	Gray     = lipgloss.Color("#8993A4")
	DarkGray = lipgloss.Color("#505F79")
	White    = lipgloss.Color("#FAFBFC")
)

var (
	// Title for the main heading of a page
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Blue)

	// Subtitle for secondary headings
	Subtitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(White)

	// Success messages
	Success = lipgloss.NewStyle().
		Foreground(Green)

	// Error messages
	Error = lipgloss.NewStyle().
		Foreground(Red).
		Bold(true)

	// Warning messages
	Warning = lipgloss.NewStyle().
		Foreground(Yellow)

	// Muted/secondary text
	Muted = lipgloss.NewStyle().
		Foreground(Gray)

	// Highlight for important items
	Highlight = lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true)
)

// Render applies a lipgloss style to text, returning plain text in non-TTY
// environments.
func Render(style lipgloss.Style, text string) string {
	if !IsTTY {
		return text
	}
	return style.Render(text)
}

// RenderErr is Render for text bound for stderr.
func RenderErr(style lipgloss.Style, text string) string {
	if !ErrIsTTY {
		return text
	}
	return style.Render(text)
}

// Divider returns a horizontal divider
func Divider(width int) string {
	return Render(lipgloss.NewStyle().Foreground(DarkGray), strings.Repeat("─", width))
}

// SectionHeader creates a decorated section header
func SectionHeader(title string) string {
	if !IsTTY {
		return fmt.Sprintf("=== %s ===", title)
	}

	width := TerminalWidth()
	if width > 80 {
		width = 80
	}

	titleStyled := Highlight.Render(title)
	titleLen := lipgloss.Width(title)
	padLeft := (width - titleLen - 6) / 2
	padRight := width - titleLen - 6 - padLeft

	side := lipgloss.NewStyle().Foreground(DarkGray)
	left := side.Render(strings.Repeat("─", padLeft) + "┤ ")
	right := side.Render(" ├" + strings.Repeat("─", padRight))

	return left + titleStyled + right
}

// SuccessLine creates a success status line
func SuccessLine(message string) string {
	if !IsTTY {
		return fmt.Sprintf("  OK: %s", message)
	}
	return fmt.Sprintf("  %s %s", Success.Render("✓"), Success.Render(message))
}

// ErrorLine creates an error status line for stderr
func ErrorLine(message string) string {
	if !ErrIsTTY {
		return fmt.Sprintf("  ERROR: %s", message)
	}
	return fmt.Sprintf("  %s %s", Error.Render("✗"), Error.Render(message))
}

// TerminalWidth returns the current terminal width, defaulting to 80 if
// unknown
func TerminalWidth() int {
	w, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || w <= 0 {
		return 80
	}
	return w
}
