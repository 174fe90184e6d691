package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// modelforge colors and styles
var (
	ColorBlue   = lipgloss.Color("63")
	ColorPurple = lipgloss.Color("141")
	ColorGreen  = lipgloss.Color("42")
	ColorYellow = lipgloss.Color("220")
	ColorRed    = lipgloss.Color("196")
	ColorGray   = lipgloss.Color("240")
	ColorCyan   = lipgloss.Color("14")

	// Text styles
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPurple).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorBlue)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorGreen).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorYellow)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	// NounStyle highlights paths, class names and shortcuts.
	NounStyle = lipgloss.NewStyle().
			Foreground(ColorCyan)

	SummaryStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255")).
			Background(ColorBlue).
			Padding(0, 1)

	IconSuccess = "✓"
	IconWarning = "!"
	IconError   = "✗"
	IconPlanned = "+"
)

// Section renders a section heading.
func Section(title string) string {
	return TitleStyle.Render(title)
}

// Created renders a line for a written file.
func Created(path string) string {
	return SuccessStyle.Render(IconSuccess) + " Created " + NounStyle.Render(path)
}

// Updated renders a line for a file that was extended in place.
func Updated(path string) string {
	return SuccessStyle.Render(IconSuccess) + " Updated " + NounStyle.Render(path)
}

// Planned renders a dry-run line for a file that would be written.
func Planned(path string, existed bool) string {
	verb := "create"
	if existed {
		verb = "update"
	}
	return WarningStyle.Render(IconPlanned) + " Would " + verb + " " + NounStyle.Render(path)
}

// Failure renders an error line.
func Failure(msg string) string {
	return ErrorStyle.Render(IconError + " " + msg)
}

// Summary renders the pre-generation summary block.
func Summary(lines ...string) string {
	return SummaryStyle.Render("Summary before generation") + "\n\n" + strings.Join(lines, "\n") + "\n"
}
