package main

import "github.com/charmbracelet/lipgloss"

// chromeHeight is the number of lines the header and footer take away
// from the viewport.
const chromeHeight = 4

var (
	// Color palette
	primaryColor = lipgloss.Color("#7D56F4")
	usedColor    = lipgloss.Color("#FFA500")
	freeColor    = lipgloss.Color("#04B575")
	errorColor   = lipgloss.Color("#FF4B4B")
	mutedColor   = lipgloss.Color("#666666")

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			Padding(0, 1)

	traceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00D7FF")).
			Italic(true)

	usedStyle = lipgloss.NewStyle().Foreground(usedColor)
	freeStyle = lipgloss.NewStyle().Foreground(freeColor)

	statusStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Padding(0, 1)
)
