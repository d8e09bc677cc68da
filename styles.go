package main

import "github.com/charmbracelet/lipgloss"

var (
	colorTitle = lipgloss.Color("#7C3AED")
	colorError = lipgloss.Color("#EF4444")
	colorMuted = lipgloss.Color("#6B7280")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorTitle)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	hintStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)
)

// colorEnabled gates all styled output. Rendering still degrades to
// plain text on non-terminal outputs regardless of this flag.
var colorEnabled = true

func setColorEnabled(on bool) {
	colorEnabled = on
}

func renderTitle(text string) string {
	if !colorEnabled {
		return text
	}
	return titleStyle.Render(text)
}

func renderError(err error) string {
	if !colorEnabled {
		return err.Error()
	}
	return errorStyle.Render(err.Error())
}

func renderHint(text string) string {
	if !colorEnabled {
		return text
	}
	return hintStyle.Render(text)
}
