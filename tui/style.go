package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles used throughout the TUI.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	stylePlayerInput = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleProse = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	styleHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("81"))

	styleListing = lipgloss.NewStyle().
			Foreground(lipgloss.Color("187"))

	styleExits = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleDialogue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("228"))

	styleHint = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("117"))

	styleBanner = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("220"))

	styleError = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

// lineKind classifies an engine output line for styling.
type lineKind int

const (
	kindProse lineKind = iota
	kindHeader
	kindListing
	kindExits
	kindDialogue
	kindHint
	kindBanner
	kindError
)

// classifyLine maps an output line to its kind by the fixed phrasing
// the engine uses.
func classifyLine(line string) lineKind {
	switch {
	case strings.HasPrefix(line, "== ") && strings.HasSuffix(line, " =="):
		return kindHeader
	case strings.HasPrefix(line, "You see:"),
		strings.HasPrefix(line, "People here:"),
		strings.HasPrefix(line, "You are carrying"):
		return kindListing
	case strings.HasPrefix(line, "Exits:"):
		return kindExits
	case strings.Contains(line, " says: "):
		return kindDialogue
	case strings.HasPrefix(line, "Hint #"):
		return kindHint
	case strings.HasPrefix(line, "CONGRATULATIONS"),
		strings.HasPrefix(line, "You have met a lose condition"):
		return kindBanner
	case strings.HasPrefix(line, "You can't"),
		strings.HasPrefix(line, "You don't have"),
		strings.HasPrefix(line, "There is no"),
		strings.HasPrefix(line, "There's no"),
		strings.HasPrefix(line, "I don't understand"):
		return kindError
	default:
		return kindProse
	}
}

// renderLine applies the style for a kind.
func renderLine(line string, kind lineKind) string {
	switch kind {
	case kindHeader:
		return styleHeader.Render(line)
	case kindListing:
		return styleListing.Render(line)
	case kindExits:
		return styleExits.Render(line)
	case kindDialogue:
		return styleDialogue.Render(line)
	case kindHint:
		return styleHint.Render(line)
	case kindBanner:
		return styleBanner.Render(line)
	case kindError:
		return styleError.Render(line)
	default:
		return styleProse.Render(line)
	}
}
