// Package styles contains Lip Gloss style definitions.
package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	// Semantic color names - Text hierarchy
	TextPrimaryColor   = lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#CCCCCC"} // Names and values
	TextSecondaryColor = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#BBBBBB"} // Codes, registration numbers
	TextMutedColor     = lipgloss.AdaptiveColor{Light: "#888888", Dark: "#696969"} // Prompts, hints

	// Semantic color names - Border
	BorderDefaultColor = lipgloss.AdaptiveColor{Light: "#888888", Dark: "#696969"}

	// Semantic color names - Status
	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	StatusWarningColor = lipgloss.AdaptiveColor{Light: "#C49102", Dark: "#FECA57"}
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}

	// Heading color for report titles
	HeadingColor = lipgloss.AdaptiveColor{Light: "#1A5276", Dark: "#54A0FF"}

	HeadingStyle = lipgloss.NewStyle().Bold(true).Foreground(HeadingColor)
	LabelStyle   = lipgloss.NewStyle().Foreground(TextSecondaryColor)
	ValueStyle   = lipgloss.NewStyle().Foreground(TextPrimaryColor)
	PromptStyle  = lipgloss.NewStyle().Foreground(TextMutedColor)
	SuccessStyle = lipgloss.NewStyle().Foreground(StatusSuccessColor)
	WarningStyle = lipgloss.NewStyle().Foreground(StatusWarningColor)
	ErrorStyle   = lipgloss.NewStyle().Bold(true).Foreground(StatusErrorColor)
)

// detectedProfile is the profile lipgloss chose for the terminal at startup.
var detectedProfile = lipgloss.ColorProfile()

// ApplyColorMode sets the global color profile.
// "auto" restores the profile lipgloss detected from the terminal, "never"
// strips all styling and "always" forces 256 colors even when piped.
func ApplyColorMode(mode string) error {
	switch mode {
	case "", "auto":
		lipgloss.SetColorProfile(detectedProfile)
	case "never":
		lipgloss.SetColorProfile(termenv.Ascii)
	case "always":
		lipgloss.SetColorProfile(termenv.ANSI256)
	default:
		return fmt.Errorf("unknown color mode %q (must be \"auto\", \"always\" or \"never\")", mode)
	}
	return nil
}
