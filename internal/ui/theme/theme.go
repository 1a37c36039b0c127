// Package theme defines the color palettes. A Theme is a plain value built
// once from configuration and passed to whatever renders; there is no
// process-wide mutable theme state.
package theme

import (
	"fmt"
	"image/color"

	"charm.land/lipgloss/v2"
)

// Theme is one complete color palette.
type Theme struct {
	Name string

	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	BgCard    color.Color
	Border    color.Color
}

// Dark is the default palette.
func Dark() Theme {
	return Theme{
		Name:      "dark",
		Primary:   lipgloss.Color("#38BDF8"), // Sky
		Secondary: lipgloss.Color("#14B8A6"), // Teal
		Accent:    lipgloss.Color("#F59E0B"), // Amber
		Success:   lipgloss.Color("#22C55E"), // Green
		Error:     lipgloss.Color("#F43F5E"), // Rose
		Text:      lipgloss.Color("#F8FAFC"), // White
		TextDim:   lipgloss.Color("#94A3B8"), // Slate
		BgCard:    lipgloss.Color("#1E293B"), // Dark Slate
		Border:    lipgloss.Color("#334155"), // Slate
	}
}

// Light is the palette for light terminals.
func Light() Theme {
	return Theme{
		Name:      "light",
		Primary:   lipgloss.Color("#0369A1"),
		Secondary: lipgloss.Color("#0F766E"),
		Accent:    lipgloss.Color("#B45309"),
		Success:   lipgloss.Color("#15803D"),
		Error:     lipgloss.Color("#BE123C"),
		Text:      lipgloss.Color("#0F172A"),
		TextDim:   lipgloss.Color("#64748B"),
		BgCard:    lipgloss.Color("#E2E8F0"),
		Border:    lipgloss.Color("#CBD5E1"),
	}
}

// ByName resolves a configured theme name.
func ByName(name string) (Theme, error) {
	switch name {
	case "dark":
		return Dark(), nil
	case "light":
		return Light(), nil
	default:
		return Theme{}, fmt.Errorf("unknown theme %q", name)
	}
}

// Title styles centered headline text.
func (t Theme) Title() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Primary).Align(lipgloss.Center)
}

// Body styles regular text.
func (t Theme) Body() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Text)
}

// Dim styles secondary text.
func (t Theme) Dim() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.TextDim)
}

// Alert styles blocking validation messages.
func (t Theme) Alert() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Error).Bold(true)
}

// Correct styles a right answer.
func (t Theme) Correct() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Success).Bold(true)
}

// Incorrect styles a wrong answer.
func (t Theme) Incorrect() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Error).Bold(true)
}

// Card styles a bordered content box.
func (t Theme) Card() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2)
}
