package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/rishikadhanawade/pg-az900-quest/internal/ui/theme"
)

const (
	MinWidth  = 72
	MinHeight = 22

	brand = "AZ-900 Quest"
)

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage renders the "terminal too small" message.
func RenderMinSizeMessage(th theme.Theme, width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(th.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

// RenderHeader renders the application header bar: brand on the left, the
// active screen title centered, and the loaded question count on the right.
func RenderHeader(th theme.Theme, title string, questions int, width int) string {
	left := lipgloss.NewStyle().
		Foreground(th.Primary).
		Bold(true).
		Render("  " + brand)

	center := lipgloss.NewStyle().
		Foreground(th.Text).
		Render(title)

	rightText := ""
	if questions > 0 {
		rightText = fmt.Sprintf("%d questions", questions)
	}
	right := lipgloss.NewStyle().
		Foreground(th.Accent).
		Render(rightText)

	leftLen := lipgloss.Width(left)
	centerLen := lipgloss.Width(center)
	rightLen := lipgloss.Width(right)

	innerWidth := width - 4 // border padding
	if innerWidth < 0 {
		innerWidth = 0
	}

	leftGap := (innerWidth-centerLen)/2 - leftLen
	if leftGap < 1 {
		leftGap = 1
	}
	rightGap := innerWidth - leftLen - leftGap - centerLen - rightLen
	if rightGap < 1 {
		rightGap = 1
	}

	content := left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right

	return lipgloss.NewStyle().
		Width(width).
		Background(th.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(th.Border).
		Render(content)
}

// RenderFooter renders the footer with key hints.
func RenderFooter(th theme.Theme, hints []KeyHint, width int) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		part := lipgloss.NewStyle().Foreground(th.Text).Bold(true).Render(h.Key) +
			" " +
			lipgloss.NewStyle().Foreground(th.TextDim).Render(h.Description)
		parts = append(parts, part)
	}

	content := "  " + strings.Join(parts, "   ")

	return lipgloss.NewStyle().
		Width(width).
		Background(th.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(th.Border).
		Render(content)
}

// RenderFrame composes the full frame: header + content + footer.
func RenderFrame(header, content, footer string, width, height int) string {
	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)

	contentHeight := height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	styledContent := lipgloss.NewStyle().
		Width(width).
		Height(contentHeight).
		Render(content)

	return header + "\n" + styledContent + "\n" + footer
}
