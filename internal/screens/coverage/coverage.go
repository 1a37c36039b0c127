// Package coverage renders the dataset breakdown by domain and difficulty
// as proportional bars. It always reflects the full dataset, never the
// active filters.
package coverage

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	agg "github.com/rishikadhanawade/pg-az900-quest/internal/coverage"
	"github.com/rishikadhanawade/pg-az900-quest/internal/router"
	"github.com/rishikadhanawade/pg-az900-quest/internal/screen"
	"github.com/rishikadhanawade/pg-az900-quest/internal/ui/components"
	"github.com/rishikadhanawade/pg-az900-quest/internal/ui/layout"
	"github.com/rishikadhanawade/pg-az900-quest/internal/ui/theme"
)

// CoverageScreen displays the aggregate report.
type CoverageScreen struct {
	th     theme.Theme
	report agg.Report
}

var _ screen.Screen = (*CoverageScreen)(nil)
var _ screen.KeyHintProvider = (*CoverageScreen)(nil)

// New creates the coverage screen for a precomputed report.
func New(th theme.Theme, report agg.Report) *CoverageScreen {
	return &CoverageScreen{th: th, report: report}
}

func (s *CoverageScreen) Init() tea.Cmd {
	return nil
}

func (s *CoverageScreen) Title() string {
	return "Coverage"
}

func (s *CoverageScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
}

func (s *CoverageScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc", "enter", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *CoverageScreen) View(width, height int) string {
	contentWidth := min(width-4, 72)

	var b strings.Builder
	b.WriteString(s.th.Title().Width(contentWidth).Render(
		fmt.Sprintf("Question bank coverage (%d questions)", s.report.Total)))
	b.WriteString("\n\n")

	b.WriteString(s.renderGroups("By domain", s.report.Domains, contentWidth))
	b.WriteString("\n")
	b.WriteString(s.renderGroups("By difficulty", s.report.Difficulties, contentWidth))

	if s.report.Total == 0 {
		b.WriteString(s.th.Dim().Italic(true).Render("\n  The question bank is empty."))
	}

	return "\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Width(contentWidth).Render(b.String()))
}

func (s *CoverageScreen) renderGroups(title string, groups []agg.Group, width int) string {
	labelWidth := 0
	for _, g := range groups {
		if len(g.Label) > labelWidth {
			labelWidth = len(g.Label)
		}
	}

	var b strings.Builder
	b.WriteString(s.th.Dim().Bold(true).Render(title))
	b.WriteString("\n")
	for _, g := range groups {
		label := fmt.Sprintf("%-*s %4d", labelWidth, g.Label, g.Count)
		bar := components.NewProgressBar(label, g.Share, true, width)
		b.WriteString(bar.View(s.th))
		b.WriteString("\n")
	}
	return b.String()
}
