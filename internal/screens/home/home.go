// Package home is the entry screen: dataset loading, filter selection, and
// the jump-off points for a quiz session and the coverage view.
package home

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rishikadhanawade/pg-az900-quest/internal/config"
	"github.com/rishikadhanawade/pg-az900-quest/internal/coverage"
	"github.com/rishikadhanawade/pg-az900-quest/internal/dataset"
	"github.com/rishikadhanawade/pg-az900-quest/internal/filter"
	"github.com/rishikadhanawade/pg-az900-quest/internal/quiz"
	"github.com/rishikadhanawade/pg-az900-quest/internal/router"
	"github.com/rishikadhanawade/pg-az900-quest/internal/screen"
	coveragescreen "github.com/rishikadhanawade/pg-az900-quest/internal/screens/coverage"
	quizscreen "github.com/rishikadhanawade/pg-az900-quest/internal/screens/quiz"
	"github.com/rishikadhanawade/pg-az900-quest/internal/ui/components"
	"github.com/rishikadhanawade/pg-az900-quest/internal/ui/layout"
	"github.com/rishikadhanawade/pg-az900-quest/internal/ui/theme"
)

// DatasetLoadedMsg is sent when the one-time dataset load finishes.
type DatasetLoadedMsg struct {
	Records []dataset.Record
	Err     error
}

// Focus rows: three filter selectors followed by the three actions.
const (
	focusSet = iota
	focusDomain
	focusDifficulty
	focusStart
	focusCoverage
	focusQuit
	focusRows
)

// HomeScreen is the main screen of the application.
type HomeScreen struct {
	th  theme.Theme
	cfg config.Config

	loading bool
	spin    spinner.Model
	loadErr error

	records   []dataset.Record
	selectors [3]components.Selector
	focus     int
	alert     string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the home screen. The dataset loads in Init.
func New(th theme.Theme, cfg config.Config) *HomeScreen {
	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(th.Primary)

	return &HomeScreen{
		th:      th,
		cfg:     cfg,
		loading: true,
		spin:    spin,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return tea.Batch(h.spin.Tick, h.loadDataset())
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	if h.loading {
		return []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	}
	if h.loadErr != nil {
		return []layout.KeyHint{
			{Key: "R", Description: "Retry"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "←→", Description: "Change filter"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// loadDataset performs the one-time fetch.
func (h *HomeScreen) loadDataset() tea.Cmd {
	source := h.cfg.Data
	return func() tea.Msg {
		records, err := dataset.Load(context.Background(), source)
		return DatasetLoadedMsg{Records: records, Err: err}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !h.loading {
			return h, nil
		}
		var cmd tea.Cmd
		h.spin, cmd = h.spin.Update(msg)
		return h, cmd

	case DatasetLoadedMsg:
		h.loading = false
		if msg.Err != nil {
			h.loadErr = msg.Err
			return h, nil
		}
		h.loadErr = nil
		h.records = msg.Records
		opts := filter.DeriveOptions(h.records)
		h.selectors = [3]components.Selector{
			components.NewSelector("Set", opts.Sets),
			components.NewSelector("Domain", opts.Domains),
			components.NewSelector("Difficulty", opts.Difficulties),
		}
		h.selectors[h.selectorIndex()].Focused = true
		return h, nil

	case tea.KeyMsg:
		return h.handleKey(msg)
	}

	return h, nil
}

func (h *HomeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if h.loading {
		return h, nil
	}

	if h.loadErr != nil {
		if msg.String() == "r" {
			h.loading = true
			return h, tea.Batch(h.spin.Tick, h.loadDataset())
		}
		return h, nil
	}

	switch msg.String() {
	case "up", "k":
		h.moveFocus(-1)
		return h, nil
	case "down", "j":
		h.moveFocus(1)
		return h, nil
	case "enter":
		return h.activate()
	}

	// Left/right cycles the focused selector.
	if h.focus <= focusDifficulty {
		sel, changed := h.selectors[h.focus].Update(msg)
		if changed {
			h.selectors[h.focus] = sel
			h.alert = ""
		}
		return h, nil
	}

	return h, nil
}

func (h *HomeScreen) moveFocus(delta int) {
	if h.focus <= focusDifficulty {
		h.selectors[h.focus].Focused = false
	}
	h.focus = (h.focus + delta + focusRows) % focusRows
	if h.focus <= focusDifficulty {
		h.selectors[h.focus].Focused = true
	}
}

// selectorIndex clamps focus to a selector row.
func (h *HomeScreen) selectorIndex() int {
	if h.focus > focusDifficulty {
		return focusSet
	}
	return h.focus
}

// selection assembles the current filter selection.
func (h *HomeScreen) selection() filter.Selection {
	return filter.Selection{
		Set:        h.selectors[focusSet].Value(),
		Domain:     h.selectors[focusDomain].Value(),
		Difficulty: h.selectors[focusDifficulty].Value(),
	}
}

func (h *HomeScreen) activate() (screen.Screen, tea.Cmd) {
	switch h.focus {
	case focusStart:
		return h.startQuiz()

	case focusCoverage:
		report := coverage.Compute(h.records)
		th := h.th
		return h, func() tea.Msg {
			return router.PushScreenMsg{Screen: coveragescreen.New(th, report)}
		}

	case focusQuit:
		return h, tea.Quit
	}
	return h, nil
}

// startQuiz validates the active filtered list and pushes the quiz screen.
// Zero matches is a blocking message; the screen stays put.
func (h *HomeScreen) startQuiz() (screen.Screen, tea.Cmd) {
	matched := filter.Apply(h.records, h.selection())
	session, err := quiz.NewSession(matched, quiz.Options{Shuffle: h.cfg.Shuffle})
	if err != nil {
		h.alert = err.Error()
		return h, nil
	}

	h.alert = ""
	th := h.th
	return h, func() tea.Msg {
		return router.PushScreenMsg{Screen: quizscreen.New(th, session)}
	}
}

func (h *HomeScreen) View(width, height int) string {
	if h.loading {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render("\n\n" + h.spin.View() + " Loading question bank...")
	}

	if h.loadErr != nil {
		body := h.th.Alert().Render("Could not load the question bank") + "\n\n" +
			h.th.Dim().Render(h.loadErr.Error()) + "\n\n" +
			h.th.Body().Render("Press r to retry.")
		card := h.th.Card().Width(min(width-4, 64)).Render(body)
		return "\n\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, card)
	}

	var sections []string

	sections = append(sections, h.th.Title().Width(width).Render("AZ-900 practice quiz"))

	var rows []string
	for _, sel := range h.selectors {
		rows = append(rows, sel.View(h.th))
	}
	matched := len(filter.Apply(h.records, h.selection()))
	rows = append(rows, "")
	rows = append(rows, h.th.Dim().Render(fmt.Sprintf("%12s%d of %d questions match", "", matched, len(h.records))))
	sections = append(sections, strings.Join(rows, "\n"))

	sections = append(sections, h.renderActions())

	if h.alert != "" {
		sections = append(sections, h.th.Alert().Render("  "+h.alert))
	}

	content := strings.Join(sections, "\n\n")
	return "\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Width(min(width-4, 64)).Render(content))
}

func (h *HomeScreen) renderActions() string {
	labels := []string{"START QUIZ", "COVERAGE", "QUIT"}
	var s strings.Builder
	for i, label := range labels {
		if h.focus == focusStart+i {
			s.WriteString(lipgloss.NewStyle().
				Foreground(h.th.Primary).
				Bold(true).
				Render("  ▸ " + label))
		} else {
			s.WriteString(lipgloss.NewStyle().
				Foreground(h.th.Text).
				Render("    " + label))
		}
		s.WriteString("\n")
	}
	return s.String()
}
