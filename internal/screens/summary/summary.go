package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rustquiz/rustquiz/internal/router"
	"github.com/rustquiz/rustquiz/internal/screen"
	"github.com/rustquiz/rustquiz/internal/session"
	"github.com/rustquiz/rustquiz/internal/ui/components"
	"github.com/rustquiz/rustquiz/internal/ui/layout"
	"github.com/rustquiz/rustquiz/internal/ui/theme"
)

const buttonWidth = 18

const (
	buttonPlayAgain = iota
	buttonHome
)

// SummaryScreen shows the final score of a round.
type SummaryScreen struct {
	summary   session.Summary
	label     string
	playAgain func() screen.Screen
	selected  int
	done      bool
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen. playAgain builds the screen for the next
// round; a nil playAgain hides the option.
func New(summary session.Summary, label string, playAgain func() screen.Screen) *SummaryScreen {
	s := &SummaryScreen{
		summary:   summary,
		label:     label,
		playAgain: playAgain,
	}
	if playAgain == nil {
		s.selected = buttonHome
	}
	return s
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Results"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{}
	if s.playAgain != nil {
		hints = append(hints, layout.KeyHint{Key: "R", Description: "Play again"})
	}
	return append(hints,
		layout.KeyHint{Key: "Enter", Description: "Select"},
		layout.KeyHint{Key: "Esc", Description: "Home"},
	)
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || s.done {
		return s, nil
	}

	switch kmsg.String() {
	case "r", "R":
		return s, s.again()
	case "left", "h", "shift+tab":
		if s.playAgain != nil {
			s.selected = buttonPlayAgain
		}
	case "right", "l", "tab":
		s.selected = buttonHome
	case "enter":
		if s.selected == buttonPlayAgain {
			return s, s.again()
		}
		return s, s.home()
	case "esc":
		return s, s.home()
	}
	return s, nil
}

func (s *SummaryScreen) again() tea.Cmd {
	if s.playAgain == nil {
		return nil
	}
	s.done = true
	next := s.playAgain()
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func (s *SummaryScreen) home() tea.Cmd {
	s.done = true
	return func() tea.Msg { return router.PopScreenMsg{} }
}

// Verdict returns the headline for a score.
func Verdict(sum session.Summary) string {
	switch p := sum.Percent(); {
	case sum.Total == 0:
		return "Nothing to answer"
	case sum.Perfect():
		return "Perfect score!"
	case p >= 70:
		return "Nice work!"
	case p >= 40:
		return "Getting there"
	default:
		return "Time to revisit the book"
	}
}

func (s *SummaryScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	sum := s.summary

	var sections []string

	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(Verdict(sum)))

	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(s.label))

	score := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true).
		Render(fmt.Sprintf("%d / %d", sum.Score, sum.Total))
	percent := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(fmt.Sprintf("%d%% correct", sum.Percent()))
	sections = append(sections, lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw-2).
		Align(lipgloss.Center).
		Render(score+"\n"+percent))

	if sum.Total == 0 {
		sections = append(sections, theme.Hint.Render("No questions matched this round's filter."))
	}

	var buttons []string
	if s.playAgain != nil {
		buttons = append(buttons, components.ArcadeButton("PLAY AGAIN", s.selected == buttonPlayAgain, false, buttonWidth))
	}
	buttons = append(buttons, components.ArcadeButton("HOME", s.selected == buttonHome, false, buttonWidth))
	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, buttons...))

	content := lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(sections, "\n\n"))

	return components.CabinetFrame(content, width, height)
}
