package home

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rustquiz/rustquiz/internal/router"
	"github.com/rustquiz/rustquiz/internal/screen"
	sessionscreen "github.com/rustquiz/rustquiz/internal/screens/session"
	"github.com/rustquiz/rustquiz/internal/selection"
	"github.com/rustquiz/rustquiz/internal/ui/components"
	"github.com/rustquiz/rustquiz/internal/ui/layout"
	"github.com/rustquiz/rustquiz/internal/ui/theme"
)

// maxCustomDigits bounds the custom round input.
const maxCustomDigits = 3

// HomeScreen is the mode picker.
type HomeScreen struct {
	deps     sessionscreen.Deps
	defaults selection.Plan
	eligible int

	menu   components.Menu
	custom *components.TextInput // non-nil while asking for a count
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the home screen. defaults supplies the quick round size and
// the filter every round uses.
func New(deps sessionscreen.Deps, defaults selection.Plan) *HomeScreen {
	if defaults.Count < 1 {
		defaults.Count = selection.DefaultRandomCount
	}

	eligible := deps.Bank.Len()
	if !defaults.Filter.IsZero() {
		eligible = len(defaults.Filter.Apply(deps.Bank.Items()))
	}

	h := &HomeScreen{
		deps:     deps,
		defaults: defaults,
		eligible: eligible,
	}

	noItems := eligible == 0
	items := []components.MenuItem{
		{
			Label:    fmt.Sprintf("FULL RUN (%d)", eligible),
			Disabled: noItems,
			Action:   func() tea.Cmd { return h.start(selection.ModeOrdered, 0) },
		},
		{
			Label:    fmt.Sprintf("QUICK ROUND (%d)", min(defaults.Count, eligible)),
			Disabled: noItems,
			Action:   func() tea.Cmd { return h.start(selection.ModeRandom, defaults.Count) },
		},
		{
			Label:    "CUSTOM ROUND",
			Disabled: noItems,
			Action:   h.openCustom,
		},
		{
			Label:  "EXIT",
			Action: func() tea.Cmd { return tea.Quit },
		},
	}
	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	if h.custom != nil {
		return []layout.KeyHint{
			{Key: "0-9", Description: "Count"},
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if h.custom != nil {
		return h.updateCustom(msg)
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) openCustom() tea.Cmd {
	ti := components.NewTextInput(fmt.Sprintf("1-%d", h.eligible), true, maxCustomDigits)
	h.custom = &ti
	return ti.Init()
}

func (h *HomeScreen) updateCustom(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "esc":
			h.custom = nil
			return h, nil
		case "enter":
			n, err := ParseCount(h.custom.Value())
			if err != nil {
				h.custom.SetError(err.Error())
				return h, nil
			}
			h.custom = nil
			return h, h.start(selection.ModeRandom, n)
		}
	}

	var cmd tea.Cmd
	*h.custom, cmd = h.custom.Update(msg)
	return h, cmd
}

// ParseCount validates a custom round size typed by the user.
func ParseCount(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("enter how many questions to play")
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not a whole number", s)
	}
	if n < 1 {
		return 0, fmt.Errorf("pick at least one question")
	}
	return n, nil
}

// start pushes a new round. count is ignored for ordered rounds.
func (h *HomeScreen) start(mode selection.Mode, count int) tea.Cmd {
	plan := h.defaults
	plan.Mode = mode
	if mode == selection.ModeRandom {
		plan.Count = count
	}
	round := sessionscreen.Start(h.deps, plan)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: round}
	}
}

func (h *HomeScreen) View(width, height int) string {
	compact := layout.IsCompact(width, height+6)
	cw := components.ContentWidth(width)

	sections := []string{
		renderTitle(cw, compact),
		renderStatsBar(h.deps.Bank.Len(), h.eligible, len(h.deps.Bank.Tags()), cw, compact),
	}

	if h.eligible == 0 {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Accent).
			Width(cw).
			Align(lipgloss.Center).
			Render("⚠ No questions match the current filter"))
	}

	if compact {
		sections = append(sections, renderMenuCompact(h.menu.Labels(), h.menu.Selected, cw, h.menu.DisabledSet()))
	} else {
		sections = append(sections, renderMenu(h.menu.Labels(), h.menu.Selected, cw, h.menu.DisabledSet()))
	}

	if h.custom != nil {
		prompt := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("How many questions?")
		sections = append(sections, lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Render(prompt+"\n"+h.custom.View()))
	}

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}
