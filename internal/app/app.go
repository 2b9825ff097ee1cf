package app

import (
	"fmt"
	"log/slog"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/rustquiz/rustquiz/internal/quiz"
	"github.com/rustquiz/rustquiz/internal/router"
	"github.com/rustquiz/rustquiz/internal/screen"
	"github.com/rustquiz/rustquiz/internal/screens/home"
	sessionscreen "github.com/rustquiz/rustquiz/internal/screens/session"
	"github.com/rustquiz/rustquiz/internal/screens/welcome"
	"github.com/rustquiz/rustquiz/internal/selection"
	"github.com/rustquiz/rustquiz/internal/ui/layout"
)

// Options holds the dependencies for the TUI.
type Options struct {
	Bank    *quiz.Bank
	Planner *selection.Planner
	Logger  *slog.Logger

	// Defaults seeds the quick round size and the filter for every round.
	Defaults selection.Plan

	// SkipWelcome starts on the home screen.
	SkipWelcome bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

func newAppModel(opts Options) AppModel {
	deps := sessionscreen.Deps{
		Bank:    opts.Bank,
		Planner: opts.Planner,
		Log:     opts.Logger,
	}
	homeFactory := func() screen.Screen {
		return home.New(deps, opts.Defaults)
	}

	var first screen.Screen
	if opts.SkipWelcome {
		first = homeFactory()
	} else {
		first = welcome.New(homeFactory, opts.Bank.Len())
	}
	return AppModel{
		router: router.New(first),
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// footerHints returns the active screen's hints, or defaults by depth.
func (m AppModel) footerHints() []layout.KeyHint {
	if p, ok := m.router.Active().(screen.KeyHintProvider); ok {
		return p.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "any key", Description: "Continue"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if frame := m.render(); frame != "" {
		v.SetContent(frame)
	}
	return v
}

// render draws the full frame, or nothing until the window size is known.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	var title, status string
	if active != nil {
		title = active.Title()
		if p, ok := active.(screen.StatusProvider); ok {
			status = p.Status()
		}
	}

	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(m.footerHints(), m.width)

	content := m.router.View(m.width, layout.ContentHeight(header, footer, m.height))
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	if opts.Bank == nil {
		return fmt.Errorf("app: no question bank")
	}
	if opts.Planner == nil {
		opts.Planner = selection.NewPlanner(0)
	}

	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
