package session

import (
	"fmt"
	"io"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/rustquiz/rustquiz/internal/quiz"
	"github.com/rustquiz/rustquiz/internal/router"
	"github.com/rustquiz/rustquiz/internal/screen"
	"github.com/rustquiz/rustquiz/internal/screens/summary"
	"github.com/rustquiz/rustquiz/internal/selection"
	sess "github.com/rustquiz/rustquiz/internal/session"
	"github.com/rustquiz/rustquiz/internal/ui/components"
	"github.com/rustquiz/rustquiz/internal/ui/layout"
)

// Deps are the long-lived collaborators a round needs.
type Deps struct {
	Bank    *quiz.Bank
	Planner *selection.Planner
	Log     *slog.Logger
}

// feedback is what the user sees after answering.
type feedback struct {
	item   quiz.Item
	result sess.Result
}

// SessionScreen implements screen.Screen for an active round.
type SessionScreen struct {
	deps      Deps
	plan      selection.Plan
	state     *sess.Session
	attemptID string
	log       *slog.Logger

	choices     components.ChoiceList
	feedback    *feedback
	confirmQuit bool
	ended       bool
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)
var _ screen.StatusProvider = (*SessionScreen)(nil)

// Start builds a fresh item list for plan and returns a screen over it.
func Start(deps Deps, plan selection.Plan) *SessionScreen {
	return New(deps, plan, sess.New(deps.Planner.Build(deps.Bank, plan)))
}

// New returns a screen driving state, which must be freshly reset.
func New(deps Deps, plan selection.Plan, state *sess.Session) *SessionScreen {
	if deps.Log == nil {
		deps.Log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	id := uuid.New().String()
	s := &SessionScreen{
		deps:      deps,
		plan:      plan,
		state:     state,
		attemptID: id,
		log:       deps.Log.With("attempt_id", id),
	}
	s.resetChoices()
	return s
}

func (s *SessionScreen) Init() tea.Cmd {
	s.log.Info("attempt started", "mode", string(s.plan.Mode), "items", s.state.Len())
	if s.state.Finished() {
		return func() tea.Msg { return sessionEndMsg{} }
	}
	return nil
}

func (s *SessionScreen) Title() string {
	return s.plan.Describe()
}

func (s *SessionScreen) Status() string {
	return fmt.Sprintf("✓ %d", s.state.Score())
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.confirmQuit:
		return []layout.KeyHint{
			{Key: "Y", Description: "End round"},
			{Key: "N", Description: "Keep going"},
		}
	case s.feedback != nil:
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "1-9", Description: "Answer"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Quit"},
		}
	}
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case feedbackDoneMsg:
		return s.handleFeedbackDone()
	case sessionEndMsg:
		return s.handleSessionEnd()
	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *SessionScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if s.ended {
		return s, nil
	}
	key := msg.String()

	if s.confirmQuit {
		switch key {
		case "y", "Y":
			s.ended = true
			s.log.Info("attempt abandoned", "answered", s.state.Index(), "total", s.state.Len())
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	if s.feedback != nil {
		return s, func() tea.Msg { return feedbackDoneMsg{} }
	}

	if key == "esc" {
		s.confirmQuit = true
		return s, nil
	}

	s.choices = s.choices.Update(msg)
	if s.choices.Done() {
		return s.submitAnswer(s.choices.Chosen)
	}
	return s, nil
}

// submitAnswer hands the choice to the engine and shows feedback.
func (s *SessionScreen) submitAnswer(choice int) (screen.Screen, tea.Cmd) {
	item, ok := s.state.CurrentQuestion()
	if !ok {
		return s, func() tea.Msg { return sessionEndMsg{} }
	}

	res := s.state.Answer(choice)
	s.log.Debug("answer", "item_id", item.ID, "choice", choice, "result", res.String())
	s.feedback = &feedback{item: item, result: res}
	return s, nil
}

func (s *SessionScreen) handleFeedbackDone() (screen.Screen, tea.Cmd) {
	s.feedback = nil
	if s.state.Finished() {
		return s, func() tea.Msg { return sessionEndMsg{} }
	}
	s.resetChoices()
	return s, nil
}

func (s *SessionScreen) handleSessionEnd() (screen.Screen, tea.Cmd) {
	if s.ended {
		return s, nil
	}
	s.ended = true

	sum := sess.BuildSummary(s.state)
	s.log.Info("attempt finished", "score", sum.Score, "total", sum.Total)

	next := summary.New(sum, s.plan.Describe(), s.playAgain)
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

// playAgain re-plans the round and rebinds the same session to the new
// items, so a random round draws a fresh sample.
func (s *SessionScreen) playAgain() screen.Screen {
	s.state.ResetWith(s.deps.Planner.Build(s.deps.Bank, s.plan))
	return New(s.deps, s.plan, s.state)
}

func (s *SessionScreen) resetChoices() {
	item, ok := s.state.CurrentQuestion()
	if !ok {
		s.choices = components.NewChoiceList(nil)
		return
	}
	s.choices = components.NewChoiceList(item.Choices)
}
