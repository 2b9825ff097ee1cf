package home

import (
	"strconv"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/rustquiz/rustquiz/internal/quiz"
	"github.com/rustquiz/rustquiz/internal/router"
	sessionscreen "github.com/rustquiz/rustquiz/internal/screens/session"
	"github.com/rustquiz/rustquiz/internal/selection"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testDeps(t *testing.T) sessionscreen.Deps {
	t.Helper()
	bank, err := quiz.Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	return sessionscreen.Deps{Bank: bank, Planner: selection.NewPlanner(3)}
}

func pushedRound(t *testing.T, cmd tea.Cmd) *sessionscreen.SessionScreen {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	round, ok := push.Screen.(*sessionscreen.SessionScreen)
	if !ok {
		t.Fatalf("expected session screen, got %T", push.Screen)
	}
	return round
}

func TestHome_FullRun(t *testing.T) {
	h := New(testDeps(t), selection.Plan{Count: 5})

	_, cmd := h.Update(specialKey(tea.KeyEnter))
	round := pushedRound(t, cmd)
	if round.Title() != "Full run" {
		t.Errorf("Title() = %q, want Full run", round.Title())
	}
	if !strings.Contains(round.View(100, 30), "Q 1/20") {
		t.Error("full run should cover the whole bank")
	}
}

func TestHome_QuickRound(t *testing.T) {
	h := New(testDeps(t), selection.Plan{Count: 5})

	h.Update(specialKey(tea.KeyDown))
	_, cmd := h.Update(specialKey(tea.KeyEnter))
	round := pushedRound(t, cmd)
	if round.Title() != "Random round (5)" {
		t.Errorf("Title() = %q", round.Title())
	}
}

func TestHome_CustomRoundRetriesInvalidInput(t *testing.T) {
	h := New(testDeps(t), selection.Plan{Count: 5})

	h.Update(specialKey(tea.KeyDown))
	h.Update(specialKey(tea.KeyDown))
	h.Update(specialKey(tea.KeyEnter))
	if h.custom == nil {
		t.Fatal("custom round should open the count input")
	}

	_, cmd := h.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("empty input should not start a round")
	}
	if h.custom == nil || h.custom.Err() == "" {
		t.Fatal("empty input should show an error and stay open")
	}

	h.Update(keyPress('0'))
	h.Update(specialKey(tea.KeyEnter))
	if h.custom == nil || !strings.Contains(h.custom.Err(), "at least one") {
		t.Fatal("zero should be rejected")
	}

	h.Update(specialKey(tea.KeyBackspace))
	h.Update(keyPress('3'))
	_, cmd = h.Update(specialKey(tea.KeyEnter))
	round := pushedRound(t, cmd)
	if round.Title() != "Random round (3)" {
		t.Errorf("Title() = %q", round.Title())
	}
	if h.custom != nil {
		t.Error("input should close once a round starts")
	}
}

func TestHome_CustomRoundEscCancels(t *testing.T) {
	h := New(testDeps(t), selection.Plan{Count: 5})
	h.openCustom()

	h.Update(specialKey(tea.KeyEscape))
	if h.custom != nil {
		t.Error("Esc should close the count input")
	}
}

func TestHome_EmptyFilterDisablesRounds(t *testing.T) {
	plan := selection.Plan{Count: 5, Filter: selection.Filter{Tags: []string{"missing"}}}
	h := New(testDeps(t), plan)

	if h.menu.Selected != 3 {
		t.Errorf("Selected = %d, want 3 (EXIT)", h.menu.Selected)
	}
	if !strings.Contains(h.View(100, 34), "No questions match") {
		t.Error("view should warn about the empty filter")
	}
}

func TestHome_FilterNarrowsFullRun(t *testing.T) {
	plan := selection.Plan{Count: 5, Filter: selection.Filter{Levels: []quiz.Level{quiz.LevelIntro}}}
	h := New(testDeps(t), plan)

	if h.eligible == 0 || h.eligible >= 20 {
		t.Fatalf("eligible = %d, want a strict subset", h.eligible)
	}
	_, cmd := h.Update(specialKey(tea.KeyEnter))
	round := pushedRound(t, cmd)
	if got := round.View(100, 30); !strings.Contains(got, "Q 1/"+strconv.Itoa(h.eligible)) {
		t.Errorf("round should cover %d items", h.eligible)
	}
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"5", 5, false},
		{" 12 ", 12, false},
		{"", 0, true},
		{"0", 0, true},
		{"x", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseCount(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseCount(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCount(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
