package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/rustquiz/rustquiz/internal/quiz"
	sess "github.com/rustquiz/rustquiz/internal/session"
	"github.com/rustquiz/rustquiz/internal/ui/components"
	"github.com/rustquiz/rustquiz/internal/ui/theme"
)

// maxTextWidth caps the width of question and explanation text.
const maxTextWidth = 72

func (s *SessionScreen) View(width, height int) string {
	if s.confirmQuit {
		return renderQuitConfirm(width)
	}
	if s.feedback != nil {
		return s.renderFeedback(width)
	}
	item, ok := s.state.CurrentQuestion()
	if !ok {
		return renderFinishing(width)
	}
	return s.renderQuestion(item, width)
}

// renderProgress renders "Q i/n" with a bar and the running score.
func (s *SessionScreen) renderProgress(width int) string {
	answered, total := s.state.Progress(s.state.Len())

	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Q %d/%d", min(answered+1, total), total))

	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s %d", lipgloss.NewStyle().Foreground(theme.Success).Render("✓"), s.state.Score()))

	barWidth := width - lipgloss.Width(left) - lipgloss.Width(right) - 8
	bar := components.NewProgressBar("", answered, total, barWidth).View()

	return left + "  " + bar + "  " + right
}

func (s *SessionScreen) renderQuestion(item quiz.Item, width int) string {
	textWidth := min(width-8, maxTextWidth)

	var b strings.Builder
	b.WriteString(s.renderProgress(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	block := renderItem(item, textWidth)
	block += "\n\n" + s.choices.View(-1)
	block += "\n" + theme.Hint.Render(fmt.Sprintf("Select (1-%d) or use arrows + Enter", len(item.Choices)))

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, block))
	return b.String()
}

// renderItem renders title, level, question and the optional code block.
func renderItem(item quiz.Item, textWidth int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(item.Title))
	b.WriteString("  ")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("[" + item.Level.DisplayName() + "]"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Width(textWidth).Foreground(theme.Text).Render(item.Question))

	if item.HasCode() {
		b.WriteString("\n\n")
		b.WriteString(theme.Code.Render(item.Code))
	}
	return b.String()
}

func (s *SessionScreen) renderFeedback(width int) string {
	fb := s.feedback
	textWidth := min(width-8, maxTextWidth)

	var b strings.Builder
	b.WriteString(s.renderProgress(width))
	b.WriteString("\n\n")

	var verdict string
	if fb.result == sess.ResultCorrect {
		verdict = theme.Correct.Render("Correct!")
	} else {
		verdict = theme.Incorrect.Render("Not quite") + "\n" +
			lipgloss.NewStyle().Foreground(theme.TextDim).
				Render(fmt.Sprintf("Correct answer: %s", fb.item.CorrectChoice()))
	}
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(verdict))
	b.WriteString("\n\n")

	block := s.choices.View(fb.item.CorrectIndex)
	if fb.item.Explanation != "" {
		block += "\n" + lipgloss.NewStyle().Width(textWidth).Foreground(theme.Text).Render(fb.item.Explanation)
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, block))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to continue..."))

	return b.String()
}

func renderQuitConfirm(width int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(center.Foreground(theme.Text).Bold(true).Render("End this round early?"))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.TextDim).Render("Your score for this round will be lost."))
	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.Error).Render("[Y] Yes, end round"))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.Primary).Render("[N] No, keep going"))
	return b.String()
}

func renderFinishing(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Tallying your score...")
}
