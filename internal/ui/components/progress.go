package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/rustquiz/rustquiz/internal/ui/theme"
)

// ProgressBar displays a horizontal bar for answered/total.
type ProgressBar struct {
	Label    string
	Answered int
	Total    int
	Width    int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, answered, total, width int) ProgressBar {
	return ProgressBar{
		Label:    label,
		Answered: answered,
		Total:    total,
		Width:    width,
	}
}

// Fraction returns answered/total clamped to [0, 1]. An empty bar is 0.
func (p ProgressBar) Fraction() float64 {
	if p.Total <= 0 {
		return 0
	}
	f := float64(p.Answered) / float64(p.Total)
	if f > 1 {
		return 1
	}
	if f < 0 {
		return 0
	}
	return f
}

// View renders the bar followed by "answered/total".
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	count := fmt.Sprintf("  %d/%d", p.Answered, p.Total)
	barWidth := p.Width - lipgloss.Width(result) - len(count)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Fraction())
	empty := barWidth - filled

	result += theme.ProgressFilled.Render(strings.Repeat(" ", filled))
	result += theme.ProgressEmpty.Render(strings.Repeat(" ", empty))
	result += lipgloss.NewStyle().Foreground(theme.TextDim).Render(count)

	return result
}
