package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/rustquiz/rustquiz/internal/ui/components"
	"github.com/rustquiz/rustquiz/internal/ui/theme"
)

const titleFull = `╦═╗╦ ╦╔═╗╔╦╗╔═╗ ╦ ╦╦╔═╗
╠╦╝║ ║╚═╗ ║ ║═╬╗║ ║║╔═╝
╩╚═╚═╝╚═╝ ╩ ╚═╝╚╚═╝╩╚═╝`

const titleCompact = "R · U · S · T · Q · U · I · Z"

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	art := titleFull
	if compact {
		art = titleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(art))
}

// renderStatsBar shows bank size, eligible items and tag count.
func renderStatsBar(total, eligible, tags, cw int, compact bool) string {
	countStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	eligibleStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	tagStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			countStyle.Render(fmt.Sprintf("?%d", total)),
			eligibleStyle.Render(fmt.Sprintf("▸%d", eligible)),
			tagStyle.Render(fmt.Sprintf("#%d", tags)),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			countStyle.Render(fmt.Sprintf("? %d QUESTIONS", total)),
			eligibleStyle.Render(fmt.Sprintf("▸ %d IN PLAY", eligible)),
			tagStyle.Render(fmt.Sprintf("# %d TOPICS", tags)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

func renderMenu(items []string, selected, cw int, disabled map[int]bool) string {
	buttons := make([]string, 0, len(items))
	for i, label := range items {
		buttons = append(buttons, components.ArcadeButton(label, i == selected, disabled[i], buttonWidth))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderMenuCompact renders items as plain lines for small terminals where
// bordered buttons would overflow.
func renderMenuCompact(items []string, selected, cw int, disabled map[int]bool) string {
	lines := make([]string, 0, len(items))
	for i, label := range items {
		var line string
		switch {
		case disabled[i]:
			line = lipgloss.NewStyle().Foreground(theme.TextDim).Render("   " + label)
		case i == selected:
			line = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.ArcadeYellow).
				Bold(true).
				Render(" ▸ " + label + " ")
		default:
			line = lipgloss.NewStyle().Foreground(theme.Text).Render("   " + label)
		}
		lines = append(lines, line)
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}
