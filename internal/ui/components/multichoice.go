package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rustquiz/rustquiz/internal/ui/theme"
)

// ChoiceList is a numbered list of answers. The cursor moves with arrows or
// j/k; Enter picks the highlighted choice and a digit picks that choice
// directly. It does not score anything: the caller reads Chosen and hands
// it to the session.
type ChoiceList struct {
	Options  []string
	Selected int
	Chosen   int // -1 until a choice is made
}

// NewChoiceList creates a list with the cursor on the first option.
func NewChoiceList(options []string) ChoiceList {
	return ChoiceList{
		Options: options,
		Chosen:  -1,
	}
}

// Done reports whether a choice has been made.
func (c ChoiceList) Done() bool {
	return c.Chosen >= 0
}

// Update handles navigation and selection keys.
func (c ChoiceList) Update(msg tea.Msg) ChoiceList {
	if c.Done() {
		return c
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	case "enter":
		if len(c.Options) > 0 {
			c.Chosen = c.Selected
		}
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			n := int(key[0] - '1')
			if n < len(c.Options) {
				c.Selected = n
				c.Chosen = n
			}
		}
	}
	return c
}

// View renders the options. After a choice is made, correct (if >= 0) is
// highlighted in green and a wrong pick in red.
func (c ChoiceList) View(correct int) string {
	var b strings.Builder
	for i, opt := range c.Options {
		prefix := "  "
		if i == c.Selected && !c.Done() {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d) %s", prefix, i+1, opt)

		var style lipgloss.Style
		switch {
		case c.Done() && i == correct:
			style = theme.Correct
		case c.Done() && i == c.Chosen:
			style = theme.Incorrect
		case c.Done():
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == c.Selected:
			style = theme.Selected
		default:
			style = theme.Unselected
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
