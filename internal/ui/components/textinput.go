package components

import (
	"strconv"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rustquiz/rustquiz/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with app styling.
type TextInput struct {
	Model       textinput.Model
	NumericOnly bool
	errMsg      string
}

// NewTextInput creates a focused text input. maxLen of 0 means no limit.
func NewTextInput(placeholder string, numericOnly bool, maxLen int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "> "
	if maxLen > 0 {
		ti.CharLimit = maxLen
	}
	ti.Focus()

	return TextInput{
		Model:       ti,
		NumericOnly: numericOnly,
	}
}

// Init returns the cursor blink command.
func (t TextInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages. Non-digit characters are dropped when
// NumericOnly is set.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if t.NumericOnly {
		if kmsg, ok := msg.(tea.KeyMsg); ok {
			key := kmsg.String()
			if len(key) == 1 && (key[0] < '0' || key[0] > '9') {
				return t, nil
			}
		}
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the input followed by the current error, if any.
func (t TextInput) View() string {
	view := t.Model.View()
	if t.errMsg != "" {
		view += "\n" + lipgloss.NewStyle().Foreground(theme.Error).Render("✗ "+t.errMsg)
	}
	return view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// NumericValue returns the input value as an integer.
func (t TextInput) NumericValue() (int, error) {
	return strconv.Atoi(t.Model.Value())
}

// SetError shows msg under the input. An empty msg clears it.
func (t *TextInput) SetError(msg string) {
	t.errMsg = msg
}

// Err returns the error currently shown.
func (t TextInput) Err() string {
	return t.errMsg
}
