// Package screen defines the contract between the router and the screens
// it stacks.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/rustquiz/rustquiz/internal/ui/layout"
)

// Screen is one full-window view managed by the router.
type Screen interface {
	// Init returns a command to run when the screen becomes active.
	Init() tea.Cmd

	// Update handles a message and returns the updated screen.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the content area, excluding header and footer.
	View(width, height int) string

	// Title is shown in the header.
	Title() string
}

// KeyHintProvider lets a screen replace the default footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider lets a screen put a short status on the right of the
// header, e.g. the running score.
type StatusProvider interface {
	Status() string
}
