package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/rustquiz/rustquiz/internal/ui/theme"
)

const bannerArt = `
 ██████╗ ██╗   ██╗███████╗████████╗ ██████╗ ██╗   ██╗██╗███████╗
 ██╔══██╗██║   ██║██╔════╝╚══██╔══╝██╔═══██╗██║   ██║██║╚══███╔╝
 ██████╔╝██║   ██║███████╗   ██║   ██║   ██║██║   ██║██║  ███╔╝
 ██╔══██╗██║   ██║╚════██║   ██║   ██║▄▄ ██║██║   ██║██║ ███╔╝
 ██║  ██║╚██████╔╝███████║   ██║   ╚██████╔╝╚██████╔╝██║███████╗
 ╚═╝  ╚═╝ ╚═════╝ ╚══════╝   ╚═╝    ╚══▀▀═╝  ╚═════╝ ╚═╝╚══════╝`

const bannerCompact = "R U S T Q U I Z"

// bannerMinWidth is the narrowest terminal that fits the block banner.
const bannerMinWidth = 68

// RenderBanner returns the banner in the primary colour, falling back to
// spaced letters on narrow terminals.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerMinWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
