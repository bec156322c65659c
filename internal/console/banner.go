package console

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathsprint/internal/ui/theme"
)

const bannerArt = `
     ███╗   ███╗ █████╗ ████████╗██╗  ██╗
     ████╗ ████║██╔══██╗╚══██╔══╝██║  ██║
     ██╔████╔██║███████║   ██║   ███████║
     ██║╚██╔╝██║██╔══██║   ██║   ██╔══██║
     ██║ ╚═╝ ██║██║  ██║   ██║   ██║  ██║
     ╚═╝     ╚═╝╚═╝  ╚═╝   ╚═╝   ╚═╝  ╚═╝
███████╗██████╗ ██████╗ ██╗███╗   ██╗████████╗
██╔════╝██╔══██╗██╔══██╗██║████╗  ██║╚══██╔══╝
███████╗██████╔╝██████╔╝██║██╔██╗ ██║   ██║
╚════██║██╔═══╝ ██╔══██╗██║██║╚██╗██║   ██║
███████║██║     ██║  ██║██║██║ ╚████║   ██║
╚══════╝╚═╝     ╚═╝  ╚═╝╚═╝╚═╝  ╚═══╝   ╚═╝`

const (
	// bannerWidth is the narrowest terminal the block art fits in.
	bannerWidth = 52

	bannerCompact = "M A T H   S P R I N T"
)

// RenderBanner returns the MATH SPRINT banner styled in the primary
// color. Terminals narrower than 52 columns get a compact fallback.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
