// Package terminal renders badges for ANSI terminals.
package terminal

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/networkteam/badge/views"
)

type colors struct {
	background lipgloss.TerminalColor
	foreground lipgloss.TerminalColor
}

// Same palette as the Tailwind shades used by views.Badge.
var variantColors = map[views.BadgeVariant]colors{
	views.BadgeVariantDefault: {
		background: lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#374151"},
		foreground: lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#D1D5DB"},
	},
	views.BadgeVariantSuccess: {background: lipgloss.Color("#22C55E"), foreground: lipgloss.Color("#FFFFFF")},
	views.BadgeVariantWarning: {background: lipgloss.Color("#FACC15"), foreground: lipgloss.Color("#000000")},
	views.BadgeVariantError:   {background: lipgloss.Color("#EF4444"), foreground: lipgloss.Color("#FFFFFF")},
	views.BadgeVariantInfo:    {background: lipgloss.Color("#3B82F6"), foreground: lipgloss.Color("#FFFFFF")},
}

var sizePadding = map[views.BadgeSize]int{
	views.BadgeSizeSm: 1,
	views.BadgeSizeMd: 2,
	views.BadgeSizeLg: 3,
}

// Style returns the lipgloss style for a badge. Props.Class has no terminal meaning and is ignored.
func Style(props views.BadgeProps) lipgloss.Style {
	props = props.Resolved()
	c := variantColors[props.Variant]

	return lipgloss.NewStyle().
		Bold(true).
		Background(c.background).
		Foreground(c.foreground).
		Padding(0, sizePadding[props.Size])
}

// Render renders text as a terminal badge.
func Render(props views.BadgeProps, text string) string {
	return Style(props).Render(text)
}
