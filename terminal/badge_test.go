package terminal_test

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/networkteam/badge/terminal"
	"github.com/networkteam/badge/views"
)

func TestRender_Padding(t *testing.T) {
	tests := []struct {
		size  views.BadgeSize
		width int
	}{
		{views.BadgeSizeSm, 8},
		{views.BadgeSizeMd, 10},
		{views.BadgeSizeLg, 12},
		{"", 10},
	}
	for _, tt := range tests {
		out := terminal.Render(views.BadgeProps{Size: tt.size}, "Active")
		assert.Contains(t, out, "Active")
		assert.Equal(t, tt.width, lipgloss.Width(out), "size %q", tt.size)
	}
}

func TestStyle_FailClosed(t *testing.T) {
	want := terminal.Style(views.BadgeProps{Variant: views.BadgeVariantDefault, Size: views.BadgeSizeMd})
	got := terminal.Style(views.BadgeProps{Variant: "unknown", Size: "xxl"})

	assert.Equal(t, want.GetBackground(), got.GetBackground())
	assert.Equal(t, want.GetForeground(), got.GetForeground())
	assert.Equal(t, want.GetPaddingLeft(), got.GetPaddingLeft())
}

func TestStyle_Variants(t *testing.T) {
	tests := []struct {
		variant    views.BadgeVariant
		background lipgloss.TerminalColor
		foreground lipgloss.TerminalColor
	}{
		{views.BadgeVariantSuccess, lipgloss.Color("#22C55E"), lipgloss.Color("#FFFFFF")},
		{views.BadgeVariantWarning, lipgloss.Color("#FACC15"), lipgloss.Color("#000000")},
		{views.BadgeVariantError, lipgloss.Color("#EF4444"), lipgloss.Color("#FFFFFF")},
		{views.BadgeVariantInfo, lipgloss.Color("#3B82F6"), lipgloss.Color("#FFFFFF")},
	}
	for _, tt := range tests {
		t.Run(string(tt.variant), func(t *testing.T) {
			style := terminal.Style(views.BadgeProps{Variant: tt.variant})
			assert.Equal(t, tt.background, style.GetBackground())
			assert.Equal(t, tt.foreground, style.GetForeground())
			assert.True(t, style.GetBold())
		})
	}
}
