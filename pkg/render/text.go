package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/adapt/pkg/core"
	"github.com/go-drift/adapt/pkg/theme"
)

// Text renders the tree under root as styled terminal text. Lines outside
// any Surface use base, or the light theme when base is nil.
func Text(root core.Element, base *theme.ThemeData) string {
	lines := Lines(root)
	if len(lines) == 0 {
		return ""
	}
	rows := make([]string, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, styleFor(line, base).Render(label(line)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func styleFor(line Line, base *theme.ThemeData) lipgloss.Style {
	data := paletteFor(line, base)
	colors := data.ColorScheme

	if line.Kind == LineButton {
		button := data.ButtonThemeOf()
		style := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(button.ForegroundColor.Hex())).
			Background(lipgloss.Color(button.BackgroundColor.Hex()))
		if line.Disabled {
			style = style.Faint(true)
		}
		return style
	}

	fg := colors.OnBackground
	if line.Color != 0 {
		fg = line.Color
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg.Hex())).
		Background(lipgloss.Color(colors.Background.Hex())).
		Padding(0, 1)
}
