package widgets

import (
	"github.com/go-drift/adapt/pkg/core"
	"github.com/go-drift/adapt/pkg/theme"
)

// Text displays a single string.
type Text struct {
	// Content is the text string to display.
	Content string
	// Color overrides the theme's foreground color when non-zero.
	Color theme.Color
	// KeyValue identifies the widget for finders and element reuse.
	KeyValue any
}

// WithColor returns a copy of the text with the specified color.
func (t Text) WithColor(c theme.Color) Text {
	t.Color = c
	return t
}

func (t Text) CreateElement() core.Element {
	return core.NewStatelessElement(t, nil)
}

func (t Text) Key() any {
	return t.KeyValue
}

// Build returns nil; Text is a leaf read directly by renderers.
func (t Text) Build(ctx core.BuildContext) core.Widget {
	return nil
}
