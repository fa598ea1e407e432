package widgets

import (
	"github.com/go-drift/adapt/pkg/core"
	"github.com/go-drift/adapt/pkg/theme"
)

// Surface paints its subtree with the light or dark theme.
// Renderers pick the palette of the nearest enclosing Surface.
type Surface struct {
	// Brightness selects the palette for the subtree.
	Brightness theme.Brightness
	// Child is the content.
	Child core.Widget
	// KeyValue identifies the widget for finders and element reuse.
	KeyValue any
}

func (s Surface) CreateElement() core.Element {
	return core.NewContainerElement(s, nil)
}

func (s Surface) Key() any {
	return s.KeyValue
}

func (s Surface) ChildWidgets() []core.Widget {
	if s.Child == nil {
		return nil
	}
	return []core.Widget{s.Child}
}

// BrightnessOf returns the brightness of the nearest Surface enclosing el,
// including el itself. Without one it returns BrightnessLight.
func BrightnessOf(el core.Element) theme.Brightness {
	if s, ok := el.Widget().(Surface); ok {
		return s.Brightness
	}
	found := el.FindAncestor(func(e core.Element) bool {
		_, ok := e.Widget().(Surface)
		return ok
	})
	if found == nil {
		return theme.BrightnessLight
	}
	return found.Widget().(Surface).Brightness
}
