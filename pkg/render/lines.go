package render

import (
	"fmt"
	"unicode/utf8"

	"github.com/go-drift/adapt/pkg/core"
	"github.com/go-drift/adapt/pkg/theme"
	"github.com/go-drift/adapt/pkg/widgets"
)

// LineKind identifies what a Line was read from.
type LineKind int

const (
	LineText LineKind = iota
	LineButton
)

func (k LineKind) String() string {
	switch k {
	case LineText:
		return "text"
	case LineButton:
		return "button"
	default:
		return fmt.Sprintf("LineKind(%d)", int(k))
	}
}

// Line is one visible row of a widget tree.
type Line struct {
	Kind LineKind
	Text string
	// Key is the widget key, formatted, or "" without one.
	Key string
	// Color is the Text widget's explicit color, zero for the theme default.
	Color    theme.Color
	Disabled bool
	// Surfaced is true when the line sits inside a Surface, whose
	// brightness is then Brightness.
	Surfaced   bool
	Brightness theme.Brightness
}

// Shortcut returns the single-character key of a button, if it has one.
// Hosts bind that character to the button.
func (l Line) Shortcut() (string, bool) {
	if l.Kind != LineButton || utf8.RuneCountInString(l.Key) != 1 {
		return "", false
	}
	return l.Key, true
}

// Lines flattens the tree under root into rows, in depth-first order.
func Lines(root core.Element) []Line {
	if root == nil {
		return nil
	}
	var lines []Line
	collect(root, false, theme.BrightnessLight, &lines)
	return lines
}

func collect(el core.Element, surfaced bool, brightness theme.Brightness, lines *[]Line) {
	widget := el.Widget()
	var key string
	if k := widget.Key(); k != nil {
		key = fmt.Sprint(k)
	}

	switch w := widget.(type) {
	case widgets.Surface:
		surfaced = true
		brightness = w.Brightness
	case widgets.Text:
		*lines = append(*lines, Line{
			Kind:       LineText,
			Text:       w.Content,
			Key:        key,
			Color:      w.Color,
			Surfaced:   surfaced,
			Brightness: brightness,
		})
	case widgets.Button:
		*lines = append(*lines, Line{
			Kind:       LineButton,
			Text:       w.Label,
			Key:        key,
			Disabled:   w.Disabled || w.OnTap == nil,
			Surfaced:   surfaced,
			Brightness: brightness,
		})
	}

	el.VisitChildren(func(child core.Element) bool {
		collect(child, surfaced, brightness, lines)
		return true
	})
}

// paletteFor picks the theme of a line: its Surface's, else base.
func paletteFor(line Line, base *theme.ThemeData) *theme.ThemeData {
	if line.Surfaced {
		return theme.ThemeFor(line.Brightness)
	}
	if base == nil {
		return theme.DefaultLightTheme()
	}
	return base
}

// label returns the text a line is drawn with.
func label(line Line) string {
	if line.Kind != LineButton {
		return line.Text
	}
	if shortcut, ok := line.Shortcut(); ok {
		return fmt.Sprintf("[ %s ] (%s)", line.Text, shortcut)
	}
	return fmt.Sprintf("[ %s ]", line.Text)
}
