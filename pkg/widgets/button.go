package widgets

import "github.com/go-drift/adapt/pkg/core"

// Button is a labelled tap target.
//
//	Button{
//	    Label:    "Toggle",
//	    OnTap:    mode.Ext.Toggle,
//	    KeyValue: "toggle",
//	}
//
// Hosts bind input to buttons by key: the terminal host maps a key press
// to the button whose KeyValue is that key, and the widget tester taps
// buttons found by any finder.
type Button struct {
	// Label is the text displayed on the button.
	Label string
	// OnTap is called when the button is tapped.
	OnTap func()
	// Disabled disables the button when true.
	Disabled bool
	// KeyValue identifies the widget for finders and element reuse.
	KeyValue any
}

// ButtonOf creates a button with the given label and tap handler.
func ButtonOf(label string, onTap func()) Button {
	return Button{Label: label, OnTap: onTap}
}

// WithKey returns a copy of the button with the specified key.
func (b Button) WithKey(key any) Button {
	b.KeyValue = key
	return b
}

// WithDisabled returns a copy of the button with the specified disabled state.
func (b Button) WithDisabled(disabled bool) Button {
	b.Disabled = disabled
	return b
}

// Tap invokes OnTap unless the button is disabled or has no handler.
// It reports whether the handler ran.
func (b Button) Tap() bool {
	if b.Disabled || b.OnTap == nil {
		return false
	}
	b.OnTap()
	return true
}

func (b Button) CreateElement() core.Element {
	return core.NewStatelessElement(b, nil)
}

func (b Button) Key() any {
	return b.KeyValue
}

func (b Button) Build(ctx core.BuildContext) core.Widget {
	return nil
}
