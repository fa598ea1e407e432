// Package app is the demo's widget tree: a dark mode toggle and a counter,
// both built on adapted state hooks.
package app

import (
	"strconv"

	"github.com/rs/zerolog"

	"github.com/go-drift/adapt/pkg/adapters"
	"github.com/go-drift/adapt/pkg/core"
	"github.com/go-drift/adapt/pkg/theme"
	"github.com/go-drift/adapt/pkg/widgets"
)

// Button keys. Single characters double as terminal shortcuts.
const (
	KeyToggle    = "t"
	KeyIncrement = "+"
	KeyDecrement = "-"
	KeyReset     = "r"
)

// App is the root widget.
type App struct {
	core.StatelessBase

	Title   string
	Initial theme.Brightness
	// Logger records taps; nil means no logging.
	Logger *zerolog.Logger
}

func (a App) Build(ctx core.BuildContext) core.Widget {
	mode := adapters.UseDarkMode(ctx, a.Initial.String())
	count := adapters.UseCounter(ctx, 0)

	logged := func(action string, fn func()) func() {
		return func() {
			if a.Logger != nil {
				a.Logger.Debug().
					Str("action", action).
					Str("mode", mode.Ext.Value).
					Int("count", count.Ext.Value).
					Msg("tap")
			}
			fn()
		}
	}

	return widgets.Surface{
		Brightness: mode.Ext.Brightness,
		Child: widgets.ColumnOf(
			widgets.Text{Content: a.Title, KeyValue: "title"},
			widgets.Text{Content: "mode: " + mode.Ext.Value, KeyValue: "mode"},
			widgets.ButtonOf(toggleLabel(mode.Ext.IsDark), logged("toggle", mode.Ext.Toggle)).WithKey(KeyToggle),
			widgets.Text{Content: "count: " + strconv.Itoa(count.Ext.Value), KeyValue: "count"},
			widgets.ButtonOf("Increment", logged("increment", count.Ext.Increment)).WithKey(KeyIncrement),
			widgets.ButtonOf("Decrement", logged("decrement", count.Ext.Decrement)).
				WithKey(KeyDecrement).
				WithDisabled(count.Ext.Value <= 0),
			widgets.ButtonOf("Reset", logged("reset", count.Ext.Reset)).WithKey(KeyReset),
		),
	}
}

func toggleLabel(isDark bool) string {
	if isDark {
		return "Light mode"
	}
	return "Dark mode"
}
