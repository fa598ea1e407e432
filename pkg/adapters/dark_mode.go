package adapters

import (
	"github.com/go-drift/adapt/pkg/adapt"
	"github.com/go-drift/adapt/pkg/core"
	"github.com/go-drift/adapt/pkg/option"
	"github.com/go-drift/adapt/pkg/theme"
)

// Dark mode state values.
const (
	ModeLight = "light"
	ModeDark  = "dark"
)

// DarkMode is the view of a "light"/"dark" string state.
type DarkMode struct {
	// Value is the mode, "light" while the state is absent.
	Value string
	// IsDark reports whether Value is "dark".
	IsDark bool
	// Brightness is Value as a theme brightness.
	Brightness theme.Brightness
	// Toggle switches "light" to "dark" and anything else to "light".
	Toggle func()
}

// AsDarkMode adapts a string state to a DarkMode.
func AsDarkMode(value option.Option[string], set core.Setter[string]) DarkMode {
	mode := value.OrElse(ModeLight)
	isDark := mode == ModeDark
	brightness := theme.BrightnessLight
	if isDark {
		brightness = theme.BrightnessDark
	}
	return DarkMode{
		Value:      mode,
		IsDark:     isDark,
		Brightness: brightness,
		Toggle: func() {
			if mode == ModeLight {
				set.Set(ModeDark)
			} else {
				set.Set(ModeLight)
			}
		},
	}
}

// UseDarkMode is the hook for AsDarkMode. The optional initial value seeds
// the first build.
var UseDarkMode = adapt.Create(AsDarkMode)
