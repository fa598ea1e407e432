package theme

import (
	"fmt"
	"strings"
)

// Brightness describes whether a theme is light or dark.
type Brightness int

const (
	// BrightnessLight is a light theme: dark text on a light background.
	BrightnessLight Brightness = iota
	// BrightnessDark is a dark theme: light text on a dark background.
	BrightnessDark
)

func (b Brightness) String() string {
	switch b {
	case BrightnessLight:
		return "light"
	case BrightnessDark:
		return "dark"
	default:
		return fmt.Sprintf("Brightness(%d)", int(b))
	}
}

// Toggle returns the opposite brightness.
func (b Brightness) Toggle() Brightness {
	if b == BrightnessDark {
		return BrightnessLight
	}
	return BrightnessDark
}

// ParseBrightness parses "light" or "dark", ignoring case and surrounding
// spaces.
func ParseBrightness(s string) (Brightness, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return BrightnessLight, nil
	case "dark":
		return BrightnessDark, nil
	default:
		return BrightnessLight, fmt.Errorf("theme: unknown brightness %q (want light or dark)", s)
	}
}
