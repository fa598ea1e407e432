package theme

// ThemeData contains the theme configuration used by renderers.
type ThemeData struct {
	// ColorScheme defines the color palette.
	ColorScheme ColorScheme

	// Brightness indicates if this is a light or dark theme.
	Brightness Brightness

	// ButtonTheme is optional, derived from ColorScheme if nil.
	ButtonTheme *ButtonThemeData
}

// ButtonThemeData styles buttons.
type ButtonThemeData struct {
	// BackgroundColor fills the button.
	BackgroundColor Color
	// ForegroundColor is the label color.
	ForegroundColor Color
}

// DefaultLightTheme returns the default light theme.
func DefaultLightTheme() *ThemeData {
	return &ThemeData{
		ColorScheme: LightColorScheme(),
		Brightness:  BrightnessLight,
	}
}

// DefaultDarkTheme returns the default dark theme.
func DefaultDarkTheme() *ThemeData {
	return &ThemeData{
		ColorScheme: DarkColorScheme(),
		Brightness:  BrightnessDark,
	}
}

// ThemeFor returns the default theme for b.
func ThemeFor(b Brightness) *ThemeData {
	if b == BrightnessDark {
		return DefaultDarkTheme()
	}
	return DefaultLightTheme()
}

// CopyWith returns a new ThemeData with the specified fields overridden.
func (t *ThemeData) CopyWith(colorScheme *ColorScheme, brightness *Brightness) *ThemeData {
	result := &ThemeData{
		ColorScheme: t.ColorScheme,
		Brightness:  t.Brightness,
		ButtonTheme: t.ButtonTheme,
	}
	if colorScheme != nil {
		result.ColorScheme = *colorScheme
	}
	if brightness != nil {
		result.Brightness = *brightness
	}
	return result
}

// ButtonThemeOf returns the button theme, deriving from ColorScheme if not set.
func (t *ThemeData) ButtonThemeOf() ButtonThemeData {
	if t.ButtonTheme != nil {
		return *t.ButtonTheme
	}
	return DefaultButtonTheme(t.ColorScheme)
}

// DefaultButtonTheme returns ButtonThemeData derived from a ColorScheme.
func DefaultButtonTheme(colors ColorScheme) ButtonThemeData {
	return ButtonThemeData{
		BackgroundColor: colors.Primary,
		ForegroundColor: colors.OnPrimary,
	}
}
