package theme

// ColorScheme is the palette a theme draws from.
type ColorScheme struct {
	Primary      Color
	OnPrimary    Color
	Background   Color
	OnBackground Color
	Surface      Color
	OnSurface    Color
	Outline      Color
	Error        Color
	OnError      Color
}

// LightColorScheme returns the default light palette.
func LightColorScheme() ColorScheme {
	return ColorScheme{
		Primary:      RGB(0x3D, 0x5A, 0xFE),
		OnPrimary:    ColorWhite,
		Background:   RGB(0xFA, 0xFA, 0xFA),
		OnBackground: RGB(0x1C, 0x1B, 0x1F),
		Surface:      ColorWhite,
		OnSurface:    RGB(0x1C, 0x1B, 0x1F),
		Outline:      RGB(0x79, 0x74, 0x7E),
		Error:        RGB(0xB3, 0x26, 0x1E),
		OnError:      ColorWhite,
	}
}

// DarkColorScheme returns the default dark palette.
func DarkColorScheme() ColorScheme {
	return ColorScheme{
		Primary:      RGB(0x8C, 0x9E, 0xFF),
		OnPrimary:    RGB(0x00, 0x1A, 0x72),
		Background:   RGB(0x12, 0x12, 0x14),
		OnBackground: RGB(0xE6, 0xE1, 0xE5),
		Surface:      RGB(0x1E, 0x1E, 0x22),
		OnSurface:    RGB(0xE6, 0xE1, 0xE5),
		Outline:      RGB(0x93, 0x8F, 0x99),
		Error:        RGB(0xF2, 0xB8, 0xB5),
		OnError:      RGB(0x60, 0x14, 0x10),
	}
}
