package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBrightness(t *testing.T) {
	tests := []struct {
		in      string
		want    Brightness
		wantErr bool
	}{
		{"light", BrightnessLight, false},
		{"dark", BrightnessDark, false},
		{" Dark ", BrightnessDark, false},
		{"dim", BrightnessLight, true},
		{"", BrightnessLight, true},
	}
	for _, tt := range tests {
		got, err := ParseBrightness(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestBrightness_StringAndToggle(t *testing.T) {
	assert.Equal(t, "light", BrightnessLight.String())
	assert.Equal(t, "dark", BrightnessDark.String())
	assert.Equal(t, "Brightness(7)", Brightness(7).String())
	assert.Equal(t, BrightnessDark, BrightnessLight.Toggle())
	assert.Equal(t, BrightnessLight, BrightnessDark.Toggle())
}

func TestThemeFor(t *testing.T) {
	assert.Equal(t, BrightnessLight, ThemeFor(BrightnessLight).Brightness)
	assert.Equal(t, DarkColorScheme(), ThemeFor(BrightnessDark).ColorScheme)
}

func TestThemeData_CopyWith(t *testing.T) {
	base := DefaultLightTheme()
	colors := LightColorScheme()
	colors.Primary = RGB(0, 150, 136)

	custom := base.CopyWith(&colors, nil)
	assert.Equal(t, RGB(0, 150, 136), custom.ColorScheme.Primary)
	assert.Equal(t, BrightnessLight, custom.Brightness)
	assert.NotEqual(t, custom.ColorScheme.Primary, base.ColorScheme.Primary)
}

func TestButtonThemeOf(t *testing.T) {
	data := DefaultDarkTheme()
	assert.Equal(t, data.ColorScheme.Primary, data.ButtonThemeOf().BackgroundColor)

	data.ButtonTheme = &ButtonThemeData{BackgroundColor: ColorBlack, ForegroundColor: ColorWhite}
	assert.Equal(t, ColorBlack, data.ButtonThemeOf().BackgroundColor)
}

func TestColor(t *testing.T) {
	c := RGB(0x12, 0xAB, 0xFF)
	assert.Equal(t, "#12ABFF", c.Hex())
	n := c.NRGBA()
	assert.Equal(t, uint8(0x12), n.R)
	assert.Equal(t, uint8(0xAB), n.G)
	assert.Equal(t, uint8(0xFF), n.B)
	assert.Equal(t, uint8(0xFF), n.A)

	_, _, _, a := ColorTransparent.RGBA()
	assert.Zero(t, a)
}
