package render

import (
	"image"
	"image/png"
	"io"

	"github.com/mattn/go-runewidth"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/go-drift/adapt/pkg/core"
	"github.com/go-drift/adapt/pkg/theme"
)

const (
	// rowHeight is the pixel height of one line, including spacing.
	rowHeight = 20
	// margin surrounds the content on every side.
	margin = 8
	// minColumns is the narrowest image, in character cells.
	minColumns = 16
)

var face = basicfont.Face7x13

// Image draws the tree under root with the 7x13 bitmap font. Each line is
// painted on its palette's background; buttons get a filled box.
// An empty tree yields a blank image the size of one line.
func Image(root core.Element, base *theme.ThemeData) *image.RGBA {
	lines := Lines(root)

	columns := minColumns
	for _, line := range lines {
		columns = max(columns, runewidth.StringWidth(label(line)))
	}
	rows := max(len(lines), 1)
	width := columns*face.Advance + 2*margin
	height := rows*rowHeight + 2*margin
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	background := paletteFor(Line{}, base).ColorScheme.Background
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	for i, line := range lines {
		top := margin + i*rowHeight
		data := paletteFor(line, base)
		band := image.Rect(0, top, width, top+rowHeight)
		draw.Draw(img, band, image.NewUniform(data.ColorScheme.Background), image.Point{}, draw.Src)

		text := label(line)
		fg := data.ColorScheme.OnBackground
		if line.Color != 0 {
			fg = line.Color
		}
		if line.Kind == LineButton {
			button := data.ButtonThemeOf()
			boxWidth := runewidth.StringWidth(text) * face.Advance
			box := image.Rect(margin-2, top+2, margin+boxWidth+2, top+rowHeight-2)
			fill := button.BackgroundColor
			if line.Disabled {
				fill = data.ColorScheme.Outline
			}
			draw.Draw(img, box, image.NewUniform(fill), image.Point{}, draw.Src)
			fg = button.ForegroundColor
		}
		drawText(img, text, fg, margin, top+(rowHeight+face.Ascent-face.Descent)/2)
	}
	return img
}

func drawText(dst draw.Image, text string, c theme.Color, x, baseline int) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, baseline),
	}
	d.DrawString(text)
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
