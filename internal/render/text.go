package render

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	GlyphWidth  = 7
	GlyphHeight = 13
)

// TextAtlas writes HUD text onto a Surface with basicfont.Face7x13.
type TextAtlas struct {
	face font.Face
	src  [256]*image.Uniform
}

// NewTextAtlas returns an atlas with one uniform source per brightness level.
func NewTextAtlas() *TextAtlas {
	a := &TextAtlas{face: basicfont.Face7x13}
	for i := range a.src {
		a.src[i] = image.NewUniform(color.Gray{Y: uint8(i)})
	}
	return a
}

// DrawString writes s with its top-left corner at pixel (x, y).
// Runes outside the face's range are drawn as the face's fallback glyph.
func (a *TextAtlas) DrawString(dst *Surface, x, y int, s string, level uint8) {
	d := &font.Drawer{
		Dst:  dst.Image(),
		Src:  a.src[level],
		Face: a.face,
		Dot:  fixed.P(x, y+a.face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)
}

// DrawLines writes lines top to bottom starting at (x, y), one glyph height apart.
func (a *TextAtlas) DrawLines(dst *Surface, x, y int, lines []string, level uint8) {
	for i, line := range lines {
		a.DrawString(dst, x, y+i*GlyphHeight, line, level)
	}
}

// Measure returns the pixel width of s.
func (a *TextAtlas) Measure(s string) int {
	return font.MeasureString(a.face, s).Ceil()
}
