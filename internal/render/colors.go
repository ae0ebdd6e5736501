package render

import "image/color"

// Brightness levels used by the HUD.
const (
	LevelBlack  = 0
	LevelDim    = 96
	LevelMid    = 160
	LevelBright = 220
	LevelWhite  = 255
)

// Palette maps each brightness level to its grey: a black to white ramp.
var Palette = func() [256]color.RGBA {
	var p [256]color.RGBA
	for i := range p {
		q := uint8(i)
		p[i] = color.RGBA{q, q, q, 255}
	}
	return p
}()
