package render

import "github.com/gdamore/tcell/v2"

// halfBlock shows the upper pixel of a cell as foreground and the lower as background.
const halfBlock = '▀'

// Terminal presents a Surface on a tcell screen, two pixel rows per cell row.
type Terminal struct {
	screen tcell.Screen
	greys  [256]tcell.Color
}

// NewTerminal wraps an initialised tcell screen.
func NewTerminal(screen tcell.Screen) *Terminal {
	t := &Terminal{screen: screen}
	for i := range t.greys {
		c := Palette[i]
		t.greys[i] = tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	return t
}

// SurfaceSize returns the surface dimensions that fill the screen.
func (t *Terminal) SurfaceSize() (int, int) {
	cols, rows := t.screen.Size()
	return cols, rows * 2
}

// Draw paints the surface, then any overlay lines on top starting at the
// top-left cell, and shows the result.
func (t *Terminal) Draw(s *Surface, overlay []string) {
	cols, rows := t.screen.Size()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			style := tcell.StyleDefault.
				Foreground(t.greys[s.At(c, 2*r)]).
				Background(t.greys[s.At(c, 2*r+1)])
			t.screen.SetContent(c, r, halfBlock, nil, style)
		}
	}

	text := tcell.StyleDefault.Foreground(t.greys[LevelBright]).Background(t.greys[LevelBlack])
	for r, line := range overlay {
		if r >= rows {
			break
		}
		c := 0
		for _, ch := range line {
			if c >= cols {
				break
			}
			t.screen.SetContent(c, r, ch, nil, text)
			c++
		}
	}
	t.screen.Show()
}
