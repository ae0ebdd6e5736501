package render

import "image"

// Surface is a width×height grid of 8-bit brightness values.
// Values index the grey ramp in Palette.
type Surface struct {
	Width  int
	Height int
	img    *image.Gray

	scratch scratch
}

// NewSurface creates a black surface.
func NewSurface(width, height int) *Surface {
	return &Surface{
		Width:  width,
		Height: height,
		img:    image.NewGray(image.Rect(0, 0, width, height)),
	}
}

// Image exposes the backing image for text drawing and presentation.
func (s *Surface) Image() *image.Gray { return s.img }

// Pix returns the raw brightness values, row-major.
func (s *Surface) Pix() []uint8 { return s.img.Pix }

// Set writes a single pixel. Out-of-bounds writes are ignored.
func (s *Surface) Set(x, y int, v uint8) {
	if x >= 0 && x < s.Width && y >= 0 && y < s.Height {
		s.img.Pix[y*s.img.Stride+x] = v
	}
}

// At reads a single pixel. Out-of-bounds reads return 0.
func (s *Surface) At(x, y int) uint8 {
	if x >= 0 && x < s.Width && y >= 0 && y < s.Height {
		return s.img.Pix[y*s.img.Stride+x]
	}
	return 0
}

// Clear resets every pixel to black.
func (s *Surface) Clear() { s.Fill(0) }

// Fill sets every pixel to v.
func (s *Surface) Fill(v uint8) {
	for i := range s.img.Pix {
		s.img.Pix[i] = v
	}
}

// ExpandRGBA writes the surface through Palette as RGBA bytes into dst,
// growing it when needed, and returns it.
func (s *Surface) ExpandRGBA(dst []byte) []byte {
	n := s.Width * s.Height * 4
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]
	for y := 0; y < s.Height; y++ {
		row := s.img.Pix[y*s.img.Stride : y*s.img.Stride+s.Width]
		o := y * s.Width * 4
		for x, v := range row {
			c := Palette[v]
			dst[o+x*4+0] = c.R
			dst[o+x*4+1] = c.G
			dst[o+x*4+2] = c.B
			dst[o+x*4+3] = c.A
		}
	}
	return dst
}
