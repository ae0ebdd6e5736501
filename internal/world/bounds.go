package world

import (
	"errors"
	"fmt"
)

var (
	// ErrNoStars is returned when a field is requested with a non-positive star count.
	ErrNoStars = errors.New("star count must be positive")
	// ErrBounds is returned for degenerate field bounds.
	ErrBounds = errors.New("invalid field bounds")
)

// Bounds is the box stars live in, in camera-relative coordinates.
// X spans [-Width/2, Width/2], Y spans [-Height/2, Height/2], Z spans [MinZ, MaxZ].
type Bounds struct {
	Width  float64
	Height float64
	MinZ   float64
	MaxZ   float64
}

// NewBounds builds the field bounds used by the renderer: a box width units
// wide on both lateral axes and ±depth deep.
func NewBounds(width, depth float64) Bounds {
	return Bounds{Width: width, Height: width, MinZ: -depth, MaxZ: depth}
}

// Validate reports whether the bounds describe a non-empty box.
func (b Bounds) Validate() error {
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("%w: size %gx%g", ErrBounds, b.Width, b.Height)
	}
	if b.MaxZ <= b.MinZ {
		return fmt.Errorf("%w: depth range [%g, %g]", ErrBounds, b.MinZ, b.MaxZ)
	}
	return nil
}

func (b Bounds) MinX() float64  { return -b.Width / 2 }
func (b Bounds) MaxX() float64  { return b.Width / 2 }
func (b Bounds) MinY() float64  { return -b.Height / 2 }
func (b Bounds) MaxY() float64  { return b.Height / 2 }
func (b Bounds) Depth() float64 { return b.MaxZ - b.MinZ }
