// Package camera projects the star field onto the screen and extends
// projected stars into motion trails.
package camera

import (
	"math"

	"github.com/star-lines/starlines/internal/world"
)

// Lens maps camera-space points onto screen pixels.
type Lens struct {
	CenterX float64
	CenterY float64
	Zoom    float64
	Falloff float64 // depth at which brightness drops by one full level
}

// NewLens returns the lens for a w×h surface: centred, with a zoom of 1.5 half-widths.
func NewLens(w, h int) Lens {
	cx, cy := float64(w)/2, float64(h)/2
	return Lens{CenterX: cx, CenterY: cy, Zoom: cx * 1.5, Falloff: float64(w)}
}

// Frame holds the visible subset of the field for one frame.
// Index[k] is the star slot that produced X[k], Y[k], B[k].
type Frame struct {
	Index []int
	X     []float64
	Y     []float64
	B     []float64
}

// Len returns the number of visible stars.
func (fr *Frame) Len() int { return len(fr.Index) }

func (fr *Frame) reset() {
	fr.Index = fr.Index[:0]
	fr.X = fr.X[:0]
	fr.Y = fr.Y[:0]
	fr.B = fr.B[:0]
}

// Project rotates the field by yaw about the x axis, drops every star whose
// rotated depth is not in front of the camera and writes screen coordinates
// and brightness of the rest into out.
func (l Lens) Project(f *world.Field, yaw float64, out *Frame) {
	out.reset()
	c, s := math.Cos(yaw), math.Sin(yaw)
	xs, ys, zs, vs := f.X, f.Y, f.Z, f.VelSqrt
	for i := range zs {
		rz := zs[i]*c - ys[i]*s
		if !(rz > 0) {
			continue
		}
		ry := ys[i]*c + zs[i]*s
		out.Index = append(out.Index, i)
		out.X = append(out.X, l.CenterX+xs[i]/rz*l.Zoom)
		out.Y = append(out.Y, l.CenterY+ry/rz*l.Zoom)
		out.B = append(out.B, (2.0-rz/l.Falloff)*vs[i])
	}
}

// Crossings marks in out every star whose unrotated depth went from in front
// of the camera (prev > 0) to behind it (z <= 0).
func Crossings(prev, z []float64, out []bool) {
	z = z[:len(prev)]
	out = out[:len(prev)]
	for i := range prev {
		out[i] = prev[i] > 0 && z[i] <= 0
	}
}
