package camera

import "math"

// Sentinel marks a trail slot that must not produce a line this frame.
var Sentinel = math.Inf(1)

// Yaw window in which crossing stars have their screen coordinates mirrored.
// The bounds are empirical; without the flip, trails of stars passing the
// camera plane are drawn on the wrong side of the screen at these headings.
const (
	flipYawMin = math.Pi / 2.0
	flipYawMax = math.Pi * 7.0 / 6.0
)

// Segment is one trail, from the star's current position to the far end of
// its (length capped) streak.
type Segment struct {
	X1, Y1 float64
	X2, Y2 float64
	B      float64
}

// Trace is the drawable output of trail extension. The first Direct entries
// of X/Y/B are stars drawn as plain points; the rest are trail pixels.
type Trace struct {
	X, Y, B  []float64
	Direct   int
	Segments []Segment
}

func (tr *Trace) reset() {
	tr.X = tr.X[:0]
	tr.Y = tr.Y[:0]
	tr.B = tr.B[:0]
	tr.Direct = 0
	tr.Segments = tr.Segments[:0]
}

// Trails remembers each star's screen position from the previous frame.
type Trails struct {
	OldX   []float64
	OldY   []float64
	MaxLen int

	width   float64
	height  float64
	pending []Segment
}

// NewTrails returns a trail buffer for n stars on a w×h surface, every slot
// set to Sentinel. Trails are capped at w/10 pixels.
func NewTrails(n, w, h int) *Trails {
	t := &Trails{
		OldX:   make([]float64, n),
		OldY:   make([]float64, n),
		MaxLen: max(1, w/10),
		width:  float64(w),
		height: float64(h),
	}
	t.ResetAll()
	return t
}

// Reset clears the given slots.
func (t *Trails) Reset(indices []int) {
	for _, i := range indices {
		t.OldX[i] = Sentinel
		t.OldY[i] = Sentinel
	}
}

// ResetAll clears every slot.
func (t *Trails) ResetAll() {
	for i := range t.OldX {
		t.OldX[i] = Sentinel
		t.OldY[i] = Sentinel
	}
}

// Cleared reports whether slot i holds the sentinel.
func (t *Trails) Cleared(i int) bool {
	return math.IsInf(t.OldX[i], 1) || math.IsInf(t.OldY[i], 1)
}

// Extend pairs this frame's projected stars with their previous positions and
// writes points and trail pixels into out. crossing is indexed by star slot
// (see Crossings). Every visible star's position is stored for the next frame.
func (t *Trails) Extend(fr *Frame, crossing []bool, yaw float64, out *Trace) {
	out.reset()
	t.pending = t.pending[:0]
	flip := flipYawMin < yaw && yaw < flipYawMax

	for k, i := range fr.Index {
		x, y, b := fr.X[k], fr.Y[k], fr.B[k]
		ox, oy := t.OldX[i], t.OldY[i]
		t.OldX[i], t.OldY[i] = x, y

		if flip && crossing[i] {
			x, y, ox, oy = -x, -y, -ox, -oy
		}

		inside := ox > 1 && ox < t.width-1 && oy > 1 && oy < t.height-1
		moved := math.Abs(x-ox) > 2.0 || math.Abs(y-oy) > 2.0
		if inside && moved {
			t.pending = append(t.pending, Segment{X1: x, Y1: y, X2: ox, Y2: oy, B: b})
			continue
		}
		out.X = append(out.X, x)
		out.Y = append(out.Y, y)
		out.B = append(out.B, b)
	}
	out.Direct = len(out.X)

	for _, p := range t.pending {
		start := len(out.X)
		out.X, out.Y = Interpolate(p.X1, p.Y1, p.X2, p.Y2, t.MaxLen, out.X, out.Y)
		if len(out.X) == start {
			continue
		}
		for range len(out.X) - start {
			out.B = append(out.B, p.B)
		}
		last := len(out.X) - 1
		out.Segments = append(out.Segments, Segment{
			X1: p.X1, Y1: p.Y1,
			X2: out.X[last], Y2: out.Y[last],
			B: p.B,
		})
	}
}

// Interpolate appends to xs/ys the pixels of the line from (x, y) toward
// (ox, oy). The full line has max(|dx|, |dy|)+1 evenly spaced points (deltas
// truncated to integers); only the first min(maxLen, that) are emitted, so a
// long jump becomes a capped streak anchored at (x, y).
func Interpolate(x, y, ox, oy float64, maxLen int, xs, ys []float64) ([]float64, []float64) {
	// Span in float: a star just in front of the camera projects far past the int range.
	span := math.Trunc(max(math.Abs(ox-x), math.Abs(oy-y)))
	if math.IsNaN(span) || math.IsInf(span, 0) {
		return xs, ys
	}
	steps := int(min(float64(maxLen), span+1))
	if steps <= 0 {
		return xs, ys
	}
	if span == 0 {
		xs = append(xs, x)
		ys = append(ys, y)
		return xs, ys
	}
	sx, sy := (ox-x)/span, (oy-y)/span
	for j := 0; j < steps; j++ {
		if float64(j) == span {
			xs = append(xs, ox)
			ys = append(ys, oy)
			break
		}
		xs = append(xs, x+float64(j)*sx)
		ys = append(ys, y+float64(j)*sy)
	}
	return xs, ys
}
