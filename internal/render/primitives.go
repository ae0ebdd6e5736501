package render

import (
	"fmt"
	"math"
)

// Method selects the primitive used to draw stars.
type Method uint8

const (
	MethodPoints Method = iota // single pixels
	MethodQuads                // anti-aliased 2x2 splats
)

// ParseMethod maps a settings name to a Method. "fast" is accepted as an alias for points.
func ParseMethod(name string) (Method, error) {
	switch name {
	case "points", "fast":
		return MethodPoints, nil
	case "quads", "smooth":
		return MethodQuads, nil
	default:
		return 0, fmt.Errorf("unknown draw method %q", name)
	}
}

func (m Method) String() string {
	if m == MethodQuads {
		return "quads"
	}
	return "points"
}

// Draw dispatches to the primitive m names.
func (m Method) Draw(s *Surface, xs, ys, levels []float64) {
	if m == MethodQuads {
		DrawAntialiasedPoints(s, xs, ys, levels)
		return
	}
	DrawPoints(s, xs, ys, levels)
}

// DrawPoints writes one pixel per point. Levels are clamped to [0, 1] and
// scaled to 0-255; coordinates are truncated. Points are written darkest
// first, so where several land on one pixel the brightest wins.
func DrawPoints(s *Surface, xs, ys, levels []float64) {
	n := min(len(xs), len(ys), len(levels))
	vals := s.scratch.values(n)
	for i := range vals {
		vals[i] = levelByte(levels[i])
	}
	for _, i := range s.scratch.ascending(vals) {
		s.Set(int(xs[i]), int(ys[i]), vals[i])
	}
}

// DrawAntialiasedPoints splats each point over the four pixels around it,
// weighting each corner by its mean axis coverage. All corner writes are
// made darkest first, as in DrawPoints.
func DrawAntialiasedPoints(s *Surface, xs, ys, levels []float64) {
	n := min(len(xs), len(ys), len(levels))
	sc := &s.scratch
	vals := sc.values(4 * n)
	px, py := sc.coords(4 * n)

	for i := 0; i < n; i++ {
		var q quad
		q.splat(xs[i], ys[i])
		bright := float64(levelByte(levels[i]))
		for c := 0; c < 4; c++ {
			k := c*n + i
			px[k], py[k] = q.x[c], q.y[c]
			vals[k] = clampByte(q.w[c] * bright)
		}
	}
	for _, k := range sc.ascending(vals) {
		s.Set(px[k], py[k], vals[k])
	}
}

// DrawAntialiasedLine draws a Wu line from (x1, y1) to (x2, y2).
func DrawAntialiasedLine(s *Surface, x1, y1, x2, y2, level float64) {
	bright := levelByte(level)
	xd, yd := math.Abs(x2-x1), math.Abs(y2-y1)

	switch {
	case xd < 1 && yd < 1:
		var q quad
		q.splat(x1, y1)
		for c := 0; c < 4; c++ {
			s.Set(q.x[c], q.y[c], clampByte(q.w[c]*float64(bright)))
		}

	case xd > yd:
		n := int(math.RoundToEven(xd)) + 1
		for j := 0; j < n; j++ {
			x, y := lerp(x1, x2, j, n), lerp(y1, y2, j, n)
			fy := math.Floor(y)
			c := uint8((y - fy) * float64(bright))
			s.Set(int(math.Floor(x)), int(fy), bright-c)
			s.Set(int(math.Floor(x)), int(fy)+1, c)
		}

	default:
		n := int(math.RoundToEven(yd)) + 1
		for j := 0; j < n; j++ {
			x, y := lerp(x1, x2, j, n), lerp(y1, y2, j, n)
			fx := math.Floor(x)
			c := uint8((x - fx) * float64(bright))
			s.Set(int(fx), int(math.Floor(y)), bright-c)
			s.Set(int(fx)+1, int(math.Floor(y)), c)
		}
	}
}

// quad is the 2x2 neighbourhood of a sub-pixel point, corners ordered
// (floor x, floor y), (floor x, ceil y), (ceil x, floor y), (ceil x, ceil y).
type quad struct {
	x, y [4]int
	w    [4]float64
}

func (q *quad) splat(x, y float64) {
	fx, cx := math.Floor(x), math.Ceil(x)
	fy, cy := math.Floor(y), math.Ceil(y)
	bx, by := x-fx, y-fy // coverage of the ceil side
	ax, ay := 1-bx, 1-by // coverage of the floor side

	q.x = [4]int{int(fx), int(fx), int(cx), int(cx)}
	q.y = [4]int{int(fy), int(cy), int(fy), int(cy)}
	q.w = [4]float64{(ax + ay) / 2, (ax + by) / 2, (bx + ay) / 2, (bx + by) / 2}

	// Coincident corners share the larger weight so an integral coordinate
	// keeps full coverage instead of splitting it.
	if fx == cx {
		q.w[0], q.w[2] = max(q.w[0], q.w[2]), max(q.w[0], q.w[2])
		q.w[1], q.w[3] = max(q.w[1], q.w[3]), max(q.w[1], q.w[3])
	}
	if fy == cy {
		q.w[0], q.w[1] = max(q.w[0], q.w[1]), max(q.w[0], q.w[1])
		q.w[2], q.w[3] = max(q.w[2], q.w[3]), max(q.w[2], q.w[3])
	}
}

// lerp returns point j of n evenly spaced points from a to b, both included.
func lerp(a, b float64, j, n int) float64 {
	if j == n-1 {
		return b
	}
	return a + (b-a)*float64(j)/float64(n-1)
}

// levelByte clamps a [0, 1] level and scales it to a byte. NaN maps to 0.
func levelByte(level float64) uint8 {
	if !(level > 0) {
		return 0
	}
	if level >= 1 {
		return 255
	}
	return uint8(level * 255)
}

func clampByte(v float64) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// scratch holds per-surface buffers reused across draw calls.
type scratch struct {
	vals   []uint8
	order  []int
	px, py []int
}

func (sc *scratch) values(n int) []uint8 {
	if cap(sc.vals) < n {
		sc.vals = make([]uint8, n)
	}
	sc.vals = sc.vals[:n]
	return sc.vals
}

func (sc *scratch) coords(n int) ([]int, []int) {
	if cap(sc.px) < n {
		sc.px = make([]int, n)
		sc.py = make([]int, n)
	}
	sc.px, sc.py = sc.px[:n], sc.py[:n]
	return sc.px, sc.py
}

// ascending returns the indices of vals in ascending order of value.
// Equal values keep their input order.
func (sc *scratch) ascending(vals []uint8) []int {
	var start [257]int
	for _, v := range vals {
		start[int(v)+1]++
	}
	for i := 1; i < len(start); i++ {
		start[i] += start[i-1]
	}
	if cap(sc.order) < len(vals) {
		sc.order = make([]int, len(vals))
	}
	sc.order = sc.order[:len(vals)]
	for i, v := range vals {
		sc.order[start[v]] = i
		start[v]++
	}
	return sc.order
}
