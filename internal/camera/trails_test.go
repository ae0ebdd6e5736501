package camera

import (
	"math"
	"testing"
)

func frameOf(idx []int, xs, ys, bs []float64) *Frame {
	return &Frame{Index: idx, X: xs, Y: ys, B: bs}
}

func TestNewTrails(t *testing.T) {
	tr := NewTrails(16, 640, 480)
	if tr.MaxLen != 64 {
		t.Errorf("MaxLen = %d, want 64", tr.MaxLen)
	}
	for i := range tr.OldX {
		if !tr.Cleared(i) {
			t.Fatalf("slot %d not sentinel", i)
		}
	}
}

func TestExtend_SentinelDrawsPoints(t *testing.T) {
	tr := NewTrails(3, 640, 480)
	fr := frameOf([]int{0, 2}, []float64{100, 200}, []float64{50, 60}, []float64{0.5, 0.7})
	var out Trace
	tr.Extend(fr, make([]bool, 3), 0, &out)

	if out.Direct != 2 || len(out.X) != 2 || len(out.Segments) != 0 {
		t.Fatalf("trace = %+v, want two direct points", out)
	}
	if tr.OldX[0] != 100 || tr.OldY[2] != 60 {
		t.Errorf("positions not stored: old = %v %v", tr.OldX, tr.OldY)
	}
	if !tr.Cleared(1) {
		t.Errorf("invisible slot 1 was written")
	}
}

func TestExtend_DrawsTrail(t *testing.T) {
	tr := NewTrails(1, 640, 480)
	tr.OldX[0], tr.OldY[0] = 110, 100
	fr := frameOf([]int{0}, []float64{100}, []float64{100}, []float64{0.8})
	var out Trace
	tr.Extend(fr, []bool{false}, 0, &out)

	if out.Direct != 0 {
		t.Errorf("Direct = %d, want 0", out.Direct)
	}
	// |dx| = 10 -> 11 points from 100 to 110.
	if len(out.X) != 11 {
		t.Fatalf("trail pixels = %d, want 11", len(out.X))
	}
	for j := range out.X {
		if math.Abs(out.X[j]-float64(100+j)) > 1e-9 || out.Y[j] != 100 {
			t.Errorf("pixel %d = (%g, %g), want (%d, 100)", j, out.X[j], out.Y[j], 100+j)
		}
		if out.B[j] != 0.8 {
			t.Errorf("pixel %d brightness = %g, want 0.8", j, out.B[j])
		}
	}
	if len(out.Segments) != 1 {
		t.Fatalf("segments = %d, want 1", len(out.Segments))
	}
	s := out.Segments[0]
	if s.X1 != 100 || s.X2 != 110 || s.B != 0.8 {
		t.Errorf("segment = %+v", s)
	}
}

func TestExtend_ValidityFilter(t *testing.T) {
	tests := []struct {
		name   string
		ox, oy float64
		trail  bool
	}{
		{"small move", 101.5, 101.5, false},
		{"exactly two pixels", 102, 100, false},
		{"just over two pixels", 102.5, 100, true},
		{"old on left margin", 1, 100, false},
		{"old on right margin", 639, 100, false},
		{"old below screen", 100, 479.5, false},
		{"old inside", 98, 130, true},
		{"sentinel", math.Inf(1), math.Inf(1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTrails(1, 640, 480)
			tr.OldX[0], tr.OldY[0] = tt.ox, tt.oy
			var out Trace
			tr.Extend(frameOf([]int{0}, []float64{100}, []float64{100}, []float64{1}), []bool{false}, 0, &out)
			if got := len(out.Segments) == 1; got != tt.trail {
				t.Errorf("trail = %v, want %v (trace %+v)", got, tt.trail, out)
			}
			if !tt.trail && out.Direct != 1 {
				t.Errorf("Direct = %d, want 1", out.Direct)
			}
		})
	}
}

func TestExtend_LengthBound(t *testing.T) {
	tr := NewTrails(1, 640, 480)
	tr.OldX[0], tr.OldY[0] = 600, 400
	var out Trace
	tr.Extend(frameOf([]int{0}, []float64{5}, []float64{5}, []float64{1}), []bool{false}, 0, &out)

	if len(out.X) != tr.MaxLen {
		t.Fatalf("trail pixels = %d, want %d", len(out.X), tr.MaxLen)
	}
	// Anchored at the new position, stepping toward the old one.
	if out.X[0] != 5 || out.Y[0] != 5 {
		t.Errorf("first pixel = (%g, %g), want (5, 5)", out.X[0], out.Y[0])
	}
	step := (600.0 - 5.0) / 595.0
	if got := out.X[len(out.X)-1]; math.Abs(got-(5+63*step)) > 1e-9 {
		t.Errorf("last pixel x = %g, want %g", got, 5+63*step)
	}
}

func TestInterpolate_Bound(t *testing.T) {
	for _, d := range []struct{ dx, dy float64 }{
		{0, 0}, {0.5, 0.2}, {3, 1}, {1, 40}, {63, 0}, {64, 2}, {500, -300}, {-900, 10},
	} {
		xs, ys := Interpolate(10, 10, 10+d.dx, 10+d.dy, 64, nil, nil)
		n := max(int(math.Abs(d.dx))+1, int(math.Abs(d.dy))+1)
		want := min(64, n)
		if len(xs) != want || len(ys) != want {
			t.Errorf("delta %v: %d pixels, want %d", d, len(xs), want)
		}
		if len(xs) > 64 {
			t.Errorf("delta %v: %d pixels exceeds bound", d, len(xs))
		}
	}
}

func TestInterpolate_HugeCoordinates(t *testing.T) {
	tests := []struct {
		name   string
		x, y   float64
		ox, oy float64
	}{
		{"both axes past int range", 1e19, 1e19, 300, 200},
		{"one axis past int range", 1e19, 210, 300, 200},
		{"negative far side", -1e300, 5, 300, 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xs, ys := Interpolate(tt.x, tt.y, tt.ox, tt.oy, 64, nil, nil)
			if len(xs) != 64 || len(ys) != 64 {
				t.Errorf("pixels = %d, want the capped length 64", len(xs))
			}
		})
	}
	if xs, _ := Interpolate(math.Inf(1), 0, 300, 200, 64, nil, nil); len(xs) != 0 {
		t.Errorf("infinite span gave %d pixels, want none", len(xs))
	}
}

func TestExtend_HugeCoordinates(t *testing.T) {
	tr := NewTrails(1, 640, 480)
	tr.OldX[0], tr.OldY[0] = 300, 200
	var out Trace
	tr.Extend(frameOf([]int{0}, []float64{1e19}, []float64{1e19}, []float64{1}), []bool{false}, 0, &out)

	if out.Direct != 0 || len(out.X) != tr.MaxLen || len(out.Segments) != 1 {
		t.Fatalf("trace has %d direct, %d pixels, %d segments; want 0, %d, 1",
			out.Direct, len(out.X), len(out.Segments), tr.MaxLen)
	}
	if seg := out.Segments[0]; seg.X1 != 1e19 || seg.X2 != out.X[len(out.X)-1] {
		t.Errorf("segment = %+v, want it to end at the last trail pixel", seg)
	}

	// A span that yields no pixels must not produce a segment.
	tr.OldX[0], tr.OldY[0] = 300, 200
	tr.Extend(frameOf([]int{0}, []float64{math.Inf(1)}, []float64{0}, []float64{1}), []bool{false}, 0, &out)
	if len(out.X) != 0 || len(out.Segments) != 0 {
		t.Errorf("infinite position gave %d pixels, %d segments; want none", len(out.X), len(out.Segments))
	}
}

func TestInterpolate_EndpointExact(t *testing.T) {
	xs, ys := Interpolate(0, 0, 3.7, 1.2, 64, nil, nil)
	// max(int(3.7)+1, int(1.2)+1) = 4 points.
	if len(xs) != 4 {
		t.Fatalf("points = %d, want 4", len(xs))
	}
	if xs[3] != 3.7 || ys[3] != 1.2 {
		t.Errorf("last point = (%g, %g), want (3.7, 1.2)", xs[3], ys[3])
	}
}

func TestExtend_YawFlipWindow(t *testing.T) {
	tests := []struct {
		name string
		yaw  float64
		flip bool
	}{
		{"ahead", 0, false},
		{"quarter", math.Pi / 2, false},
		{"inside window", math.Pi, true},
		{"near upper bound", math.Pi*7/6 - 1e-9, true},
		{"upper bound", math.Pi * 7 / 6, false},
		{"past window", 4.5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTrails(1, 640, 480)
			tr.OldX[0], tr.OldY[0] = 300, 200
			var out Trace
			tr.Extend(frameOf([]int{0}, []float64{310}, []float64{220}, []float64{1}), []bool{true}, tt.yaw, &out)

			// Stored positions are never mirrored.
			if tr.OldX[0] != 310 || tr.OldY[0] != 220 {
				t.Errorf("stored = (%g, %g), want (310, 220)", tr.OldX[0], tr.OldY[0])
			}
			if tt.flip {
				// Mirrored old coordinates fall off screen, so the star is a
				// direct point at the mirrored position.
				if out.Direct != 1 || out.X[0] != -310 || out.Y[0] != -220 {
					t.Errorf("trace = %+v, want mirrored direct point", out)
				}
				return
			}
			if len(out.Segments) != 1 || out.X[0] != 310 {
				t.Errorf("trace = %+v, want unmirrored trail", out)
			}
		})
	}
}

func TestReset(t *testing.T) {
	tr := NewTrails(4, 640, 480)
	for i := range tr.OldX {
		tr.OldX[i], tr.OldY[i] = 10, 10
	}
	tr.Reset([]int{1, 3})
	if tr.Cleared(0) || !tr.Cleared(1) || tr.Cleared(2) || !tr.Cleared(3) {
		t.Errorf("Reset cleared wrong slots: %v", tr.OldX)
	}
	tr.ResetAll()
	for i := range tr.OldX {
		if !tr.Cleared(i) {
			t.Errorf("slot %d survived ResetAll", i)
		}
	}
}
