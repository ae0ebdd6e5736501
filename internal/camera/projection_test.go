package camera

import (
	"math"
	"testing"

	"github.com/star-lines/starlines/internal/world"
)

// fieldOf builds a field holding exactly the given stars.
func fieldOf(t *testing.T, xs, ys, zs, vel []float64) *world.Field {
	t.Helper()
	f, err := world.NewField(world.NewBounds(640, 1920), len(xs), nil)
	if err != nil {
		t.Fatalf("NewField: %v", err)
	}
	copy(f.X, xs)
	copy(f.Y, ys)
	copy(f.Z, zs)
	copy(f.Vel, vel)
	for i, v := range f.Vel {
		f.VelSqrt[i] = math.Sqrt(v)
	}
	return f
}

func TestNewLens(t *testing.T) {
	l := NewLens(640, 480)
	if l.CenterX != 320 || l.CenterY != 240 || l.Zoom != 480 || l.Falloff != 640 {
		t.Errorf("NewLens(640, 480) = %+v", l)
	}
}

func TestProject_CenterStar(t *testing.T) {
	f := fieldOf(t, []float64{0}, []float64{0}, []float64{100}, []float64{2.25})
	var fr Frame
	NewLens(640, 480).Project(f, 0, &fr)

	if fr.Len() != 1 {
		t.Fatalf("visible = %d, want 1", fr.Len())
	}
	if fr.X[0] != 320 || fr.Y[0] != 240 {
		t.Errorf("screen = (%g, %g), want (320, 240)", fr.X[0], fr.Y[0])
	}
	want := (2.0 - 100.0/640.0) * 1.5
	if math.Abs(fr.B[0]-want) > 1e-12 {
		t.Errorf("brightness = %g, want %g", fr.B[0], want)
	}
}

func TestProject_Perspective(t *testing.T) {
	f := fieldOf(t,
		[]float64{50, -50},
		[]float64{25, 0},
		[]float64{200, 400},
		[]float64{1, 1})
	var fr Frame
	NewLens(640, 480).Project(f, 0, &fr)

	if fr.Len() != 2 {
		t.Fatalf("visible = %d, want 2", fr.Len())
	}
	if got, want := fr.X[0], 320+50.0/200*480; got != want {
		t.Errorf("x0 = %g, want %g", got, want)
	}
	if got, want := fr.Y[0], 240+25.0/200*480; got != want {
		t.Errorf("y0 = %g, want %g", got, want)
	}
	if got, want := fr.X[1], 320-50.0/400*480; got != want {
		t.Errorf("x1 = %g, want %g", got, want)
	}
	if fr.B[0] <= fr.B[1] {
		t.Errorf("nearer star not brighter: %g <= %g", fr.B[0], fr.B[1])
	}
}

func TestProject_CullsBehindCamera(t *testing.T) {
	f := fieldOf(t,
		[]float64{0, 0, 0, 0},
		[]float64{0, 0, 0, 0},
		[]float64{10, 0, -10, 5},
		[]float64{1, 1, 1, 1})
	var fr Frame
	NewLens(640, 480).Project(f, 0, &fr)

	want := []int{0, 3}
	if len(fr.Index) != len(want) {
		t.Fatalf("Index = %v, want %v", fr.Index, want)
	}
	for k := range want {
		if fr.Index[k] != want[k] {
			t.Errorf("Index[%d] = %d, want %d", k, fr.Index[k], want[k])
		}
	}
}

func TestProject_Yaw(t *testing.T) {
	// A star straight ahead ends up behind the camera after a half turn.
	f := fieldOf(t, []float64{0}, []float64{0}, []float64{100}, []float64{1})
	var fr Frame
	l := NewLens(640, 480)

	l.Project(f, math.Pi, &fr)
	if fr.Len() != 0 {
		t.Errorf("star visible after half turn: %+v", fr)
	}

	// A quarter turn brings a star below the axis to the front.
	f = fieldOf(t, []float64{0}, []float64{-100}, []float64{0}, []float64{1})
	l.Project(f, math.Pi/2, &fr)
	if fr.Len() != 1 {
		t.Fatalf("visible = %d, want 1", fr.Len())
	}
	if math.Abs(fr.X[0]-320) > 1e-9 || math.Abs(fr.Y[0]-240) > 1e-9 {
		t.Errorf("screen = (%g, %g), want centre", fr.X[0], fr.Y[0])
	}
}

func TestProject_ReusesFrame(t *testing.T) {
	f := fieldOf(t, []float64{0, 1}, []float64{0, 1}, []float64{10, 20}, []float64{1, 1})
	var fr Frame
	l := NewLens(640, 480)
	l.Project(f, 0, &fr)
	l.Project(f, 0, &fr)
	if fr.Len() != 2 || len(fr.X) != 2 || len(fr.Y) != 2 || len(fr.B) != 2 {
		t.Errorf("frame not reset between projections: %+v", fr)
	}
}

func TestCrossings(t *testing.T) {
	prev := []float64{5, 5, -1, 0, 3}
	z := []float64{-1, 0, -2, -1, 1}
	out := make([]bool, len(prev))
	Crossings(prev, z, out)

	want := []bool{true, true, false, false, false}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("crossing[%d] = %v, want %v", i, out[i], want[i])
		}
	}
}
