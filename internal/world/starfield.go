package world

import (
	"math"
	"math/rand/v2"
)

// Field is a fixed pool of stars stored as parallel slices.
// Index i refers to the same star for the lifetime of the field; slices are
// never resized or reordered.
type Field struct {
	Bounds Bounds

	X       []float64
	Y       []float64
	Z       []float64
	Vel     []float64 // relative closing speed
	VelSqrt []float64 // sqrt(Vel), refreshed whenever a star respawns

	rng     *rand.Rand
	expired []int
}

// NewField allocates n stars inside b and spreads them over the whole depth range.
// A nil rng gets a randomly seeded PCG source.
func NewField(b Bounds, n int, rng *rand.Rand) (*Field, error) {
	if n <= 0 {
		return nil, ErrNoStars
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	f := &Field{
		Bounds:  b,
		X:       make([]float64, n),
		Y:       make([]float64, n),
		Z:       make([]float64, n),
		Vel:     make([]float64, n),
		VelSqrt: make([]float64, n),
		rng:     rng,
		expired: make([]int, 0, n),
	}
	for i := range f.Z {
		f.spawn(i)
		f.Z[i] = b.MinZ + f.rng.Float64()*b.Depth()
	}
	f.refreshVelSqrt()
	return f, nil
}

// Len returns the pool size.
func (f *Field) Len() int { return len(f.Z) }

// AdvanceDepth moves every star toward the camera.
func (f *Field) AdvanceDepth(speed, dt float64) {
	step := speed * dt
	z, vel := f.Z, f.Vel[:len(f.Z)]
	for i := range z {
		z[i] -= step * vel[i]
	}
}

// RespawnExpired resamples every star that has passed behind MinZ, placing it
// ahead of the camera in [0, MaxZ). It returns the indices it touched; the
// slice is reused by the next call.
func (f *Field) RespawnExpired() []int {
	f.expired = f.expired[:0]
	minZ := f.Bounds.MinZ
	for i, z := range f.Z {
		if z < minZ {
			f.expired = append(f.expired, i)
		}
	}
	if len(f.expired) == 0 {
		return f.expired
	}
	for _, i := range f.expired {
		f.spawn(i)
		f.Z[i] = f.rng.Float64() * f.Bounds.MaxZ
	}
	f.refreshVelSqrt()
	return f.expired
}

// RollRotate turns the field about the depth axis by amount/256 radians.
func (f *Field) RollRotate(amount float64) {
	inc := amount / 256.0
	x, y := f.X, f.Y[:len(f.X)]
	for i := range x {
		ang := math.Atan2(y[i], x[i]) + inc
		dist := math.Hypot(x[i], y[i])
		x[i] = dist * math.Cos(ang)
		y[i] = dist * math.Sin(ang)
	}
}

// spawn resamples velocity and lateral position of star i. Depth is left to the caller.
func (f *Field) spawn(i int) {
	b := f.Bounds
	f.Vel[i] = math.Pow(0.1+9.9*f.rng.Float64(), -1.5)
	f.X[i] = b.MinX() + f.rng.Float64()*b.Width
	f.Y[i] = b.MinY() + f.rng.Float64()*b.Height
}

func (f *Field) refreshVelSqrt() {
	for i, v := range f.Vel {
		f.VelSqrt[i] = math.Sqrt(v)
	}
}
