package game

import (
	"math/rand/v2"
	"time"

	"github.com/star-lines/starlines/internal/render"
)

// BenchMode is the primitive exercised by the bench.
type BenchMode uint8

const (
	BenchPoints BenchMode = iota
	BenchQuads
	BenchLines
	benchModes
)

func (m BenchMode) String() string {
	switch m {
	case BenchQuads:
		return "quads"
	case BenchLines:
		return "wu lines"
	default:
		return "points"
	}
}

const benchBatch = 256

// Bench draws random primitives onto a surface that is never cleared between
// frames, counting how many fit into each frame budget.
type Bench struct {
	Mode  BenchMode
	Count int // primitives drawn on the last Step

	surface    *render.Surface
	rng        *rand.Rand
	xs, ys, ls []float64
}

// NewBench returns a bench over a w×h surface.
func NewBench(w, h int, rng *rand.Rand) *Bench {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Bench{
		surface: render.NewSurface(w, h),
		rng:     rng,
		xs:      make([]float64, benchBatch),
		ys:      make([]float64, benchBatch),
		ls:      make([]float64, benchBatch),
	}
}

// Surface returns the bench surface.
func (b *Bench) Surface() *render.Surface { return b.surface }

// Next switches to the following mode and clears the surface.
func (b *Bench) Next() {
	b.Mode = (b.Mode + 1) % benchModes
	b.surface.Clear()
	Logger().Info("bench mode", "mode", b.Mode.String())
}

// Batch draws one batch in the current mode and returns how many primitives it drew.
func (b *Bench) Batch() int {
	w, h := float64(b.surface.Width), float64(b.surface.Height)
	switch b.Mode {
	case BenchPoints:
		for i := range b.xs {
			b.xs[i] = float64(b.rng.IntN(b.surface.Width))
			b.ys[i] = float64(b.rng.IntN(b.surface.Height))
			b.ls[i] = b.rng.Float64()
		}
		render.DrawPoints(b.surface, b.xs, b.ys, b.ls)
		return benchBatch
	case BenchQuads:
		for i := range b.xs {
			b.xs[i] = b.rng.Float64() * (w - 1)
			b.ys[i] = b.rng.Float64() * (h - 1)
			b.ls[i] = b.rng.Float64()
		}
		render.DrawAntialiasedPoints(b.surface, b.xs, b.ys, b.ls)
		return benchBatch
	default:
		x1, y1 := b.rng.Float64()*(w-1), b.rng.Float64()*(h-1)
		x2, y2 := b.rng.Float64()*(w-1), b.rng.Float64()*(h-1)
		render.DrawAntialiasedLine(b.surface, x1, y1, x2, y2, b.rng.Float64())
		return 1
	}
}

// Step draws batches until budget has elapsed. At least one batch is drawn.
func (b *Bench) Step(budget time.Duration) int {
	start := time.Now()
	b.Count = 0
	for {
		b.Count += b.Batch()
		if time.Since(start) >= budget {
			return b.Count
		}
	}
}
