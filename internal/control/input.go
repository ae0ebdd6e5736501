// Package control carries per-frame camera control input from frontends and
// remote feeds to the frame controller.
package control

import "sync"

// Input is one frame's worth of control. Zero deltas mean no change.
type Input struct {
	SpeedDelta float64 // added to camera speed
	YawDeltaX  float64 // roll, in 1/256 rad units
	YawDeltaY  float64 // yaw, in 1/100 rad units

	Accelerate bool // scale speed up by (1 + dt)
	Decelerate bool // scale speed down by (1 + dt)

	ToggleTrails bool
	Quit         bool
}

// Rotating reports whether the input turns the camera this frame.
func (in Input) Rotating() bool {
	return in.YawDeltaX != 0 || in.YawDeltaY != 0
}

// Merge combines two inputs: deltas add, flags or together.
func Merge(a, b Input) Input {
	return Input{
		SpeedDelta:   a.SpeedDelta + b.SpeedDelta,
		YawDeltaX:    a.YawDeltaX + b.YawDeltaX,
		YawDeltaY:    a.YawDeltaY + b.YawDeltaY,
		Accelerate:   a.Accelerate || b.Accelerate,
		Decelerate:   a.Decelerate || b.Decelerate,
		ToggleTrails: a.ToggleTrails || b.ToggleTrails,
		Quit:         a.Quit || b.Quit,
	}
}

// Source is anything that can be polled once per frame without blocking.
type Source interface {
	Poll() Input
}

// Buffer merges inputs pushed from any goroutine until the next Poll.
type Buffer struct {
	mu      sync.Mutex
	pending Input
}

// Push merges in into the pending input.
func (b *Buffer) Push(in Input) {
	b.mu.Lock()
	b.pending = Merge(b.pending, in)
	b.mu.Unlock()
}

// Poll returns everything pushed since the last poll. It never blocks on I/O.
func (b *Buffer) Poll() Input {
	b.mu.Lock()
	defer b.mu.Unlock()
	in := b.pending
	b.pending = Input{}
	return in
}
