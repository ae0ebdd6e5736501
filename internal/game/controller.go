// Package game runs the per-frame star field update: advance, respawn,
// project, extend trails, draw, then integrate control input.
package game

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/mlange-42/ark/ecs"
	"github.com/star-lines/starlines/internal/camera"
	"github.com/star-lines/starlines/internal/config"
	"github.com/star-lines/starlines/internal/control"
	"github.com/star-lines/starlines/internal/render"
	"github.com/star-lines/starlines/internal/world"
)

// MaxFrameTime caps the time step of a single frame.
const MaxFrameTime = 40 * time.Millisecond

// Speed limits, in world units per second.
const (
	MinSpeed = 1.0
	MaxSpeed = 32768.0
)

const (
	rollUnit = 1.0 / 256 // radians per unit of YawDeltaX, applied by RollRotate
	yawUnit  = 0.01      // radians per unit of YawDeltaY
)

// State is the controller lifecycle state.
type State uint8

const (
	Running State = iota
	Terminated
)

func (s State) String() string {
	if s == Terminated {
		return "terminated"
	}
	return "running"
}

// Camera is the ECS component holding the viewpoint.
type Camera struct {
	Yaw   float64 // rotation about the x axis, in [0, 2π)
	Speed float64
}

// Steering is the ECS component holding the last applied control deltas.
type Steering struct {
	DX float64
	DY float64
}

// Controller owns the star field and everything derived from it.
type Controller struct {
	ECS *ecs.World
	Log *MessageLog

	cam      ecs.Entity
	cameras  *ecs.Map[Camera]
	steering *ecs.Map[Steering]

	field    *world.Field
	lens     camera.Lens
	trails   *camera.Trails
	frame    camera.Frame
	trace    camera.Trace
	crossing []bool
	prevZ    []float64

	surface  *render.Surface
	method   render.Method
	trailsOn bool
	wu       bool

	// on-screen subset handed to the draw primitive
	xs, ys, bs []float64

	state  State
	frames uint64
}

// New builds a controller from validated settings. A nil rng is seeded from
// s.Seed, or randomly when that is zero.
func New(s config.Settings, rng *rand.Rand) (*Controller, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if rng == nil && s.Seed != 0 {
		rng = rand.New(rand.NewPCG(s.Seed, s.Seed))
	}
	field, err := world.NewField(world.NewBounds(float64(s.Width), 4*float64(s.Height)), s.Stars, rng)
	if err != nil {
		return nil, fmt.Errorf("create star field: %w", err)
	}

	w := ecs.NewWorld(4)
	cam := ecs.NewMap2[Camera, Steering](w).NewEntity(
		&Camera{Speed: s.Speed},
		&Steering{},
	)

	c := &Controller{
		ECS:      w,
		Log:      NewMessageLog(8),
		cam:      cam,
		cameras:  ecs.NewMap[Camera](w),
		steering: ecs.NewMap[Steering](w),
		field:    field,
		lens:     camera.NewLens(s.Width, s.Height),
		trails:   camera.NewTrails(s.Stars, s.Width, s.Height),
		crossing: make([]bool, s.Stars),
		prevZ:    make([]float64, s.Stars),
		surface:  render.NewSurface(s.Width, s.Height),
		method:   s.DrawMethod(),
		trailsOn: s.Lines,
		wu:       s.TrailStyle == config.TrailWu,
	}
	c.Log.Add(0, fmt.Sprintf("%d stars, %s, trails %s", s.Stars, c.method, onOff(c.trailsOn)))
	Logger().Info("starfield ready",
		"stars", s.Stars, "width", s.Width, "height", s.Height,
		"method", c.method.String(), "trails", c.trailsOn, "trail_style", s.TrailStyle)
	return c, nil
}

// Tick runs one frame of dt and then applies in. Once Terminated, Tick does nothing.
func (c *Controller) Tick(dt time.Duration, in control.Input) State {
	if c.state == Terminated {
		return c.state
	}
	secs := min(max(dt, 0), MaxFrameTime).Seconds()
	cam := c.cameras.Get(c.cam)

	copy(c.prevZ, c.field.Z)
	c.field.AdvanceDepth(cam.Speed, secs)
	if respawned := c.field.RespawnExpired(); len(respawned) > 0 && c.trailsOn {
		c.trails.Reset(respawned)
	}
	c.lens.Project(c.field, cam.Yaw, &c.frame)
	c.draw(cam.Yaw)
	c.frames++

	c.steer(cam, secs, in)
	if in.ToggleTrails {
		c.SetTrails(!c.trailsOn)
	}
	if in.Quit {
		c.Quit()
	}
	return c.state
}

// Quit moves the controller to Terminated without running another frame.
func (c *Controller) Quit() {
	if c.state == Terminated {
		return
	}
	c.state = Terminated
	c.Log.Add(c.frames, "quit")
	Logger().Info("starfield terminated", "frames", c.frames)
}

func (c *Controller) draw(yaw float64) {
	c.surface.Clear()
	if !c.trailsOn {
		c.visible(c.frame.X, c.frame.Y, c.frame.B)
		c.method.Draw(c.surface, c.xs, c.ys, c.bs)
		return
	}

	camera.Crossings(c.prevZ, c.field.Z, c.crossing)
	c.trails.Extend(&c.frame, c.crossing, yaw, &c.trace)
	tr := &c.trace
	if !c.wu {
		c.visible(tr.X, tr.Y, tr.B)
		c.method.Draw(c.surface, c.xs, c.ys, c.bs)
		return
	}
	c.visible(tr.X[:tr.Direct], tr.Y[:tr.Direct], tr.B[:tr.Direct])
	c.method.Draw(c.surface, c.xs, c.ys, c.bs)
	for _, seg := range tr.Segments {
		render.DrawAntialiasedLine(c.surface, seg.X1, seg.Y1, seg.X2, seg.Y2, seg.B)
	}
}

// visible keeps the points at least one pixel inside the surface edge, with
// room for the 2x2 splat.
func (c *Controller) visible(xs, ys, bs []float64) {
	c.xs, c.ys, c.bs = c.xs[:0], c.ys[:0], c.bs[:0]
	w, h := float64(c.surface.Width)-2, float64(c.surface.Height)-2
	for i := range xs {
		x, y := xs[i], ys[i]
		if x > 1 && x < w && y > 1 && y < h {
			c.xs = append(c.xs, x)
			c.ys = append(c.ys, y)
			c.bs = append(c.bs, bs[i])
		}
	}
}

func (c *Controller) steer(cam *Camera, secs float64, in control.Input) {
	st := c.steering.Get(c.cam)
	st.DX, st.DY = in.YawDeltaX, in.YawDeltaY

	if in.Rotating() {
		c.trails.ResetAll()
		if in.YawDeltaX != 0 {
			c.field.RollRotate(-in.YawDeltaX)
		}
		cam.Yaw = wrapAngle(cam.Yaw - in.YawDeltaY*yawUnit)
		Logger().Debug("camera turned", "roll", in.YawDeltaX*rollUnit, "yaw", cam.Yaw)
	}

	speed := cam.Speed + in.SpeedDelta
	if in.Accelerate {
		speed *= 1 + secs
	}
	if in.Decelerate {
		speed /= 1 + secs
	}
	cam.Speed = min(max(speed, MinSpeed), MaxSpeed)
}

func wrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	if a >= 2*math.Pi {
		a = 0
	}
	return a
}

// SetTrails switches trail mode. Either way the trail buffer starts empty.
func (c *Controller) SetTrails(on bool) {
	c.trailsOn = on
	c.trails.ResetAll()
	c.Log.Add(c.frames, "trails "+onOff(on))
	Logger().Info("trails toggled", "on", on, "frame", c.frames)
}

// Speed returns the camera speed.
func (c *Controller) Speed() float64 { return c.cameras.Get(c.cam).Speed }

// Yaw returns the camera yaw in radians.
func (c *Controller) Yaw() float64 { return c.cameras.Get(c.cam).Yaw }

// Steering returns the deltas applied on the last frame.
func (c *Controller) Steering() Steering { return *c.steering.Get(c.cam) }

// TrailsOn reports whether trail mode is active.
func (c *Controller) TrailsOn() bool { return c.trailsOn }

// Method returns the draw primitive in use.
func (c *Controller) Method() render.Method { return c.method }

// Field exposes the star pool.
func (c *Controller) Field() *world.Field { return c.field }

// Surface returns the surface drawn by the last Tick.
func (c *Controller) Surface() *render.Surface { return c.surface }

// Drawn returns how many points were handed to the draw primitive on the last frame.
func (c *Controller) Drawn() int { return len(c.xs) }

// State returns the lifecycle state.
func (c *Controller) State() State { return c.state }

// Frames returns the number of frames drawn.
func (c *Controller) Frames() uint64 { return c.frames }

// AverageFPS returns frames drawn per second of elapsed wall time.
func (c *Controller) AverageFPS(elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	return float64(c.frames) / elapsed.Seconds()
}

// Status returns the HUD lines: camera state followed by the most recent log entries.
func (c *Controller) Status(fps float64, recent int) []string {
	cam := c.cameras.Get(c.cam)
	lines := []string{
		fmt.Sprintf("speed %7.1f  yaw %5.1f deg", cam.Speed, cam.Yaw*180/math.Pi),
		fmt.Sprintf("%s  trails %s  fps %5.1f", c.method, onOff(c.trailsOn), fps),
	}
	for _, m := range c.Log.Recent(recent) {
		lines = append(lines, m.String())
	}
	return lines
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
