package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/star-lines/starlines/internal/config"
	"github.com/star-lines/starlines/internal/control"
	"github.com/star-lines/starlines/internal/game"
	"github.com/star-lines/starlines/internal/render"
)

const title = "Star Lines"

const (
	keyTurn   = 4.0  // yaw/roll units per frame while an arrow key is held
	keySpeed  = 8.0  // speed units per frame while +/- is held
	benchTime = 20 * time.Millisecond
	hudLines  = 4 // status log entries shown under the camera lines
)

// Game is the Ebitengine game struct. It owns rendering and input.
// All star field state lives in ctrl.
type Game struct {
	atlas     *render.TextAtlas
	presenter *render.Presenter
	ctrl      *game.Controller
	bench     *game.Bench
	feed      control.Source

	width, height int
	hud           bool
	last          time.Time
	mouseX        int
	mouseY        int
	mouseSeen     bool
}

func NewGame(s config.Settings, bench bool, feed control.Source) (*Game, error) {
	g := &Game{
		atlas:     render.NewTextAtlas(),
		presenter: render.NewPresenter(s.Width, s.Height),
		feed:      feed,
		width:     s.Width,
		height:    s.Height,
		hud:       s.HUD,
	}
	if bench {
		g.bench = game.NewBench(s.Width, s.Height, nil)
		return g, nil
	}
	ctrl, err := game.New(s, nil)
	if err != nil {
		return nil, err
	}
	g.ctrl = ctrl
	return g, nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		if g.ctrl != nil {
			g.ctrl.Quit()
		}
		return ebiten.Termination
	}

	if g.bench != nil {
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			g.bench.Next()
		}
		g.bench.Step(benchTime)
		return nil
	}

	now := time.Now()
	dt := time.Duration(0)
	if !g.last.IsZero() {
		dt = now.Sub(g.last)
	}
	g.last = now

	in := g.readInput()
	if g.feed != nil {
		in = control.Merge(in, g.feed.Poll())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud = !g.hud
	}
	if g.ctrl.Tick(dt, in) == game.Terminated {
		return ebiten.Termination
	}
	if g.hud {
		status := g.ctrl.Status(ebiten.ActualFPS(), hudLines)
		g.atlas.DrawLines(g.ctrl.Surface(), 4, 4, status, render.LevelMid)
	}
	return nil
}

// readInput turns this frame's keyboard and mouse state into control input.
func (g *Game) readInput() control.Input {
	var in control.Input

	mx, my := ebiten.CursorPosition()
	if g.mouseSeen {
		in.YawDeltaX = float64(mx - g.mouseX)
		in.YawDeltaY = float64(my - g.mouseY)
	}
	g.mouseX, g.mouseY, g.mouseSeen = mx, my, true

	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		in.YawDeltaX -= keyTurn
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		in.YawDeltaX += keyTurn
	}
	if ebiten.IsKeyPressed(ebiten.KeyUp) {
		in.YawDeltaY -= keyTurn
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) {
		in.YawDeltaY += keyTurn
	}

	if ebiten.IsKeyPressed(ebiten.KeyEqual) || ebiten.IsKeyPressed(ebiten.KeyKPAdd) {
		in.SpeedDelta += keySpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyMinus) || ebiten.IsKeyPressed(ebiten.KeyKPSubtract) {
		in.SpeedDelta -= keySpeed
	}
	in.Accelerate = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	in.Decelerate = ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	in.ToggleTrails = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	return in
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.bench != nil {
		g.presenter.Draw(screen, g.bench.Surface())
		return
	}
	g.presenter.Draw(screen, g.ctrl.Surface())
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func main() {
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	bench := fs.Bool("bench", false, "run the draw primitive bench instead of the star field (Space cycles)")
	verbose := fs.Bool("v", false, "log to stderr")
	settings, err := config.Parse(fs, os.Args[1:])
	if err != nil {
		log.Fatalf("settings: %v", err)
	}
	if *verbose {
		game.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var feed control.Source
	if settings.Listen != "" {
		f := control.NewFeed(game.Logger())
		go func() {
			if err := f.ListenAndServe(ctx, settings.Listen); err != nil {
				log.Printf("control feed: %v", err)
			}
		}()
		feed = f
	}

	g, err := NewGame(settings, *bench, feed)
	if err != nil {
		log.Fatalf("start: %v", err)
	}

	ebiten.SetWindowSize(settings.Width*settings.Scale, settings.Height*settings.Scale)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	start := time.Now()
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
	if g.ctrl != nil {
		fmt.Printf("average fps: %.1f\n", g.ctrl.AverageFPS(time.Since(start)))
	}
}
