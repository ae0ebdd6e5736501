package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/star-lines/starlines/internal/config"
	"github.com/star-lines/starlines/internal/control"
	"github.com/star-lines/starlines/internal/game"
	"github.com/star-lines/starlines/internal/render"
	"github.com/star-lines/starlines/internal/sound"
)

const (
	frameInterval = 33 * time.Millisecond
	keyTurn       = 8.0
	keySpeed      = 16.0
	hudLines      = 3
)

// keyInput maps a key event to control input. The second result is false
// for keys that do nothing.
func keyInput(ev *tcell.EventKey) (control.Input, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyEnter, tcell.KeyCtrlC:
		return control.Input{Quit: true}, true
	case tcell.KeyLeft:
		return control.Input{YawDeltaX: -keyTurn}, true
	case tcell.KeyRight:
		return control.Input{YawDeltaX: keyTurn}, true
	case tcell.KeyUp:
		return control.Input{YawDeltaY: -keyTurn}, true
	case tcell.KeyDown:
		return control.Input{YawDeltaY: keyTurn}, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return control.Input{ToggleTrails: true}, true
		case 'q', 'Q':
			return control.Input{Quit: true}, true
		case '+', '=':
			return control.Input{SpeedDelta: keySpeed}, true
		case '-', '_':
			return control.Input{SpeedDelta: -keySpeed}, true
		case 'a':
			return control.Input{Accelerate: true}, true
		case 'z':
			return control.Input{Decelerate: true}, true
		}
	}
	return control.Input{}, false
}

func main() {
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	verbose := fs.Bool("v", false, "log to stderr")
	settings, err := config.Parse(fs, os.Args[1:])
	if err != nil {
		log.Fatalf("settings: %v", err)
	}
	if *verbose {
		game.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init screen: %v", err)
	}
	screen.HideCursor()
	term := render.NewTerminal(screen)

	// the surface always fills the terminal
	settings.Width, settings.Height = term.SurfaceSize()
	ctrl, err := game.New(settings, nil)
	if err != nil {
		screen.Fini()
		log.Fatalf("start: %v", err)
	}

	chirper := sound.NewChirper()
	if settings.Sound {
		if err := chirper.Initialize(); err != nil {
			// Non-fatal, the field runs silently.
			game.Logger().Warn("sound disabled", "err", err)
		}
	}
	defer chirper.Close()

	var keys control.Buffer
	go func() {
		for {
			switch ev := screen.PollEvent().(type) {
			case nil:
				return
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				if in, ok := keyInput(ev); ok {
					keys.Push(in)
				}
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	start, last := time.Now(), time.Now()
	for now := range ticker.C {
		in := keys.Poll()
		wasOn := ctrl.TrailsOn()
		state := ctrl.Tick(now.Sub(last), in)
		last = now

		switch {
		case state == game.Terminated:
			chirper.Play(sound.CueQuit)
		case ctrl.TrailsOn() != wasOn && ctrl.TrailsOn():
			chirper.Play(sound.CueTrailsOn)
		case ctrl.TrailsOn() != wasOn:
			chirper.Play(sound.CueTrailsOff)
		}
		if state == game.Terminated {
			break
		}

		var overlay []string
		if settings.HUD {
			overlay = ctrl.Status(ctrl.AverageFPS(time.Since(start)), hudLines)
		}
		term.Draw(ctrl.Surface(), overlay)
	}
	screen.Fini()
	if settings.Sound {
		time.Sleep(150 * time.Millisecond) // let the quit cue finish
	}
	fmt.Printf("average fps: %.1f\n", ctrl.AverageFPS(time.Since(start)))
}
