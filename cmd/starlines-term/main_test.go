package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/star-lines/starlines/internal/control"
)

func TestKeyInput(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want control.Input
		ok   bool
	}{
		{"escape quits", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), control.Input{Quit: true}, true},
		{"q quits", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), control.Input{Quit: true}, true},
		{"space toggles", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), control.Input{ToggleTrails: true}, true},
		{"left rolls", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), control.Input{YawDeltaX: -keyTurn}, true},
		{"down yaws", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), control.Input{YawDeltaY: keyTurn}, true},
		{"plus speeds up", tcell.NewEventKey(tcell.KeyRune, '+', tcell.ModNone), control.Input{SpeedDelta: keySpeed}, true},
		{"a accelerates", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), control.Input{Accelerate: true}, true},
		{"other rune ignored", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), control.Input{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := keyInput(tt.ev)
			if got != tt.want || ok != tt.ok {
				t.Errorf("keyInput = %+v, %v; want %+v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}
