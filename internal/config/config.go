// Package config holds the display and simulation settings of a run.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/star-lines/starlines/internal/render"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid settings")

// Trail styles.
const (
	TrailPixels = "pixels"
	TrailWu     = "wu"
)

// Settings is the JSON-serializable run configuration.
type Settings struct {
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	Scale      int     `json:"scale"`
	Stars      int     `json:"stars"`
	Method     string  `json:"method"`
	Lines      bool    `json:"lines"`
	TrailStyle string  `json:"trail_style"`
	Speed      float64 `json:"speed"`
	Seed       uint64  `json:"seed"` // 0 picks a random seed
	HUD        bool    `json:"hud"`
	Listen     string  `json:"listen"` // websocket control address, empty to disable
	Sound      bool    `json:"sound"`
}

// Default returns the settings used when no file is given.
func Default() Settings {
	return Settings{
		Width:      640,
		Height:     480,
		Scale:      1,
		Stars:      2048,
		Method:     "quads",
		Lines:      false,
		TrailStyle: TrailPixels,
		Speed:      240,
		HUD:        true,
	}
}

// Load parses settings from JSON bytes. Fields missing from data keep their defaults.
func Load(data []byte) (Settings, error) {
	s := Default()
	if err := json.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parse settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// LoadFile reads and parses a settings file.
func LoadFile(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("read settings: %w", err)
	}
	return Load(data)
}

// Validate reports the first problem with s.
func (s Settings) Validate() error {
	if s.Width < 16 || s.Height < 16 {
		return fmt.Errorf("%w: surface %dx%d is smaller than 16x16", ErrInvalid, s.Width, s.Height)
	}
	if s.Scale < 1 {
		return fmt.Errorf("%w: scale %d", ErrInvalid, s.Scale)
	}
	if s.Stars <= 0 {
		return fmt.Errorf("%w: star count %d", ErrInvalid, s.Stars)
	}
	if _, err := render.ParseMethod(s.Method); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if s.TrailStyle != TrailPixels && s.TrailStyle != TrailWu {
		return fmt.Errorf("%w: trail style %q", ErrInvalid, s.TrailStyle)
	}
	if s.Speed < 1 || s.Speed > 32768 {
		return fmt.Errorf("%w: speed %g outside [1, 32768]", ErrInvalid, s.Speed)
	}
	return nil
}

// DrawMethod returns the parsed draw method. Call Validate first.
func (s Settings) DrawMethod() render.Method {
	m, _ := render.ParseMethod(s.Method)
	return m
}
