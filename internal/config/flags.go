package config

import (
	"flag"
	"fmt"
)

// Bind registers one flag per setting on fs. Flag defaults are the current values of s.
func Bind(fs *flag.FlagSet, s *Settings) {
	fs.IntVar(&s.Width, "width", s.Width, "surface width in pixels")
	fs.IntVar(&s.Height, "height", s.Height, "surface height in pixels")
	fs.IntVar(&s.Scale, "scale", s.Scale, "window pixels per surface pixel")
	fs.IntVar(&s.Stars, "stars", s.Stars, "number of stars")
	fs.StringVar(&s.Method, "method", s.Method, "draw method: points (fast) or quads")
	fs.BoolVar(&s.Lines, "lines", s.Lines, "start with trails on")
	fs.StringVar(&s.TrailStyle, "trail", s.TrailStyle, "trail style: pixels or wu")
	fs.Float64Var(&s.Speed, "speed", s.Speed, "initial camera speed")
	fs.Uint64Var(&s.Seed, "seed", s.Seed, "random seed, 0 for a random one")
	fs.BoolVar(&s.HUD, "hud", s.HUD, "show the status overlay")
	fs.StringVar(&s.Listen, "listen", s.Listen, "websocket control address, e.g. :8080")
	fs.BoolVar(&s.Sound, "sound", s.Sound, "play tones on trail toggle and quit")
}

// Parse registers the settings flags plus -config on fs and parses args.
// A -config file replaces the defaults; flags given on the command line
// override values from the file.
func Parse(fs *flag.FlagSet, args []string) (Settings, error) {
	s := Default()
	path := fs.String("config", "", "JSON settings file")
	Bind(fs, &s)
	if err := fs.Parse(args); err != nil {
		return Settings{}, err
	}
	if *path == "" {
		if err := s.Validate(); err != nil {
			return Settings{}, err
		}
		return s, nil
	}

	file, err := LoadFile(*path)
	if err != nil {
		return Settings{}, err
	}
	over := flag.NewFlagSet(fs.Name(), flag.ContinueOnError)
	Bind(over, &file)
	var setErr error
	fs.Visit(func(f *flag.Flag) {
		if over.Lookup(f.Name) == nil || setErr != nil {
			return
		}
		if err := over.Set(f.Name, f.Value.String()); err != nil {
			setErr = fmt.Errorf("flag -%s: %w", f.Name, err)
		}
	})
	if setErr != nil {
		return Settings{}, setErr
	}
	if err := file.Validate(); err != nil {
		return Settings{}, err
	}
	return file, nil
}
