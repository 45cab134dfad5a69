// Package config loads editor preferences from a TOML file.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the editor preferences.
type Config struct {
	Window Window `toml:"window"`
	Canvas Canvas `toml:"canvas"`
}

// Window is the application window geometry.
type Window struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// Canvas is the initial drawing canvas setup.
type Canvas struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Background string `toml:"background"`
}

// Default returns the built-in preferences.
func Default() Config {
	return Config{
		Window: Window{Width: 1280, Height: 800},
		Canvas: Canvas{Width: 800, Height: 600, Background: "#ffffff"},
	}
}

// Load reads preferences from path. A missing file yields the defaults
// with no error; a malformed file is an error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// BackgroundColor parses the canvas background hex string ("#rrggbb" or
// "#rrggbbaa").
func (c Canvas) BackgroundColor() (color.RGBA, error) {
	return ParseHexColor(c.Background)
}

// ParseHexColor parses "#rrggbb" or "#rrggbbaa".
func ParseHexColor(s string) (color.RGBA, error) {
	if len(s) == 0 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("config: invalid color %q", s)
	}
	hex := s[1:]
	var out color.RGBA
	out.A = 0xff
	switch len(hex) {
	case 8:
		a, err := hexByte(hex[6:8])
		if err != nil {
			return color.RGBA{}, fmt.Errorf("config: invalid color %q", s)
		}
		out.A = a
		fallthrough
	case 6:
		r, err1 := hexByte(hex[0:2])
		g, err2 := hexByte(hex[2:4])
		b, err3 := hexByte(hex[4:6])
		if err1 != nil || err2 != nil || err3 != nil {
			return color.RGBA{}, fmt.Errorf("config: invalid color %q", s)
		}
		out.R, out.G, out.B = r, g, b
	default:
		return color.RGBA{}, fmt.Errorf("config: invalid color %q", s)
	}
	return out, nil
}

func hexByte(s string) (byte, error) {
	var v byte
	for i := 0; i < 2; i++ {
		v <<= 4
		switch c := s[i]; {
		case c >= '0' && c <= '9':
			v |= c - '0'
		case c >= 'a' && c <= 'f':
			v |= c - 'a' + 10
		case c >= 'A' && c <= 'F':
			v |= c - 'A' + 10
		default:
			return 0, fmt.Errorf("bad hex digit %q", c)
		}
	}
	return v, nil
}
