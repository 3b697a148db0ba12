package config

import (
	"fmt"

	"github.com/younwookim/tilegrid/internal/domain/entity"
)

// Settings is the root config for settings.yaml
type Settings struct {
	Display  DisplayConfig  `yaml:"display"`
	Palette  PaletteConfig  `yaml:"palette"`
	Movement MovementConfig `yaml:"movement"`
}

// DisplayConfig configures the output window.
// Width and Height are only the initial window size; the grid is rescaled
// to whatever size the window has on each frame.
type DisplayConfig struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TPS       int    `yaml:"tps"` // Ticks per second
	Resizable bool   `yaml:"resizable"`
}

// PaletteConfig holds colors as #RRGGBB strings
type PaletteConfig struct {
	Floor      string `yaml:"floor"`
	Wall       string `yaml:"wall"`
	Player     string `yaml:"player"`
	Background string `yaml:"background"`
}

// MovementConfig selects which moves are rejected
type MovementConfig struct {
	ConfineToGrid bool `yaml:"confineToGrid"` // Keep the player inside the grid
	BlockWalls    bool `yaml:"blockWalls"`    // Walls cannot be entered
}

// Defaults returns the built-in settings
func Defaults() Settings {
	return Settings{
		Display: DisplayConfig{
			Title:     "tilegrid",
			Width:     800,
			Height:    600,
			TPS:       60,
			Resizable: true,
		},
		Palette: PaletteConfig{
			Floor:      entity.ColorRed.String(),
			Wall:       entity.ColorBlue.String(),
			Player:     entity.ColorGreen.String(),
			Background: entity.ColorBlack.String(),
		},
		Movement: MovementConfig{
			ConfineToGrid: true,
			BlockWalls:    true,
		},
	}
}

// Validate checks value ranges and colors
func (s Settings) Validate() error {
	if s.Display.Width <= 0 || s.Display.Height <= 0 {
		return fmt.Errorf("display size must be positive, got %dx%d", s.Display.Width, s.Display.Height)
	}
	if s.Display.TPS <= 0 {
		return fmt.Errorf("display tps must be positive, got %d", s.Display.TPS)
	}
	if _, err := s.Palette.ToPalette(); err != nil {
		return err
	}
	return nil
}

// ToPalette parses the configured colors
func (p PaletteConfig) ToPalette() (entity.Palette, error) {
	var (
		out entity.Palette
		err error
	)

	fields := []struct {
		name string
		src  string
		dst  *entity.Color
	}{
		{"floor", p.Floor, &out.Floor},
		{"wall", p.Wall, &out.Wall},
		{"player", p.Player, &out.Player},
		{"background", p.Background, &out.Background},
	}

	for _, f := range fields {
		if *f.dst, err = entity.ParseColor(f.src); err != nil {
			return entity.Palette{}, fmt.Errorf("palette %s: %w", f.name, err)
		}
	}

	return out, nil
}
