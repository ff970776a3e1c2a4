package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vancomm/minesweeper-board/internal/mines"
)

// Window configures the desktop and terminal frontends.
type Window struct {
	Title   string  `yaml:"title"`
	Scale   float64 `yaml:"scale"`
	OriginX float64 `yaml:"origin_x"`
	OriginY float64 `yaml:"origin_y"`
	Seed    uint64  `yaml:"seed"` // 0 picks a random seed

	LogFile  string `yaml:"log_file"`
	LogLevel string `yaml:"log_level"`
}

func DefaultWindow() Window {
	return Window{
		Title:    "Minesweeper",
		Scale:    1,
		OriginX:  16,
		OriginY:  16,
		LogFile:  "sweeper.log",
		LogLevel: "info",
	}
}

// LoadWindow reads a YAML window config. A missing file yields the
// defaults; fields left out of the file keep their defaults too.
func LoadWindow(path string) (Window, error) {
	cfg := DefaultWindow()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}
	if cfg.Scale <= 0 {
		return cfg, fmt.Errorf("scale must be positive, got %v", cfg.Scale)
	}
	return cfg, nil
}

func (w Window) Layout() mines.Layout {
	return mines.Layout{
		Origin: mines.Vec2{X: w.OriginX, Y: w.OriginY},
		Scale:  w.Scale,
	}
}
