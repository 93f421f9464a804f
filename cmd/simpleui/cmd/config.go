package cmd

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"simpleui/internal"
)

// config mirrors the optional YAML canvas configuration:
//
//	canvas:
//	  width: 800
//	  height: 600
//	  background: "#FFFFFF"
type config struct {
	Canvas struct {
		Width      float64 `yaml:"width"`
		Height     float64 `yaml:"height"`
		Background string  `yaml:"background"`
	} `yaml:"canvas"`
}

var hexColorPattern = regexp.MustCompile(`^#?[0-9A-Fa-f]{6}$`)

func defaultConfig() config {
	var cfg config
	cfg.Canvas.Width = internal.DefaultCanvasWidth
	cfg.Canvas.Height = internal.DefaultCanvasHeight
	return cfg
}

func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if bg := cfg.Canvas.Background; bg != "" && !hexColorPattern.MatchString(bg) {
		return cfg, fmt.Errorf("invalid background color %q", bg)
	}
	return cfg, nil
}

// background returns the configured background color, or the zero
// Color when none is set
func (c config) background() internal.Color {
	if c.Canvas.Background == "" {
		return internal.Color{}
	}
	return internal.NewColor(c.Canvas.Background)
}
