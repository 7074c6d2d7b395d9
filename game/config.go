package game

import (
	"fmt"
	"io/ioutil"
	"strings"
	"time"

	"github.com/faiface/pixel"
	"gopkg.in/yaml.v2"
)

// GameConfig carries everything Run needs: window geometry, animation pacing
// and the draw palette.
type GameConfig struct {
	// Square window size, in pixels
	Dimensions uint
	// Sieve steps drawn per second
	FrameRate uint
	// Initial grid side length, in cells
	StartDimension uint

	Palette Palette

	// Transparency of the highlight over a freshly marked cell
	HighlightBaseAlpha float64
	// Total time a highlight stays visible
	HighlightDuration time.Duration
}

func NewGameConfig() GameConfig {
	return GameConfig{
		Dimensions:         800,
		FrameRate:          12,
		StartDimension:     MinDimension,
		Palette:            DefaultPalette(),
		HighlightBaseAlpha: 0.5,
		HighlightDuration:  400 * time.Millisecond,
	}
}

// DisplayConfig is the optional YAML display configuration file. Zero values
// mean "keep the default"; command-line flags take precedence over file
// values.
type DisplayConfig struct {
	FrameRate  uint        `yaml:"frame_rate,omitempty"`
	Dimensions uint        `yaml:"dimensions,omitempty"`
	Colors     ColorConfig `yaml:"colors,omitempty"`
}

// ColorConfig holds palette overrides as hex strings ("#rrggbb").
type ColorConfig struct {
	Background string `yaml:"background,omitempty"`
	GridLine   string `yaml:"grid_line,omitempty"`
	Prime      string `yaml:"prime,omitempty"`
	Composite  string `yaml:"composite,omitempty"`
}

func ParseDisplayConfig(in []byte) (*DisplayConfig, error) {
	var config DisplayConfig
	if err := yaml.Unmarshal(in, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

func LoadDisplayConfig(path string) (*DisplayConfig, error) {
	in, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseDisplayConfig(in)
}

// Palette resolves the configured colors on top of the default palette.
func (config *DisplayConfig) Palette() (Palette, error) {
	palette := DefaultPalette()

	overrides := []struct {
		name string
		hex  string
		dst  *pixel.RGBA
	}{
		{"background", config.Colors.Background, &palette.Background},
		{"grid_line", config.Colors.GridLine, &palette.GridLine},
		{"prime", config.Colors.Prime, &palette.Prime},
		{"composite", config.Colors.Composite, &palette.Composite},
	}

	for _, override := range overrides {
		if override.hex == "" {
			continue
		}
		color, err := parseHexColor(override.hex)
		if err != nil {
			return palette, fmt.Errorf("color %s: %v", override.name, err)
		}
		*override.dst = color
	}
	return palette, nil
}

func parseHexColor(hex string) (pixel.RGBA, error) {
	trimmed := strings.TrimPrefix(hex, "#")
	if len(trimmed) != 6 {
		return pixel.RGBA{}, fmt.Errorf("invalid hex color %q", hex)
	}

	var r, g, b uint8
	if _, err := fmt.Sscanf(trimmed, "%02x%02x%02x", &r, &g, &b); err != nil {
		return pixel.RGBA{}, fmt.Errorf("invalid hex color %q", hex)
	}
	return pixel.RGB(float64(r)/255, float64(g)/255, float64(b)/255), nil
}
