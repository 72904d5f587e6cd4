// Package config loads the YAML configuration shared by the blockfield
// frontends and tools.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/plus3/blockfield/field"
	"github.com/plus3/blockfield/palette"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

var (
	ErrInvalidField   = errors.New("config: invalid field size")
	ErrInvalidTiming  = errors.New("config: invalid timing")
	ErrNoShapes       = errors.New("config: no shapes configured")
	ErrInvalidShape   = errors.New("config: invalid shape")
	ErrInvalidPalette = errors.New("config: invalid palette")
)

type Config struct {
	Field     FieldConfig     `yaml:"field"`
	Timing    TimingConfig    `yaml:"timing"`
	Shapes    []ShapeDef      `yaml:"shapes"`
	Palette   map[int]string  `yaml:"palette"`
	Lookahead LookaheadConfig `yaml:"lookahead"`
}

type FieldConfig struct {
	Rows    int `yaml:"rows"`
	Columns int `yaml:"columns"`
}

// TimingConfig durations are written as Go duration strings ("800ms").
type TimingConfig struct {
	Fall      time.Duration `yaml:"fall"`
	SoftDrop  time.Duration `yaml:"soft_drop"`
	LockDelay time.Duration `yaml:"lock_delay"`
}

// ShapeDef is one piece footprint. Cell values double as block types.
type ShapeDef struct {
	Name  string  `yaml:"name"`
	Cells [][]int `yaml:"cells"`
}

type LookaheadConfig struct {
	Workers int     `yaml:"workers"`
	Weights Weights `yaml:"weights"`
}

type Weights struct {
	Height    float64 `yaml:"height"`
	Holes     float64 `yaml:"holes"`
	Bumpiness float64 `yaml:"bumpiness"`
	Cleared   float64 `yaml:"cleared"`
}

// Default returns the built-in configuration: a 20x10 field and the seven
// classic four-cell pieces.
func Default() *Config {
	cfg, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("config: embedded default is invalid: %v", err))
	}
	return cfg
}

// Load reads and validates a configuration file. Keys missing from the file
// keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML on top of the built-in defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultYAML, cfg); err != nil {
		return nil, fmt.Errorf("config: default: %w", err)
	}

	// Sequences such as shapes replace the default list; the palette map merges.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Field.Rows <= 0 || c.Field.Columns <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidField, c.Field.Rows, c.Field.Columns)
	}

	if c.Timing.Fall <= 0 || c.Timing.SoftDrop <= 0 || c.Timing.LockDelay < 0 {
		return fmt.Errorf("%w: fall=%s soft_drop=%s lock_delay=%s",
			ErrInvalidTiming, c.Timing.Fall, c.Timing.SoftDrop, c.Timing.LockDelay)
	}

	if len(c.Shapes) == 0 {
		return ErrNoShapes
	}
	for i, def := range c.Shapes {
		if err := def.validate(c.Field.Columns); err != nil {
			return fmt.Errorf("%w: #%d %q: %v", ErrInvalidShape, i, def.Name, err)
		}
	}

	if _, err := c.BuildPalette(); err != nil {
		return err
	}

	if c.Lookahead.Workers < 0 {
		return fmt.Errorf("config: lookahead workers must not be negative, got %d", c.Lookahead.Workers)
	}
	return nil
}

func (d ShapeDef) validate(columns int) error {
	if len(d.Cells) == 0 {
		return errors.New("no rows")
	}

	width := len(d.Cells[0])
	occupied := 0
	for i, row := range d.Cells {
		if len(row) != width {
			return fmt.Errorf("row %d has %d cells, want %d", i, len(row), width)
		}
		for _, v := range row {
			if v < 0 {
				return fmt.Errorf("negative cell %d", v)
			}
			if v > 0 {
				occupied++
			}
		}
	}

	if occupied == 0 {
		return errors.New("no occupied cells")
	}
	if width > columns {
		return fmt.Errorf("%d columns wide, field has %d", width, columns)
	}
	return nil
}

// FieldShapes returns independent copies of the configured shapes.
func (c *Config) FieldShapes() []field.Shape {
	shapes := make([]field.Shape, len(c.Shapes))
	for i, def := range c.Shapes {
		shapes[i] = field.Shape(def.Cells).Clone()
	}
	return shapes
}

// BuildPalette returns the default palette with the configured overrides.
func (c *Config) BuildPalette() (*palette.Palette, error) {
	p := palette.Default()
	for id, hex := range c.Palette {
		// Id 0 is empty space and is always drawn as the background.
		if id <= 0 {
			return nil, fmt.Errorf("%w: palette id must be positive, got %d", ErrInvalidPalette, id)
		}
		if err := p.SetHex(id, hex); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidPalette, err)
		}
	}
	return p, nil
}
