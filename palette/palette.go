// Package palette maps opaque cell values to render colours.
package palette

import (
	"fmt"
	"image/color"

	"github.com/kamstrup/intmap"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	Background = color.RGBA{16, 16, 24, 255}
	Unknown    = color.RGBA{128, 128, 128, 255}
)

var defaultColors = []color.RGBA{
	{102, 204, 255, 255}, // sky blue
	{255, 203, 0, 255},   // gold
	{200, 122, 255, 255}, // violet
	{0, 228, 48, 255},    // lime
	{255, 109, 194, 255}, // pink
	{0, 121, 241, 255},   // blue
	{255, 161, 0, 255},   // orange
}

// ghostBlend is how far a ghost colour is pulled toward the background.
const ghostBlend = 0.7

// Palette assigns a colour to every block type a renderer may encounter.
type Palette struct {
	colors *intmap.Map[int, color.RGBA]
}

func New() *Palette {
	return &Palette{
		colors: intmap.New[int, color.RGBA](16),
	}
}

// Default returns a palette with colours for block types 1 through 7.
func Default() *Palette {
	p := New()
	for i, c := range defaultColors {
		p.Set(i+1, c)
	}
	return p
}

func (p *Palette) Set(id int, c color.RGBA) {
	p.colors.Put(id, c)
}

// SetHex assigns a colour given as "#rrggbb".
func (p *Palette) SetHex(id int, hex string) error {
	c, err := colorful.Hex(hex)
	if err != nil {
		return fmt.Errorf("palette: colour %q for block %d: %w", hex, id, err)
	}
	r, g, b := c.RGB255()
	p.Set(id, color.RGBA{r, g, b, 255})
	return nil
}

// Color returns the colour of a cell value. Empty cells get Background and
// values without an entry get Unknown.
func (p *Palette) Color(id int) color.RGBA {
	if id <= 0 {
		return Background
	}
	if c, ok := p.colors.Get(id); ok {
		return c
	}
	return Unknown
}

// Has reports whether id has its own entry.
func (p *Palette) Has(id int) bool {
	return p.colors.Has(id)
}

// Ghost returns a faded variant of Color(id) for drop previews.
func (p *Palette) Ghost(id int) color.RGBA {
	base, _ := colorful.MakeColor(p.Color(id))
	bg, _ := colorful.MakeColor(Background)

	r, g, b := base.BlendLab(bg, ghostBlend).Clamped().RGB255()
	return color.RGBA{r, g, b, 255}
}

func (p *Palette) Len() int {
	return p.colors.Len()
}
