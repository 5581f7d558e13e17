package floodfill

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/vovakirdan/grid-arcade/internal/config"
	"github.com/vovakirdan/grid-arcade/internal/core"
)

// RGB is the color of one board cell.
type RGB struct {
	R, G, B uint8
}

// String formats the color the way CSS does.
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// NRGBA converts the cell color for image output.
func (c RGB) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// Swatch is a selectable palette entry.
type Swatch struct {
	Name  string
	Color RGB
}

// PaletteFrom converts configured colors into swatches. Names are lowercased
// to match board files.
func PaletteFrom(colors []config.PaletteColor) []Swatch {
	out := make([]Swatch, len(colors))
	for i, c := range colors {
		out[i] = Swatch{Name: strings.ToLower(strings.TrimSpace(c.Name)), Color: RGB{R: c.R, G: c.G, B: c.B}}
	}
	return out
}

// TerminalColor returns the closest terminal color to c so arbitrary palette
// entries can be drawn in a 16-color terminal.
func TerminalColor(c RGB) core.Color {
	return core.NearestColor(c.R, c.G, c.B)
}
