package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorBlack
)

// rgb holds the usual xterm rendering of each color.
var rgb = map[Color][3]uint8{
	ColorBlack:         {0, 0, 0},
	ColorRed:           {205, 0, 0},
	ColorGreen:         {0, 205, 0},
	ColorYellow:        {205, 205, 0},
	ColorBlue:          {0, 0, 238},
	ColorMagenta:       {205, 0, 205},
	ColorCyan:          {0, 205, 205},
	ColorWhite:         {229, 229, 229},
	ColorGray:          {138, 138, 138},
	ColorBrightRed:     {255, 0, 0},
	ColorBrightGreen:   {0, 255, 0},
	ColorBrightYellow:  {255, 255, 0},
	ColorBrightBlue:    {92, 92, 255},
	ColorBrightMagenta: {255, 0, 255},
	ColorBrightCyan:    {0, 255, 255},
	ColorBrightWhite:   {255, 255, 255},
	ColorOrange:        {255, 135, 0},
}

// RGB returns the approximate on-screen color. ColorDefault has none and
// reports ok=false.
func (c Color) RGB() (r, g, b uint8, ok bool) {
	v, ok := rgb[c]
	return v[0], v[1], v[2], ok
}

// NearestColor returns the terminal color closest to an RGB value.
// Ties go to the lower Color.
func NearestColor(r, g, b uint8) Color {
	best := ColorDefault
	bestDist := -1
	for c := ColorRed; c <= ColorBlack; c++ {
		v := rgb[c]
		dr := int(r) - int(v[0])
		dg := int(g) - int(v[1])
		db := int(b) - int(v[2])
		d := dr*dr + dg*dg + db*db
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}
