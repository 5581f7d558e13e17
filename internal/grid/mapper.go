package grid

// Mapper converts pointer positions to grid coordinates for a board drawn at
// a fixed origin with fixed-size cells. Units are whatever the renderer
// uses: terminal character cells or raster pixels.
type Mapper struct {
	OriginX, OriginY int
	CellW, CellH     int
	Axis             int
}

// CellAt floors the position into a cell. ok is false for points outside
// the board or for a mapper with empty cells.
func (m Mapper) CellAt(x, y int) (c Coord, ok bool) {
	if m.CellW <= 0 || m.CellH <= 0 {
		return Coord{}, false
	}
	lx, ly := x-m.OriginX, y-m.OriginY
	if lx < 0 || ly < 0 {
		return Coord{}, false
	}
	c = Coord{Row: ly / m.CellH, Col: lx / m.CellW}
	if c.Row >= m.Axis || c.Col >= m.Axis {
		return Coord{}, false
	}
	return c, true
}

// Origin returns the top-left position of a cell.
func (m Mapper) Origin(c Coord) (x, y int) {
	return m.OriginX + c.Col*m.CellW, m.OriginY + c.Row*m.CellH
}

// Width returns the board width in units.
func (m Mapper) Width() int {
	return m.Axis * m.CellW
}

// Height returns the board height in units.
func (m Mapper) Height() int {
	return m.Axis * m.CellH
}
