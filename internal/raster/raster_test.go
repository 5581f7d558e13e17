package raster

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

type testBoard struct {
	axis  int
	fills map[[2]int]color.Color
	marks map[[2]int]Mark
}

func (b testBoard) Axis() int { return b.axis }

func (b testBoard) CellFill(row, col int) color.Color {
	if c, ok := b.fills[[2]int{row, col}]; ok {
		return c
	}
	return nil
}

func (b testBoard) CellMark(row, col int) Mark {
	return b.marks[[2]int{row, col}]
}

// near reports whether c is within tol of want on every channel.
func near(c, want color.Color, tol uint32) bool {
	r1, g1, b1, _ := c.RGBA()
	r2, g2, b2, _ := want.RGBA()
	diff := func(a, b uint32) uint32 {
		if a > b {
			return a - b
		}
		return b - a
	}
	tol *= 257
	return diff(r1, r2) <= tol && diff(g1, g2) <= tol && diff(b1, b2) <= tol
}

func TestImageSizeFollowsAxis(t *testing.T) {
	img, err := Image(testBoard{axis: 3}, Options{CellSize: 10})
	if err != nil {
		t.Fatalf("Image: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 30 || b.Dy() != 30 {
		t.Errorf("bounds = %v, want 30x30", b)
	}
}

func TestCellFills(t *testing.T) {
	red := color.NRGBA{R: 255, A: 255}
	blue := color.NRGBA{B: 255, A: 255}
	b := testBoard{
		axis: 2,
		fills: map[[2]int]color.Color{
			{0, 0}: red,
			{1, 1}: blue,
		},
	}

	img, err := Image(b, Options{CellSize: 20})
	if err != nil {
		t.Fatalf("Image: %v", err)
	}

	if c := img.At(10, 10); !near(c, red, 8) {
		t.Errorf("cell (0,0) center = %v, want red", c)
	}
	if c := img.At(30, 30); !near(c, blue, 8) {
		t.Errorf("cell (1,1) center = %v, want blue", c)
	}
	if c := img.At(30, 10); !near(c, color.White, 8) {
		t.Errorf("unfilled cell center = %v, want white background", c)
	}
}

func TestMarks(t *testing.T) {
	b := testBoard{
		axis: 3,
		marks: map[[2]int]Mark{
			{0, 0}: MarkX,
			{1, 1}: MarkO,
		},
	}

	img, err := Image(b, Options{CellSize: 60, Ink: color.Black})
	if err != nil {
		t.Fatalf("Image: %v", err)
	}

	// The two strokes of an X cross at the cell center.
	if c := img.At(30, 30); !near(c, color.Black, 64) {
		t.Errorf("X center = %v, want ink", c)
	}
	// An O leaves its center untouched.
	if c := img.At(90, 90); !near(c, color.White, 8) {
		t.Errorf("O center = %v, want background", c)
	}
	// Empty cells stay blank.
	if c := img.At(150, 30); !near(c, color.White, 8) {
		t.Errorf("empty cell = %v, want background", c)
	}
}

func TestInvalidGeometry(t *testing.T) {
	if _, err := Image(testBoard{axis: 0}, DefaultOptions()); err == nil {
		t.Error("expected error for empty board")
	}
	if _, err := Image(testBoard{axis: 3}, Options{}); err == nil {
		t.Error("expected error for zero cell size")
	}
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.png")
	b := testBoard{axis: 3, marks: map[[2]int]Mark{{2, 2}: MarkO}}

	if err := SavePNG(b, path, Options{CellSize: 16}); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 48 || b.Dy() != 48 {
		t.Errorf("bounds = %v, want 48x48", b)
	}
}

func TestMapperMatchesImage(t *testing.T) {
	b := testBoard{axis: 3}
	m := Mapper(b, Options{CellSize: 32})

	c, ok := m.CellAt(95, 33)
	if !ok || c.Row != 1 || c.Col != 2 {
		t.Errorf("CellAt(95, 33) = %v, %v; want row 1 col 2", c, ok)
	}
	if _, ok := m.CellAt(96, 0); ok {
		t.Error("point past the right edge should not map to a cell")
	}
}
