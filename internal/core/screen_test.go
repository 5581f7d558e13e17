package core

import (
	"strings"
	"testing"
)

// rows returns the screen as one string per line.
func rows(s *Screen) []string {
	return strings.Split(s.String(), "\n")
}

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(6, 3)

	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 6x3", s.Width(), s.Height())
	}
	for y, row := range rows(s) {
		if row != "      " {
			t.Errorf("row %d = %q, expected blanks", y, row)
		}
	}
	if c := s.GetCell(0, 0); c != blankCell {
		t.Errorf("GetCell(0, 0) = %+v, expected blank", c)
	}
}

func TestScreenSetClipsOutOfBounds(t *testing.T) {
	s := NewScreen(4, 2)

	for _, p := range []Point{{-1, 0}, {4, 0}, {0, -1}, {0, 2}} {
		s.Set(p.X, p.Y, 'X') // Must not panic
	}
	s.Set(3, 1, 'X')

	if got := s.String(); got != "    \n   X" {
		t.Errorf("String() = %q", got)
	}
	if c := s.GetCell(9, 9); c != blankCell {
		t.Errorf("out of bounds GetCell = %+v, expected blank", c)
	}
}

func TestScreenColoredCells(t *testing.T) {
	s := NewScreen(8, 2)

	s.DrawTextColored(1, 0, "ab", ColorRed)
	s.DrawRectColored(NewRect(0, 1, 3, 1), '#', ColorBlack)
	s.Set(5, 0, 'z')

	tests := []struct {
		x, y int
		want Cell
	}{
		{1, 0, Cell{'a', ColorRed}},
		{2, 0, Cell{'b', ColorRed}},
		{5, 0, Cell{'z', ColorDefault}},
		{2, 1, Cell{'#', ColorBlack}},
		{3, 1, blankCell},
	}
	for _, tt := range tests {
		if got := s.GetCell(tt.x, tt.y); got != tt.want {
			t.Errorf("GetCell(%d, %d) = %+v, expected %+v", tt.x, tt.y, got, tt.want)
		}
	}

	s.Clear()
	if c := s.GetCell(1, 0); c != blankCell {
		t.Errorf("after Clear GetCell(1, 0) = %+v", c)
	}
}

func TestScreenDrawText(t *testing.T) {
	tests := []struct {
		name string
		draw func(s *Screen)
		want string
	}{
		{"plain", func(s *Screen) { s.DrawText(1, 0, "hi") }, " hi    "},
		{"clipped", func(s *Screen) { s.DrawText(5, 0, "hello") }, "     he"},
		{"multibyte", func(s *Screen) { s.DrawText(0, 0, "→x") }, "→x     "},
		{"centered", func(s *Screen) { s.DrawTextCentered(0, "abc") }, "  abc  "},
		{"centered multibyte", func(s *Screen) { s.DrawTextCentered(0, "█▓█") }, "  █▓█  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(7, 1)
			tt.draw(s)
			if got := s.Row(0); got != tt.want {
				t.Errorf("Row(0) = %q, expected %q", got, tt.want)
			}
		})
	}
}

func TestScreenDrawBoxAndLines(t *testing.T) {
	s := NewScreen(5, 4)
	s.DrawBox(NewRect(0, 0, 4, 3))
	s.DrawHLine(0, 3, 5, '=')
	s.DrawVLine(4, 0, 3, '|')

	want := []string{
		"┌──┐|",
		"│  │|",
		"└──┘|",
		"=====",
	}
	got := rows(s)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d = %q, expected %q", i, got[i], want[i])
		}
	}
}

func TestScreenLinesIgnoreNegativeLength(t *testing.T) {
	s := NewScreen(3, 3)
	s.DrawHLine(0, 0, -2, '-')
	s.DrawVLine(0, 0, -2, '|')
	if strings.TrimSpace(s.String()) != "" {
		t.Errorf("negative lengths drew %q", s.String())
	}
}

func TestScreenResizeKeepsOverlap(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "abcd")
	s.DrawTextColored(0, 1, "ef", ColorGreen)

	s.Resize(2, 3)
	want := []string{"ab", "ef", "  "}
	for i, row := range rows(s) {
		if row != want[i] {
			t.Errorf("row %d = %q, expected %q", i, row, want[i])
		}
	}
	if c := s.GetCell(1, 1); c.Color != ColorGreen {
		t.Errorf("resize dropped color, got %+v", c)
	}

	// Same size is a no-op
	s.Resize(2, 3)
	if s.Row(0) != "ab" {
		t.Errorf("Row(0) = %q after same-size resize", s.Row(0))
	}
}

func TestScreenRowOutOfRange(t *testing.T) {
	s := NewScreen(3, 1)
	if got := s.Row(5); got != "   " {
		t.Errorf("Row(5) = %q, expected blanks", got)
	}
}
