// Package boards loads fixed flood fill starting boards from YAML files.
package boards

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNotSquare is returned when a board's rows do not form a square.
var ErrNotSquare = errors.New("boards: board is not square")

// Board is a fixed starting board. Cells hold palette color names.
type Board struct {
	ID       string     `yaml:"id"`
	Name     string     `yaml:"name"`
	Rows     [][]string `yaml:"rows"`
	FilePath string     `yaml:"-"`
}

// Axis returns the number of cells per row and column.
func (b Board) Axis() int {
	return len(b.Rows)
}

// Cells returns the color names in row-major order.
func (b Board) Cells() []string {
	out := make([]string, 0, len(b.Rows)*len(b.Rows))
	for _, row := range b.Rows {
		out = append(out, row...)
	}
	return out
}

// Parse decodes and validates a YAML board.
func Parse(data []byte) (Board, error) {
	var b Board
	if err := yaml.Unmarshal(data, &b); err != nil {
		return Board{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	if b.ID == "" {
		return Board{}, errors.New("boards: missing id")
	}
	if b.Name == "" {
		b.Name = b.ID
	}
	if len(b.Rows) == 0 {
		return Board{}, fmt.Errorf("boards: %s has no rows", b.ID)
	}
	for i, row := range b.Rows {
		if len(row) != len(b.Rows) {
			return Board{}, fmt.Errorf("%w: %s row %d has %d cells, want %d", ErrNotSquare, b.ID, i, len(row), len(b.Rows))
		}
		for j, name := range row {
			b.Rows[i][j] = strings.ToLower(strings.TrimSpace(name))
		}
	}

	return b, nil
}

// Loader reads boards from a directory tree.
type Loader struct {
	Root string
}

// NewLoader creates a loader for the given root directory.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll loads every board under Root, sorted by ID.
func (l *Loader) LoadAll() ([]Board, error) {
	var out []Board

	err := filepath.WalkDir(l.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isBoardFile(path) {
			return nil
		}

		b, err := LoadFile(path)
		if err != nil {
			return err
		}
		out = append(out, b)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk boards directory: %w", err)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})

	return out, nil
}

// LoadByID loads the board with the given ID.
func (l *Loader) LoadByID(id string) (Board, error) {
	all, err := l.LoadAll()
	if err != nil {
		return Board{}, err
	}

	for _, b := range all {
		if b.ID == id {
			return b, nil
		}
	}

	return Board{}, fmt.Errorf("board not found: %s", id)
}

// LoadFile loads a single board file.
func LoadFile(path string) (Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Board{}, fmt.Errorf("read board %s: %w", path, err)
	}

	b, err := Parse(data)
	if err != nil {
		return Board{}, fmt.Errorf("parse board %s: %w", path, err)
	}
	b.FilePath = path
	return b, nil
}

func isBoardFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
