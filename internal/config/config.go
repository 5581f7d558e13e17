// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade platform.
package config

// FloodFillConfig contains all configuration for the flood fill puzzle.
type FloodFillConfig struct {
	Board       FloodFillBoard `yaml:"board"`
	Render      RenderConfig   `yaml:"render"`
	NoticeTicks int            `yaml:"notice_ticks"` // How long transient notices stay visible
}

// FloodFillBoard defines the board parameters for flood fill.
type FloodFillBoard struct {
	Axis    int            `yaml:"axis"`    // Cells per row and column
	Palette []PaletteColor `yaml:"palette"` // Colors cells are drawn from
}

// PaletteColor is a named RGB color.
type PaletteColor struct {
	Name string `yaml:"name"`
	R    uint8  `yaml:"r"`
	G    uint8  `yaml:"g"`
	B    uint8  `yaml:"b"`
}

// RenderConfig defines the terminal size of one board cell.
type RenderConfig struct {
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
}

// TicTacToeConfig contains all configuration for tic-tac-toe.
type TicTacToeConfig struct {
	CPU    CPUConfig    `yaml:"cpu"`
	Render RenderConfig `yaml:"render"`
}

// CPUConfig defines the computer opponent.
type CPUConfig struct {
	DelayTicks int         `yaml:"delay_ticks"` // Ticks to wait before the CPU answers
	Strength   CPUStrength `yaml:"strength"`
}

// CPUStrength selects how the computer opponent picks its moves.
type CPUStrength string

const (
	CPURandom    CPUStrength = "random"    // Any empty cell
	CPUHeuristic CPUStrength = "heuristic" // Win, block, center, random
	CPUMinimax   CPUStrength = "minimax"   // Perfect play
)

// Valid reports whether s names a known strength.
func (s CPUStrength) Valid() bool {
	switch s {
	case CPURandom, CPUHeuristic, CPUMinimax:
		return true
	}
	return false
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)
