package config

import (
	_ "embed"
)

//go:embed defaults/floodfill.yaml
var defaultFloodFillYAML []byte

//go:embed defaults/tictactoe.yaml
var defaultTicTacToeYAML []byte

// DefaultPalette returns the classic five-color palette.
func DefaultPalette() []PaletteColor {
	return []PaletteColor{
		{Name: "white", R: 255, G: 255, B: 255},
		{Name: "black", R: 0, G: 0, B: 0},
		{Name: "red", R: 255, G: 0, B: 0},
		{Name: "green", R: 0, G: 255, B: 0},
		{Name: "blue", R: 0, G: 0, B: 255},
	}
}

// DefaultFloodFillConfig returns the default flood fill configuration.
func DefaultFloodFillConfig() FloodFillConfig {
	return FloodFillConfig{
		Board: FloodFillBoard{
			Axis:    9,
			Palette: DefaultPalette(),
		},
		Render: RenderConfig{
			CellWidth:  4,
			CellHeight: 2,
		},
		NoticeTicks: 120,
	}
}

// DefaultTicTacToeConfig returns the default tic-tac-toe configuration.
func DefaultTicTacToeConfig() TicTacToeConfig {
	return TicTacToeConfig{
		CPU: CPUConfig{
			DelayTicks: 30,
			Strength:   CPUHeuristic,
		},
		Render: RenderConfig{
			CellWidth:  8,
			CellHeight: 4,
		},
	}
}
