package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFloodFill loads flood fill configuration.
// Search order: customPath -> ~/.arcade/configs/floodfill.yaml -> ./configs/floodfill.yaml -> embedded default
func LoadFloodFill(customPath string) (FloodFillConfig, error) {
	cfg := DefaultFloodFillConfig()
	if err := load("floodfill.yaml", customPath, defaultFloodFillYAML, &cfg); err != nil {
		return cfg, err
	}
	cfg.normalize()
	return cfg, nil
}

// LoadTicTacToe loads tic-tac-toe configuration.
// Search order: customPath -> ~/.arcade/configs/tictactoe.yaml -> ./configs/tictactoe.yaml -> embedded default
func LoadTicTacToe(customPath string) (TicTacToeConfig, error) {
	cfg := DefaultTicTacToeConfig()
	if err := load("tictactoe.yaml", customPath, defaultTicTacToeYAML, &cfg); err != nil {
		return cfg, err
	}
	cfg.normalize()
	return cfg, nil
}

// load decodes the first config found into out. Fields missing from the
// file keep the values already in out.
func load(filename, customPath string, embedded []byte, out any) error {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, out); err == nil {
				return nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if err := yaml.Unmarshal(data, out); err == nil {
			return nil
		}
	}

	// Use embedded default YAML; out already holds the hardcoded defaults
	//nolint:errcheck // Embedded file is part of the build
	yaml.Unmarshal(embedded, out)
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// normalize replaces unusable values with defaults.
func (c *FloodFillConfig) normalize() {
	def := DefaultFloodFillConfig()
	if c.Board.Axis <= 0 {
		c.Board.Axis = def.Board.Axis
	}
	if len(c.Board.Palette) < 2 {
		c.Board.Palette = def.Board.Palette
	}
	c.Render.normalize(def.Render)
	if c.NoticeTicks <= 0 {
		c.NoticeTicks = def.NoticeTicks
	}
}

func (c *TicTacToeConfig) normalize() {
	def := DefaultTicTacToeConfig()
	if c.CPU.DelayTicks < 0 {
		c.CPU.DelayTicks = 0
	}
	if !c.CPU.Strength.Valid() {
		c.CPU.Strength = def.CPU.Strength
	}
	c.Render.normalize(def.Render)
}

func (r *RenderConfig) normalize(def RenderConfig) {
	if r.CellWidth <= 0 {
		r.CellWidth = def.CellWidth
	}
	if r.CellHeight <= 0 {
		r.CellHeight = def.CellHeight
	}
}
