package config

import "fmt"

// ParsePreset converts a CLI flag value to a preset. An empty string means
// no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return "", nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
}

// AxisForPreset returns the flood fill board size for a preset.
func AxisForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 6
	case DifficultyHard:
		return 12
	default:
		return 9
	}
}

// StrengthForPreset returns the CPU strength for a preset.
func StrengthForPreset(preset DifficultyPreset) CPUStrength {
	switch preset {
	case DifficultyEasy:
		return CPURandom
	case DifficultyHard:
		return CPUMinimax
	default:
		return CPUHeuristic
	}
}

// ApplyFloodFillPreset modifies the config based on a difficulty preset.
func ApplyFloodFillPreset(cfg *FloodFillConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Board.Axis = AxisForPreset(preset)
}

// ApplyTicTacToePreset modifies the config based on a difficulty preset.
func ApplyTicTacToePreset(cfg *TicTacToeConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.CPU.Strength = StrengthForPreset(preset)

	// An easier opponent also answers more slowly
	switch preset {
	case DifficultyEasy:
		cfg.CPU.DelayTicks = 45
	case DifficultyHard:
		cfg.CPU.DelayTicks = 15
	}
}
