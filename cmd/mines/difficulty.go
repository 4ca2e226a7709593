package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vancomm/minesweeper-cli/internal/mines"
)

var ErrBadDifficulty = errors.New("unknown difficulty")

var difficulties = map[string]mines.GameParams{
	"easy":   {Width: 5, Height: 5, MineCount: 5},
	"medium": {Width: 10, Height: 10, MineCount: 30},
	"hard":   {Width: 20, Height: 30, MineCount: 50},
}

// parseDifficulty accepts a preset name in any case or a W:H:M seed.
func parseDifficulty(s string) (mines.GameParams, error) {
	s = strings.TrimSpace(s)
	if p, ok := difficulties[strings.ToLower(s)]; ok {
		return p, nil
	}
	if strings.Contains(s, ":") {
		p, err := mines.ParseSeed(s)
		if err != nil {
			return mines.GameParams{}, fmt.Errorf("%w: %w", ErrBadDifficulty, err)
		}
		return *p, nil
	}
	return mines.GameParams{}, fmt.Errorf("%w %q", ErrBadDifficulty, s)
}
