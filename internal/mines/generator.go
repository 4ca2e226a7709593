package mines

import (
	"fmt"
	"strings"
)

// Board size limits. Sides are bounded first so Width*Height cannot overflow.
const (
	MaxSide  = 1 << 12
	MaxCells = 1 << 20
)

type GameParams struct {
	Width, Height, MineCount int
}

func (p GameParams) Unpack() (w int, h int, mc int) {
	return p.Width, p.Height, p.MineCount
}

func (p GameParams) Seed() string {
	return fmt.Sprintf("%d:%d:%d", p.Width, p.Height, p.MineCount)
}

func ParseSeed(seed string) (*GameParams, error) {
	p := &GameParams{}
	sseed := strings.ReplaceAll(seed, ":", " ")
	n, err := fmt.Sscanf(sseed, "%d %d %d", &p.Width, &p.Height, &p.MineCount)
	if n != 3 || err != nil {
		return nil, fmt.Errorf(
			`invalid game params seed (seed = "%s", n = %d, err = %w)`,
			seed, n, err,
		)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p GameParams) Validate() error {
	switch {
	case p.Width < 0 || p.Height < 0:
		return fmt.Errorf("%w: negative size %dx%d", ErrInvalidParams, p.Width, p.Height)
	case p.MineCount < 0:
		return fmt.Errorf("%w: negative mine count %d", ErrInvalidParams, p.MineCount)
	case p.Width > MaxSide || p.Height > MaxSide:
		return fmt.Errorf(
			"%w: size %dx%d exceeds %d per side",
			ErrInvalidParams, p.Width, p.Height, MaxSide,
		)
	case p.Width*p.Height > MaxCells:
		return fmt.Errorf(
			"%w: size %dx%d exceeds %d cells",
			ErrInvalidParams, p.Width, p.Height, MaxCells,
		)
	case p.MineCount > p.Width*p.Height:
		return fmt.Errorf(
			"%w: %d mines do not fit on a %dx%d board",
			ErrInvalidParams, p.MineCount, p.Width, p.Height,
		)
	}
	return nil
}

func (p GameParams) Contains(c Cell) bool {
	return 0 <= c.X && c.X < p.Width && 0 <= c.Y && c.Y < p.Height
}

func (p GameParams) checkBounds(c Cell) error {
	if !p.Contains(c) {
		return &BoundsError{Cell: c, Width: p.Width, Height: p.Height}
	}
	return nil
}
