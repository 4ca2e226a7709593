package mines

import (
	"fmt"
	"hash/maphash"
	"math/rand/v2"
)

func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

// randomMines picks p.MineCount distinct cells: all cells are shuffled and the
// first MineCount of them are taken.
func randomMines(p GameParams, r *rand.Rand) []Cell {
	width, height, mineCount := p.Unpack()
	candidates := make([]Cell, 0, width*height)
	for i := range width * height {
		candidates = append(candidates, Cell{i % width, i / width})
	}
	r.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	return candidates[:mineCount]
}

func checkMines(p GameParams, mines []Cell) error {
	seen := make(map[Cell]struct{}, len(mines))
	for _, m := range mines {
		if err := p.checkBounds(m); err != nil {
			return fmt.Errorf("unable to place mine: %w", err)
		}
		if _, ok := seen[m]; ok {
			return fmt.Errorf("%w at (%d, %d)", ErrDuplicateMine, m.X, m.Y)
		}
		seen[m] = struct{}{}
	}
	return nil
}
