package mines

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBounds   = errors.New("cell out of bounds")
	ErrDuplicateMine = errors.New("duplicate mine")
	ErrInvalidParams = errors.New("invalid game params")
)

type BoundsError struct {
	Cell
	Width, Height int
}

// [BoundsError] implements [error]
func (e *BoundsError) Error() string {
	return fmt.Sprintf(
		"cell (%d, %d) out of bounds for %dx%d board",
		e.X, e.Y, e.Width, e.Height,
	)
}

func (e *BoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}
