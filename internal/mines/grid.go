package mines

import (
	"strings"
)

type Cell struct {
	X, Y int
}

type fieldCell struct {
	open, mine, flag bool
	minesAround      int
}

/*
 * Rendered cell characters, checked in this order:
 *
 *  - '?' closed and flagged
 *  - '-' closed
 *  - '*' open mine
 *  - '.' open with no mined neighbours
 *  - '1' to '8' open with that many mined neighbours
 */
const (
	FlaggedChar = '?'
	ClosedChar  = '-'
	MineChar    = '*'
	EmptyChar   = '.'
)

func (c fieldCell) char() byte {
	switch {
	case !c.open && c.flag:
		return FlaggedChar
	case !c.open:
		return ClosedChar
	case c.mine:
		return MineChar
	case c.minesAround == 0:
		return EmptyChar
	default:
		return byte('0' + c.minesAround)
	}
}

var around = [8]Cell{
	{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
}

type grid struct {
	GameParams
	cells []fieldCell // row-major
}

func newGrid(width, height int) grid {
	return grid{
		GameParams: GameParams{Width: width, Height: height},
		cells:      make([]fieldCell, width*height),
	}
}

func (g grid) at(c Cell) *fieldCell {
	return &g.cells[c.Y*g.Width+c.X]
}

// neighbours yields the in-bounds cells around c.
func (g grid) neighbours(c Cell, yield func(Cell)) {
	for _, d := range around {
		n := Cell{c.X + d.X, c.Y + d.Y}
		if g.Contains(n) {
			yield(n)
		}
	}
}

func (g *grid) placeMines(mines []Cell) {
	for _, m := range mines {
		g.at(m).mine = true
		g.neighbours(m, func(n Cell) {
			g.at(n).minesAround++
		})
	}
	g.MineCount = len(mines)
}

func (g grid) render() []string {
	rows := make([]string, g.Height)
	var b strings.Builder
	for y := range g.Height {
		b.Reset()
		b.Grow(g.Width)
		for x := range g.Width {
			b.WriteByte(g.cells[y*g.Width+x].char())
		}
		rows[y] = b.String()
	}
	return rows
}
