package mines

import (
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"
)

var Log *slog.Logger = slog.Default()

// Game is a single-player board. It is not safe for concurrent use.
type Game struct {
	board     grid
	status    GameStatus
	freeCells int // closed cells without a mine
	startedAt time.Time
	elapsed   time.Duration // frozen once the game is over

	now func() time.Time
	rnd *rand.Rand
}

type Option = func(*Game)

func WithRand(r *rand.Rand) Option {
	return func(g *Game) {
		g.rnd = r
	}
}

func WithClock(now func() time.Time) Option {
	return func(g *Game) {
		g.now = now
	}
}

// New returns a game on an empty 0x0 board. Call [Game.NewGame] or
// [Game.NewGameWithMines] to lay out a playable one.
func New(options ...Option) *Game {
	g := &Game{
		board: newGrid(0, 0),
		now:   time.Now,
	}
	for _, op := range options {
		op(g)
	}
	if g.rnd == nil {
		g.rnd = NewRand()
	}
	return g
}

// NewGame replaces the board with a p.Width x p.Height one holding
// p.MineCount mines at uniformly random cells. Solvability is not guaranteed.
func (g *Game) NewGame(p GameParams) error {
	if err := p.Validate(); err != nil {
		return err
	}
	g.reset(p.Width, p.Height, randomMines(p, g.rnd))
	return nil
}

// NewGameWithMines replaces the board with a width x height one holding a
// mine at each of the given cells. Cells must be in bounds and distinct.
func (g *Game) NewGameWithMines(width, height int, mines []Cell) error {
	p := GameParams{Width: width, Height: height, MineCount: len(mines)}
	if err := p.Validate(); err != nil {
		return err
	}
	if err := checkMines(p, mines); err != nil {
		return err
	}
	g.reset(width, height, mines)
	return nil
}

func (g *Game) reset(width, height int, mines []Cell) {
	board := newGrid(width, height)
	board.placeMines(mines)

	g.board = board
	g.status = NotStarted
	g.freeCells = width*height - len(mines)
	g.startedAt = time.Time{}
	g.elapsed = 0

	Log.Debug("new game", slog.String("params", board.Seed()))
}

func (g *Game) Params() GameParams {
	return g.board.GameParams
}

func (g *Game) Status() GameStatus {
	return g.status
}

// Elapsed is zero before the first move, grows while the game is in
// progress and stays fixed after it is over.
func (g *Game) Elapsed() time.Duration {
	switch g.status {
	case NotStarted:
		return 0
	case InProgress:
		return g.now().Sub(g.startedAt)
	default:
		return g.elapsed
	}
}

func (g *Game) start() {
	if g.status == NotStarted {
		g.status = InProgress
		g.startedAt = g.now()
	}
}

func (g *Game) finish(status GameStatus) {
	g.status = status
	g.elapsed = g.now().Sub(g.startedAt)
	Log.Debug("game over",
		slog.String("status", status.String()),
		slog.Duration("elapsed", g.elapsed),
	)
}

// OpenCell opens c. Opening a mine opens the whole board and loses the game.
// Opening a cell with no mined neighbours also opens every unflagged
// neighbour, spreading until numbered cells are reached. Opening an open or
// flagged cell, or any cell of a finished game, does nothing.
func (g *Game) OpenCell(c Cell) error {
	if err := g.board.checkBounds(c); err != nil {
		return err
	}
	if g.status.Over() {
		return nil
	}
	if cell := g.board.at(c); cell.open || cell.flag {
		return nil
	}

	g.start()

	if g.board.at(c).mine {
		for i := range g.board.cells {
			g.board.cells[i].open = true
		}
		g.finish(Defeat)
		return nil
	}

	g.reveal(c)

	if g.freeCells == 0 {
		g.finish(Victory)
	}
	return nil
}

func (g *Game) reveal(from Cell) {
	var todo queue[Cell]
	todo.push(from)
	for todo.len() > 0 {
		c, _ := todo.pop()
		cell := g.board.at(c)
		if cell.open {
			continue
		}
		cell.open = true
		g.freeCells--

		if cell.minesAround > 0 {
			continue
		}
		g.board.neighbours(c, func(n Cell) {
			if !g.board.at(n).flag {
				todo.push(n)
			}
		})
	}
}

// MarkCell toggles the flag on a closed cell. Marking an open cell or any
// cell of a finished game does nothing.
func (g *Game) MarkCell(c Cell) error {
	if err := g.board.checkBounds(c); err != nil {
		return err
	}
	if g.status.Over() {
		return nil
	}
	cell := g.board.at(c)
	if cell.open {
		return nil
	}
	cell.flag = !cell.flag
	g.start()
	return nil
}

// Render returns one string per row of the board as the player sees it.
// The returned slice is not retained by g.
func (g *Game) Render() []string {
	return g.board.render()
}

func (g *Game) String() string {
	return strings.Join(g.board.render(), "\n")
}
