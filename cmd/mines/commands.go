package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vancomm/minesweeper-cli/internal/mines"
)

type GameMove uint8

const (
	Open GameMove = iota + 1
	Mark
	LAST_MOVE
)

func (m GameMove) String() string {
	switch m {
	case Open:
		return "open"
	case Mark:
		return "mark"
	default:
		return fmt.Sprintf("GameMove(%d)", m)
	}
}

var (
	ErrBadMove      error
	ErrEmptyCommand = errors.New("empty command")
	ErrBadNargs     = errors.New("invalid number of arguments")
)

func init() {
	var allowedMoves []string
	for i := 1; i < int(LAST_MOVE); i++ {
		allowedMoves = append(allowedMoves, "'"+GameMove(i).String()+"'")
	}
	ErrBadMove = fmt.Errorf(
		"command must be one of %s", strings.Join(allowedMoves, ", "),
	)
}

// Maps known moves to number of arguments
var moveNargs = map[GameMove]int{
	Open: 2,
	Mark: 2,
}

func decodeGameMove(s string) (move GameMove, err error) {
	switch strings.ToLower(s) {
	case "open":
		move = Open
	case "mark", "flag":
		move = Mark
	default:
		err = ErrBadMove
	}
	return
}

type command struct {
	move GameMove
	pos  position
}

func parseCommand(line string) (c command, err error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return c, ErrEmptyCommand
	}
	if c.move, err = decodeGameMove(parts[0]); err != nil {
		return c, err
	}
	if moveNargs[c.move] != len(parts)-1 {
		return c, fmt.Errorf("%w: %s takes x and y", ErrBadNargs, c.move)
	}
	c.pos, err = decodePosition(map[string][]string{
		"x": {parts[1]},
		"y": {parts[2]},
	})
	if err != nil {
		return c, fmt.Errorf("coordinates must be integers: %w", err)
	}
	return c, nil
}

func executeCommand(g *mines.Game, c command) error {
	switch c.move {
	case Open:
		return g.OpenCell(c.pos.cell())
	case Mark:
		return g.MarkCell(c.pos.cell())
	}
	return ErrBadMove
}
