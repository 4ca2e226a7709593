package main

import (
	"github.com/gorilla/schema"
	"github.com/vancomm/minesweeper-cli/internal/mines"
)

var positionDecoder = schema.NewDecoder()

func init() {
	positionDecoder.IgnoreUnknownKeys(true)
}

type position struct {
	X int `schema:"x,required"`
	Y int `schema:"y,required"`
}

func (p position) cell() mines.Cell {
	return mines.Cell{X: p.X, Y: p.Y}
}

func decodePosition(src map[string][]string) (position, error) {
	var pos position
	err := positionDecoder.Decode(&pos, src)
	return pos, err
}
