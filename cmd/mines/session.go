package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper-cli/internal/config"
	"github.com/vancomm/minesweeper-cli/internal/mines"
)

const (
	difficultyPrompt = "Enter difficulty: Easy/Medium/Hard"
	turnPrompt       = "Type 'open [x] [y]' to open (x, y) cell, type 'mark [x] [y]' to mark (x, y) cell:"
	badDifficulty    = "Incorrect command."
	victoryMessage   = "Congratulations, you are win!"
	defeatMessage    = "BOOM! You are lose."
)

type session struct {
	game  *mines.Game
	log   *logrus.Logger
	out   io.Writer
	lines <-chan string
}

// readLines feeds lines from r until EOF or ctx is done. A blocked terminal
// read cannot be interrupted, so the goroutine is not joined.
func readLines(ctx context.Context, r io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	return lines
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return mines.NewRand()
	}
	return rand.New(rand.NewPCG(seed, seed))
}

func newSession(cfg *config.Config, log *logrus.Logger, out io.Writer, lines <-chan string) *session {
	return &session{
		game:  mines.New(mines.WithRand(newRand(cfg.Seed))),
		log:   log,
		out:   out,
		lines: lines,
	}
}

// next returns the next input line; ok is false once input is exhausted.
func (s *session) next(ctx context.Context) (line string, ok bool, err error) {
	select {
	case <-ctx.Done():
		return "", false, ctx.Err()
	case line, ok = <-s.lines:
		return line, ok, nil
	}
}

func (s *session) start(ctx context.Context, difficulty string) error {
	fmt.Fprintln(s.out, "Starting new game...")
	if difficulty == "" {
		fmt.Fprintln(s.out, difficultyPrompt)
		line, ok, err := s.next(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return io.ErrUnexpectedEOF
		}
		difficulty = line
	}

	params, err := parseDifficulty(difficulty)
	if err != nil {
		fmt.Fprintln(s.out, badDifficulty)
		return err
	}
	if err := s.game.NewGame(params); err != nil {
		fmt.Fprintln(s.out, badDifficulty)
		return err
	}
	s.log.WithField("params", params.Seed()).Info("game started")
	return nil
}

func (s *session) play(ctx context.Context) error {
	for !s.game.Status().Over() {
		fmt.Fprintln(s.out, turnPrompt)
		line, ok, err := s.next(ctx)
		if err != nil {
			return err
		}
		if !ok {
			s.log.Info("input closed")
			return nil
		}

		c, err := parseCommand(line)
		if errors.Is(err, ErrEmptyCommand) {
			continue
		}
		if err == nil {
			err = executeCommand(s.game, c)
		}
		if err != nil {
			s.log.WithError(err).WithField("command", line).Debug("rejected command")
			fmt.Fprintln(s.out, err)
			continue
		}

		s.log.WithFields(logrus.Fields{
			"move":   c.move.String(),
			"x":      c.pos.X,
			"y":      c.pos.Y,
			"status": s.game.Status().String(),
		}).Debug("move")
		s.printField()
	}

	s.printResult()
	return nil
}

func (s *session) printField() {
	for _, line := range s.game.Render() {
		fmt.Fprintln(s.out, line)
	}
}

func (s *session) printResult() {
	elapsed := s.game.Elapsed().Round(time.Second)
	switch s.game.Status() {
	case mines.Victory:
		fmt.Fprintln(s.out, victoryMessage)
	case mines.Defeat:
		fmt.Fprintln(s.out, defeatMessage)
	default:
		return
	}
	fmt.Fprintf(s.out, "Time: %s\n", elapsed)
	s.log.WithFields(logrus.Fields{
		"status":  s.game.Status().String(),
		"elapsed": elapsed.String(),
	}).Info("game over")
}

func run(ctx context.Context, cfg *config.Config, log *logrus.Logger, in io.Reader, out io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s := newSession(cfg, log, out, readLines(ctx, in))
	if err := s.start(ctx, strings.TrimSpace(cfg.Difficulty)); err != nil {
		return err
	}
	return s.play(ctx)
}
