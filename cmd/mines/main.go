package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/vancomm/minesweeper-cli/internal/config"
	"golang.org/x/sync/errgroup"
)

var log = logrus.New()

func main() {
	os.Exit(start(os.Args))
}

func start(args []string) int {
	fs := config.NewFlagSet(args[0])
	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := config.Load(fs)
	if err != nil {
		fmt.Fprintln(os.Stderr, "unable to load config:", err)
		return 1
	}

	logs, err := setupLogging(log, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "unable to set up logging:", err)
		return 1
	}
	defer logs.Close()

	log.Info("starting up, mode = ", cfg.Mode)
	log.WithFields(cfg.Fields()).Debug("config")

	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	g, gCtx := errgroup.WithContext(mainCtx)
	g.Go(func() error {
		return run(gCtx, cfg, log, os.Stdin, os.Stdout)
	})

	err = g.Wait()
	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled):
		log.Info("interrupted")
		return 0
	default:
		log.WithError(err).Error("exit reason")
		return 1
	}
}
