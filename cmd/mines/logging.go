package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"github.com/vancomm/minesweeper-cli/internal/config"
	"github.com/vancomm/minesweeper-cli/internal/mines"
)

// setupLogging configures log and routes the engine logger into it. Stdout
// belongs to the game, so console logging is only enabled in development.
func setupLogging(log *logrus.Logger, cfg *config.Config) (io.Closer, error) {
	logLevel, err := cfg.LogLevel()
	if err != nil {
		return nil, err
	}
	log.SetLevel(logLevel)

	if cfg.Development() {
		log.SetOutput(os.Stderr)
		log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	} else {
		log.SetOutput(io.Discard)
	}

	if cfg.Log.File != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   cfg.Log.File,
			MaxSize:    cfg.Log.MaxSizeMB,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAge:     cfg.Log.MaxAgeDays,
			Level:      logLevel,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			return nil, err
		}
		log.AddHook(hook)
	}

	w := log.WriterLevel(logrus.DebugLevel)
	mines.Log = slog.New(tint.NewHandler(w, &tint.Options{
		Level:   slog.LevelDebug,
		NoColor: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		},
	}))

	return w, nil
}
