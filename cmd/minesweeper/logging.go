package main

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"github.com/vancomm/minesweeper-cli/internal/config"
	"github.com/vancomm/minesweeper-cli/internal/field"
	"github.com/vancomm/minesweeper-cli/internal/game"
)

func loggers() []*logrus.Logger {
	return []*logrus.Logger{log, field.Log, game.Log}
}

// setupLogging configures every package logger. In the terminal the board
// owns stdout, so logs go to the rotating file when one is configured and
// only warnings reach stderr otherwise.
func setupLogging(c *config.Config, serve bool) error {
	level, err := c.Level()
	if err != nil {
		return err
	}

	var hook logrus.Hook
	if c.LogFile != "" {
		hook, err = rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   c.LogFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Level:      level,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			return err
		}
	}

	for _, l := range loggers() {
		l.SetFormatter(&logrus.TextFormatter{ForceColors: c.Development()})
		l.SetLevel(level)
		if hook != nil {
			l.AddHook(hook)
		}
		if serve {
			continue
		}
		if hook != nil {
			l.SetOutput(io.Discard)
		} else if level > logrus.WarnLevel {
			l.SetLevel(logrus.WarnLevel)
		}
	}
	return nil
}
