package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper-cli/internal/config"
	"github.com/vancomm/minesweeper-cli/internal/field"
	"github.com/vancomm/minesweeper-cli/internal/game"
	"github.com/vancomm/minesweeper-cli/internal/server"
)

var (
	log = logrus.New()

	configPath string
	serve      bool
)

func init() {
	const usage = "config file path"
	flag.StringVar(&configPath, "config", "", usage)
	flag.StringVar(&configPath, "c", "", usage+" (shorthand)")
	flag.BoolVar(&serve, "serve", false, "serve games over websocket instead of the terminal")
}

func runTerminal(ctx context.Context, c *config.Config) error {
	term := game.NewTerminal(os.Stdin, os.Stdout)

	mineCount := c.MineCount
	if mineCount == 0 {
		var err error
		if mineCount, err = term.AskMineCount(ctx); err != nil {
			return err
		}
	}

	grid, err := field.New(mineCount, game.NewRand(c.Seed))
	if err != nil {
		return err
	}
	session := game.NewSession(grid, log.WithField("mines", mineCount))
	return term.Play(ctx, session)
}

func runServer(ctx context.Context, c *config.Config) error {
	s, err := server.New(c, logrus.NewEntry(log))
	if err != nil {
		return err
	}
	return s.Run(ctx)
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	flag.Parse()

	c, err := config.Load(configPath)
	if err != nil {
		log.Fatal("unable to load config: ", err)
	}

	if err := setupLogging(c, serve); err != nil {
		log.Fatal("unable to set up logging: ", err)
	}

	log.Info("starting up, mode = ", c.Mode)
	log.WithFields(c.Fields()).Debug("config")

	if serve {
		err = runServer(mainCtx, c)
	} else {
		err = runTerminal(mainCtx, c)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal("exit reason: ", err)
	}
}
