package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/vancomm/minesweeper-board/internal/config"
	"github.com/vancomm/minesweeper-board/internal/logging"
	"github.com/vancomm/minesweeper-board/internal/mines"
	"github.com/vancomm/minesweeper-board/internal/terminal"
)

var configPath string

func init() {
	const (
		defaultConfigPath = "sweeper.yaml"
		usage             = "window config file path"
	)
	flag.StringVar(&configPath, "config", defaultConfigPath, usage)
	flag.StringVar(&configPath, "c", defaultConfigPath, usage+" (shorthand)")
}

func run() error {
	flag.Parse()
	_ = godotenv.Load()

	window, err := config.LoadWindow(configPath)
	if err != nil {
		return err
	}

	// tcell owns the terminal, so log to the file only
	log, err := logging.New(logging.FromWindow(window, config.Development(), true))
	if err != nil {
		return err
	}
	mines.Log = logging.Bridge(log)

	seed := window.Seed
	if s, ok, err := config.Seed(); err != nil {
		return err
	} else if ok {
		seed = s
	}

	screen, err := terminal.NewScreen()
	if err != nil {
		return fmt.Errorf("unable to open terminal: %w", err)
	}
	defer screen.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.WithField("seed", seed).Info("starting up")
	err = terminal.New(screen, log, config.NewRand(seed)).Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
