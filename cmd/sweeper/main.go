package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-board/internal/config"
	"github.com/vancomm/minesweeper-board/internal/desktop"
	"github.com/vancomm/minesweeper-board/internal/logging"
	"github.com/vancomm/minesweeper-board/internal/mines"
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

func main() {
	flag.Parse()
	_ = godotenv.Load()

	window, err := config.LoadWindow(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, err := logging.New(logging.FromWindow(window, config.Development(), false))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	mines.Log = logging.Bridge(log)

	seed := window.Seed
	if s, ok, err := config.Seed(); err != nil {
		log.Fatal(err)
	} else if ok {
		seed = s
	}
	log.WithFields(logrus.Fields{
		"config": configPath,
		"seed":   seed,
		"scale":  window.Scale,
	}).Info("starting up")

	game := desktop.New(log, config.NewRand(seed), window.Layout())
	ebiten.SetWindowSize(game.WindowSize())
	ebiten.SetWindowTitle(window.Title)

	if err := ebiten.RunGame(game); err != nil {
		log.WithError(err).Error("game stopped")
		os.Exit(1)
	}
}
