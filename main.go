package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol3d/model"
	"github.com/sheikhrachel/go-gol3d/utils"
)

const configFile = "config.json"

func main() {
	log.SetPrefix("[go-gol3d] ")

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(configFile)
	if errors.Is(err, os.ErrNotExist) {
		log.Printf("using default configuration (%s not found)", configFile)
		config = utils.DefaultConfig()
		if err = utils.ApplyEnv(&config); err == nil {
			err = config.Validate()
		}
	}
	if err != nil {
		log.Fatalf("invalid configuration: %+v", err)
	}

	renderer := model.NewTerminalRenderer()
	game, err := newGame(config, renderer)
	if err != nil {
		log.Fatalf("failed to start: %+v", err)
	}
	game.clear = renderer.Clear
	displayGameInfo(game)

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = game.run(ctx); err != nil {
		log.Fatalf("run %s stopped: %+v", game.runID, err)
	}
	displayFinalStats(game)
}
