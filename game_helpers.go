package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol3d/engine"
	"github.com/sheikhrachel/go-gol3d/model"
	"github.com/sheikhrachel/go-gol3d/utils"
)

// periodicRefresh restarts long-lived runs so the display keeps changing
const periodicRefresh = 200

// game drives one simulation: one Step per tick, one Render per generation
type game struct {
	config  utils.Config
	seed    engine.Seed
	rng     engine.RandomSource
	sim     *engine.Simulation
	pool    *model.LatticePool
	sink    model.Sink
	clear   func() error
	stats   *utils.Stats
	history *model.History

	runID           string
	ticks           int
	stagnantCount   int
	lastRestartTick int
}

// newGame sets up the initial game state
func newGame(config utils.Config, sink model.Sink) (*game, error) {
	seed, err := config.InitialSeed()
	if err != nil {
		return nil, err
	}

	rngSeed := config.Seed
	if rngSeed == 0 {
		if rngSeed, err = utils.NewSeed(); err != nil {
			return nil, err
		}
	}

	var pool *model.LatticePool
	if config.UseMemoryPool {
		if pool, err = model.NewLatticePool(config.Dimensions()); err != nil {
			return nil, err
		}
	}

	g := &game{
		config:  config,
		seed:    seed,
		rng:     engine.NewRandomSource(rngSeed),
		pool:    pool,
		sink:    sink,
		stats:   utils.NewStats(),
		history: model.NewHistory(model.DefaultHistorySize),
		runID:   uuid.NewString(),
	}

	initial, err := g.seed.Generate(config.Dimensions(), g.rng)
	if err != nil {
		return nil, errors.Wrap(err, "[newGame] failed to seed generation 0")
	}
	g.sim, err = engine.NewSimulation(initial, engine.Options{
		Strategy: config.Strategy(),
		Workers:  config.Workers,
		Pool:     pool,
	})
	if err != nil {
		return nil, err
	}
	return g, nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(g *game) {
	fmt.Printf("Run %s | Strategy: %v | Memory Pool: %v\n",
		g.runID, g.config.Strategy(), g.config.UseMemoryPool)
	fmt.Printf("Lattice: %v | Initial living cells: %d\n",
		g.sim.Dimensions(), g.sim.Current().CountLiving())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
}

// displayFinalStats summarises the run on shutdown
func displayFinalStats(g *game) {
	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		g.ticks, time.Since(g.stats.StartTime).Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population (σ %.1f)\n",
		g.stats.GenerationsPerSecond, g.stats.PopulationMean, g.stats.PopulationStdDev)
}

// gameStatus is the per-tick view of the current generation
type gameStatus struct {
	livingCells int
	density     float64
	status      string
	stagnant    bool
}

// updateGameState updates stats and history and returns status information
func (g *game) updateGameState(frameDuration time.Duration) gameStatus {
	current := g.sim.Current()
	livingCells := current.CountLiving()
	density := float64(livingCells) / float64(current.Len()) * 100

	g.stats.Update(g.ticks, livingCells, frameDuration)
	g.stats.BoundingBoxVolume = current.BoundingBoxVolume()

	// Compare against earlier generations before recording this one
	stagnant := g.history.IsStagnant(current)
	g.history.Update(current)

	status := "Active"
	if stagnant {
		status = "Stagnant"
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	return gameStatus{livingCells: livingCells, density: density, status: status, stagnant: stagnant}
}

// displayGameStatus shows the current game status
func (g *game) displayGameStatus(st gameStatus) {
	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s | Bounding box: %d cells\n",
		g.sim.Generation(), st.livingCells, st.density, st.status, g.stats.BoundingBoxVolume)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation, time.Since(g.stats.StartTime).Seconds())

	// Show ticks since last restart
	if g.ticks > g.lastRestartTick {
		fmt.Printf("Generations since restart: %d\n", g.ticks-g.lastRestartTick)
	}
	fmt.Println()
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(livingCells, stagnantCount, generation int, config utils.Config) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	if generation > 0 && generation%periodicRefresh == 0 {
		return true, "periodic refresh"
	}
	return false, ""
}

// restartGame reseeds the simulation under a new run ID
func (g *game) restartGame(reason string) error {
	initial, err := g.seed.Generate(g.sim.Dimensions(), g.rng)
	if err != nil {
		return errors.Wrap(err, "[restartGame] failed to reseed")
	}
	if err = g.sim.Restart(initial); err != nil {
		return err
	}

	prev := g.runID
	g.runID = uuid.NewString()
	g.history.Reset()
	g.stagnantCount = 0
	g.lastRestartTick = g.ticks
	log.Printf("run %s restarted as %s due to %s, living cells: %d",
		prev, g.runID, reason, initial.CountLiving())
	return nil
}

// tick publishes the current generation then advances the simulation once
func (g *game) tick(frameDuration time.Duration) error {
	if g.clear != nil {
		if err := g.clear(); err != nil {
			log.Printf("failed to clear terminal: %v", err)
		}
	}

	st := g.updateGameState(frameDuration)
	if st.stagnant {
		g.stagnantCount++
	} else {
		g.stagnantCount = 0
	}

	g.displayGameStatus(st)
	g.sim.Publish(g.sink)

	restart, reason := checkRestartConditions(st.livingCells, g.stagnantCount, g.sim.Generation(), g.config)
	switch {
	case restart && g.config.AutoRestart:
		if err := g.restartGame(reason); err != nil {
			return err
		}
	case g.stagnantCount >= 2 && g.stagnantCount < g.config.StagnationThreshold:
		// Inject some life to try to break the stagnation
		engine.InjectRandomLife(g.sim.Current(), g.config.InjectionCount, g.rng)
	}

	if err := g.sim.Step(); err != nil {
		return err
	}
	g.ticks++
	return nil
}

// run ticks at the configured frame rate until ctx is done or the
// generation limit is reached
func (g *game) run(ctx context.Context) error {
	ticker := time.NewTicker(g.config.FrameRate)
	defer ticker.Stop()

	lastFrame := time.Now()
	for {
		if g.config.MaxGenerations > 0 && g.ticks >= g.config.MaxGenerations {
			log.Printf("run %s reached maximum generations limit (%d)", g.runID, g.config.MaxGenerations)
			return nil
		}

		frameStart := time.Now()
		if err := g.tick(frameStart.Sub(lastFrame)); err != nil {
			return err
		}
		lastFrame = frameStart

		select {
		case <-ctx.Done():
			log.Printf("shutting down run %s", g.runID)
			return nil
		case <-ticker.C:
		}
	}
}
