package utils

import (
	"encoding/json"
	"math"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol3d/engine"
	"github.com/sheikhrachel/go-gol3d/model"
)

// EnvPrefix namespaces every environment override
const EnvPrefix = "GOL3D_"

// Config holds the configuration for a simulation run
type Config struct {
	SizeX               int           `json:"size_x" env:"SIZE_X"`
	SizeY               int           `json:"size_y" env:"SIZE_Y"`
	SizeZ               int           `json:"size_z" env:"SIZE_Z"`
	LiveProbability     float64       `json:"live_probability" env:"LIVE_PROBABILITY"`
	Seed                int64         `json:"seed" env:"SEED"`       // 0 draws a fresh seed
	Pattern             string        `json:"pattern" env:"PATTERN"` // random, all or a pattern name
	FrameRate           time.Duration `json:"frame_rate" env:"FRAME_RATE"`
	AutoRestart         bool          `json:"auto_restart" env:"AUTO_RESTART"`
	StagnationThreshold int           `json:"stagnation_threshold" env:"STAGNATION_THRESHOLD"`
	InjectionCount      int           `json:"injection_count" env:"INJECTION_COUNT"`
	UseParallel         bool          `json:"use_parallel" env:"USE_PARALLEL"`
	UseMemoryPool       bool          `json:"use_memory_pool" env:"USE_MEMORY_POOL"`
	UseBoundedGrid      bool          `json:"use_bounded_grid" env:"USE_BOUNDED_GRID"`
	Workers             int           `json:"workers" env:"WORKERS"`
	MaxGenerations      int           `json:"max_generations" env:"MAX_GENERATIONS"` // 0 runs until interrupted
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		SizeX:               12,
		SizeY:               12,
		SizeZ:               4,
		LiveProbability:     0.2,
		Pattern:             "random",
		FrameRate:           time.Second,
		AutoRestart:         true,
		StagnationThreshold: 5,
		InjectionCount:      3,
		UseParallel:         true,
		UseMemoryPool:       true,
		UseBoundedGrid:      true, // Enable active region optimization
		MaxGenerations:      1000,
	}
}

// LoadConfig loads configuration from a JSON file, then applies environment overrides
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = ApplyEnv(&config); err != nil {
		return config, err
	}

	return config, config.Validate()
}

// ApplyEnv overrides config fields from GOL3D_* environment variables
func ApplyEnv(config *Config) error {
	if err := env.ParseWithOptions(config, env.Options{Prefix: EnvPrefix}); err != nil {
		return errors.Wrap(err, "[ApplyEnv] failed to parse environment")
	}
	return nil
}

// Validate rejects configurations the engine cannot run
func (c Config) Validate() error {
	if err := c.Dimensions().Validate(); err != nil {
		return errors.Wrapf(err, "[Validate] lattice %v", c.Dimensions())
	}
	if math.IsNaN(c.LiveProbability) || c.LiveProbability < 0 || c.LiveProbability > 1 {
		return errors.Wrapf(model.ErrInvalidArgument, "[Validate] live_probability %v outside [0,1]", c.LiveProbability)
	}
	if c.FrameRate <= 0 {
		return errors.Wrapf(model.ErrInvalidArgument, "[Validate] frame_rate must be positive, got %v", c.FrameRate)
	}
	if c.StagnationThreshold < 1 {
		return errors.Wrapf(model.ErrInvalidArgument, "[Validate] stagnation_threshold must be at least 1, got %d", c.StagnationThreshold)
	}
	if c.InjectionCount < 0 || c.Workers < 0 || c.MaxGenerations < 0 {
		return errors.Wrap(model.ErrInvalidArgument, "[Validate] injection_count, workers and max_generations must not be negative")
	}
	if _, err := c.InitialSeed(); err != nil {
		return errors.Wrap(err, "[Validate] pattern")
	}
	return nil
}

// Dimensions returns the configured lattice size
func (c Config) Dimensions() model.Dimensions {
	return model.Dimensions{X: c.SizeX, Y: c.SizeY, Z: c.SizeZ}
}

// InitialSeed returns the generator for generation 0
func (c Config) InitialSeed() (engine.Seed, error) {
	return engine.ParseSeed(c.Pattern, c.LiveProbability)
}

// Strategy picks the advance strategy; bounded wins over parallel
func (c Config) Strategy() engine.Strategy {
	switch {
	case c.UseBoundedGrid:
		return engine.Bounded
	case c.UseParallel:
		return engine.Parallel
	}
	return engine.Sequential
}
