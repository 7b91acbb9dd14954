package utils

import (
	"time"

	"gonum.org/v1/gonum/stat"
)

// populationWindow is how many recent generations feed the population summary
const populationWindow = 50

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	PopulationMean       float64
	PopulationStdDev     float64
	TotalGenerations     int
	StartTime            time.Time
	ActiveCells          int
	BoundingBoxVolume    int

	populations []float64
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

func (s *Stats) Update(generation int, population int, duration time.Duration) {
	s.TotalGenerations = generation
	s.ActiveCells = population
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}

	s.populations = append(s.populations, float64(population))
	if len(s.populations) > populationWindow {
		s.populations = s.populations[1:]
	}
	if len(s.populations) < 2 {
		s.PopulationMean, s.PopulationStdDev = float64(population), 0
		return
	}
	s.PopulationMean, s.PopulationStdDev = stat.MeanStdDev(s.populations, nil)
}
