package utils

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatsUpdate(t *testing.T) {
	t.Parallel()

	s := NewStats()
	s.Update(0, 2, 0)
	assert.Equal(t, 2.0, s.PopulationMean)
	assert.Zero(t, s.PopulationStdDev)
	assert.Zero(t, s.GenerationsPerSecond)

	for i, p := range []int{4, 4, 4, 5, 5, 7, 9} {
		s.Update(i+1, p, 100*time.Millisecond)
	}
	assert.Equal(t, 7, s.TotalGenerations)
	assert.Equal(t, 9, s.ActiveCells)
	assert.InDelta(t, 10.0, s.GenerationsPerSecond, 1e-9)
	assert.InDelta(t, 5.0, s.PopulationMean, 1e-9)
	assert.InDelta(t, math.Sqrt(32.0/7.0), s.PopulationStdDev, 1e-9)
}

func TestStatsWindow(t *testing.T) {
	t.Parallel()

	s := NewStats()
	for i := range populationWindow {
		s.Update(i, 0, time.Millisecond)
	}
	for i := range populationWindow {
		s.Update(populationWindow+i, 10, time.Millisecond)
	}
	assert.InDelta(t, 10.0, s.PopulationMean, 1e-9)
	assert.InDelta(t, 0.0, s.PopulationStdDev, 1e-9)
}

func TestNewSeed(t *testing.T) {
	t.Parallel()

	_, err := NewSeed()
	assert.NoError(t, err)
}
