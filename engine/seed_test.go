package engine

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikhrachel/go-gol3d/model"
)

func TestProbabilisticSeed(t *testing.T) {
	t.Parallel()

	dims := model.Dimensions{X: 6, Y: 5, Z: 4}

	t.Run("same seed gives the same lattice", func(t *testing.T) {
		t.Parallel()
		a, err := ProbabilisticSeed(dims, 0.35, NewRandomSource(42))
		require.NoError(t, err)
		b, err := ProbabilisticSeed(dims, 0.35, NewRandomSource(42))
		require.NoError(t, err)
		assert.True(t, a.Equal(b))
	})

	t.Run("zero probability is all dead", func(t *testing.T) {
		t.Parallel()
		l, err := ProbabilisticSeed(dims, 0, NewRandomSource(1))
		require.NoError(t, err)
		assert.Zero(t, l.CountLiving())
	})

	t.Run("probability one is all alive", func(t *testing.T) {
		t.Parallel()
		l, err := ProbabilisticSeed(dims, 1, NewRandomSource(1))
		require.NoError(t, err)
		assert.Equal(t, l.Len(), l.CountLiving())
	})

	t.Run("alive iff draw reaches one minus probability", func(t *testing.T) {
		t.Parallel()
		src := &sequenceSource{values: []float64{0, 0.49, 0.5, 0.99}}
		l, err := ProbabilisticSeed(model.Dimensions{X: 1, Y: 1, Z: 4}, 0.5, src)
		require.NoError(t, err)
		want := []model.Coord{{X: 0, Y: 0, Z: 2}, {X: 0, Y: 0, Z: 3}}
		if diff := cmp.Diff(want, l.AliveCoordinates()); diff != "" {
			t.Errorf("alive mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, 4, src.next, "one draw per cell")
	})

	t.Run("rejects probabilities outside the unit interval", func(t *testing.T) {
		t.Parallel()
		for _, p := range []float64{-0.01, 1.01, math.NaN(), math.Inf(1)} {
			_, err := ProbabilisticSeed(dims, p, NewRandomSource(1))
			assert.ErrorIs(t, err, model.ErrInvalidArgument, "p=%v", p)
		}
	})

	t.Run("requires a random source", func(t *testing.T) {
		t.Parallel()
		_, err := ProbabilisticSeed(dims, 0.5, nil)
		assert.ErrorIs(t, err, model.ErrInvalidArgument)
	})

	t.Run("rejects invalid dimensions", func(t *testing.T) {
		t.Parallel()
		_, err := ProbabilisticSeed(model.Dimensions{X: 1, Y: 0, Z: 1}, 0.5, NewRandomSource(1))
		assert.ErrorIs(t, err, model.ErrInvalidDimension)
	})
}

func TestAllAlive(t *testing.T) {
	t.Parallel()

	l, err := AllAlive(model.Dimensions{X: 2, Y: 3, Z: 4})
	require.NoError(t, err)
	assert.Equal(t, 24, l.CountLiving())

	_, err = AllAlive(model.Dimensions{X: -1, Y: 3, Z: 4})
	assert.ErrorIs(t, err, model.ErrInvalidDimension)
}

func TestPatterns(t *testing.T) {
	t.Parallel()

	t.Run("pattern must fit the lattice", func(t *testing.T) {
		t.Parallel()
		_, err := StableSquare.Lattice(model.Dimensions{X: 6, Y: 6, Z: 1})
		assert.ErrorIs(t, err, model.ErrOutOfBounds)
	})

	t.Run("place shifts by offset and writes nothing on failure", func(t *testing.T) {
		t.Parallel()
		l := newLattice(t, 8, 8, 2)
		require.NoError(t, StableSquare.Place(l, model.Coord{X: -5, Y: -5, Z: 1}))
		want := []model.Coord{{X: 0, Y: 0, Z: 1}, {X: 0, Y: 1, Z: 1}, {X: 1, Y: 0, Z: 1}, {X: 1, Y: 1, Z: 1}}
		if diff := cmp.Diff(want, l.AliveCoordinates()); diff != "" {
			t.Errorf("alive mismatch (-want +got):\n%s", diff)
		}

		empty := newLattice(t, 8, 8, 2)
		assert.ErrorIs(t, StableSquare.Place(empty, model.Coord{X: 2}), model.ErrOutOfBounds)
		assert.Zero(t, empty.CountLiving())
	})

	t.Run("lookup by name", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []string{"bar", "stable-square"}, PatternNames())
		p, ok := PatternByName("bar")
		require.True(t, ok)
		assert.Equal(t, Bar.Cells, p.Cells)
		_, ok = PatternByName("glider")
		assert.False(t, ok)
	})
}

func TestParseSeed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		want    Seed
		wantErr bool
	}{
		{name: "", want: Seed{Kind: SeedProbabilistic, LiveProbability: 0.3}},
		{name: "random", want: Seed{Kind: SeedProbabilistic, LiveProbability: 0.3}},
		{name: " ALL ", want: Seed{Kind: SeedAllAlive}},
		{name: "stable-square", want: Seed{Kind: SeedPattern, Pattern: "stable-square"}},
		{name: "bar", want: Seed{Kind: SeedPattern, Pattern: "bar"}},
		{name: "glider", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseSeed(tt.name, 0.3)
		if tt.wantErr {
			assert.ErrorIs(t, err, model.ErrInvalidArgument, "%q", tt.name)
			continue
		}
		require.NoError(t, err, "%q", tt.name)
		assert.Equal(t, tt.want, got, "%q", tt.name)
	}
}

func TestSeedGenerate(t *testing.T) {
	t.Parallel()

	dims := model.Dimensions{X: 8, Y: 8, Z: 2}

	l, err := Seed{Kind: SeedAllAlive}.Generate(dims, nil)
	require.NoError(t, err)
	assert.Equal(t, l.Len(), l.CountLiving())

	l, err = Seed{Kind: SeedPattern, Pattern: StableSquare.Name}.Generate(dims, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, l.CountLiving())

	l, err = Seed{Kind: SeedProbabilistic, LiveProbability: 1}.Generate(dims, NewRandomSource(3))
	require.NoError(t, err)
	assert.Equal(t, l.Len(), l.CountLiving())

	_, err = Seed{Kind: SeedPattern, Pattern: "nope"}.Generate(dims, nil)
	assert.ErrorIs(t, err, model.ErrInvalidArgument)

	_, err = Seed{Kind: SeedKind(7)}.Generate(dims, nil)
	assert.ErrorIs(t, err, model.ErrInvalidArgument)
}

func TestInjectRandomLife(t *testing.T) {
	t.Parallel()

	l := newLattice(t, 4, 4, 4)
	InjectRandomLife(l, 5, NewRandomSource(9))
	assert.GreaterOrEqual(t, l.CountLiving(), 1)
	assert.LessOrEqual(t, l.CountLiving(), 5)

	pinned := newLattice(t, 4, 4, 4)
	InjectRandomLife(pinned, 3, &sequenceSource{values: []float64{0.999}})
	assert.Equal(t, []model.Coord{{X: 3, Y: 3, Z: 3}}, pinned.AliveCoordinates())
}
