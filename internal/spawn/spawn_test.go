package spawn

import (
	"errors"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertSeparated(t *testing.T, positions []Position, minSeparation float64) {
	t.Helper()
	for i := range positions {
		for j := i + 1; j < len(positions); j++ {
			d := positions[i].Distance(positions[j])
			assert.GreaterOrEqualf(t, d, minSeparation, "positions %d and %d are %.3f apart", i, j, d)
		}
	}
}

func assertInBounds(t *testing.T, positions []Position, bounds Bounds) {
	t.Helper()
	for i, p := range positions {
		assert.Truef(t, bounds.Contains(p), "position %d (%.3f, %.3f) outside %vx%v", i, p.X, p.Y, bounds.Width, bounds.Height)
	}
}

func TestGenerateTenEnemies(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	bounds := Bounds{Width: 1000, Height: 1000}

	positions, err := GeneratePlacements(rng, 10, bounds, 50)
	require.NoError(t, err)
	require.Len(t, positions, 10)

	assertSeparated(t, positions, 50)
	assertInBounds(t, positions, bounds)
}

func TestGenerateInvariantsAcrossSeeds(t *testing.T) {
	bounds := Bounds{Width: 800, Height: 600}
	for seed := int64(1); seed <= 25; seed++ {
		g := NewGenerator(rand.New(rand.NewSource(seed)))
		positions, err := g.Generate(20, bounds, 50)
		require.NoErrorf(t, err, "seed %d", seed)
		require.Len(t, positions, 20)
		assertSeparated(t, positions, 50)
		assertInBounds(t, positions, bounds)
	}
}

func TestGenerateZeroCount(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	positions, err := GeneratePlacements(rng, 0, Bounds{Width: 10, Height: 10}, 500)
	require.NoError(t, err)
	assert.NotNil(t, positions)
	assert.Empty(t, positions)

	// No draws consumed: the next value matches a fresh source
	fresh := rand.New(rand.NewSource(7))
	assert.Equal(t, fresh.Float64(), rng.Float64())
}

func TestGenerateZeroSeparationAcceptsEveryDraw(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(3)), WithMaxAttempts(1))

	positions, err := g.Generate(200, Bounds{Width: 5, Height: 5}, 0)
	require.NoError(t, err)
	assert.Len(t, positions, 200)
}

func TestGenerateInfeasibleFails(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	bounds := Bounds{Width: 100, Height: 100}

	start := time.Now()
	positions, err := GeneratePlacements(rng, 1000, bounds, 500)
	elapsed := time.Since(start)

	require.Error(t, err)
	assert.Nil(t, positions)
	assert.Less(t, elapsed, 5*time.Second)

	var placementErr *PlacementError
	require.True(t, errors.As(err, &placementErr))
	assert.Equal(t, 1000, placementErr.Count)
	// The first point always fits; nothing else can in a 100x100 box
	assert.Equal(t, 1, placementErr.Placed)
	assert.Equal(t, DefaultMaxAttempts, placementErr.Attempts)
	assert.Equal(t, bounds, placementErr.Bounds)
	assert.Empty(t, placementErr.Reason)
	assert.Contains(t, err.Error(), "cannot place 1000 points")
}

func TestWithMaxAttempts(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(1)), WithMaxAttempts(5))
	assert.Equal(t, 5, g.MaxAttempts())

	_, err := g.Generate(2, Bounds{Width: 10, Height: 10}, 100)
	var placementErr *PlacementError
	require.ErrorAs(t, err, &placementErr)
	assert.Equal(t, 5, placementErr.Attempts)

	// Non-positive caps keep the default
	g = NewGenerator(rand.New(rand.NewSource(1)), WithMaxAttempts(0))
	assert.Equal(t, DefaultMaxAttempts, g.MaxAttempts())
}

func TestGenerateDeterministic(t *testing.T) {
	bounds := Bounds{Width: 1280, Height: 800}

	a, err := GeneratePlacements(rand.New(rand.NewSource(99)), 15, bounds, 50)
	require.NoError(t, err)
	b, err := GeneratePlacements(rand.New(rand.NewSource(99)), 15, bounds, 50)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := GeneratePlacements(rand.New(rand.NewSource(100)), 15, bounds, 50)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestGenerateInvalidRequests(t *testing.T) {
	tests := []struct {
		name       string
		count      int
		bounds     Bounds
		separation float64
	}{
		{"negative count", -1, Bounds{Width: 10, Height: 10}, 1},
		{"zero width", 1, Bounds{Width: 0, Height: 10}, 1},
		{"negative height", 1, Bounds{Width: 10, Height: -3}, 1},
		{"nan bounds", 1, Bounds{Width: math.NaN(), Height: 10}, 1},
		{"infinite bounds", 1, Bounds{Width: math.Inf(1), Height: 10}, 1},
		{"negative separation", 1, Bounds{Width: 10, Height: 10}, -1},
		{"nan separation", 1, Bounds{Width: 10, Height: 10}, math.NaN()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(1))
			_, err := GeneratePlacements(rng, tt.count, tt.bounds, tt.separation)

			var placementErr *PlacementError
			require.ErrorAs(t, err, &placementErr)
			assert.NotEmpty(t, placementErr.Reason)
			assert.Contains(t, err.Error(), "invalid placement request")
		})
	}
}
