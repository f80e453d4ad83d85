// Package spawn places entities in a rectangular area so that no two of them
// sit closer than a minimum separation. Placement uses rejection sampling: a
// candidate is drawn uniformly at random and kept only if it is far enough
// from everything accepted so far.
package spawn

import (
	"fmt"
	"math"
	"math/rand"

	"chosenoffset.com/skirmish/internal/geom"
)

// DefaultMaxAttempts is the number of consecutive rejected draws allowed for a
// single position before the request is declared infeasible.
const DefaultMaxAttempts = 1000

// Position is a placement in world space
type Position = geom.Point

// Bounds is the area positions are drawn from: [0, Width) x [0, Height)
type Bounds = geom.Size

// PlacementError reports a placement request that could not be satisfied.
type PlacementError struct {
	Count         int     // Positions requested
	Placed        int     // Positions accepted before giving up
	Bounds        Bounds  // Area sampled
	MinSeparation float64 // Required distance between positions
	Attempts      int     // Draws spent on the position that failed
	Reason        string  // Set for malformed requests
}

func (e *PlacementError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("spawn: invalid placement request (%s)", e.Reason)
	}
	return fmt.Sprintf("spawn: cannot place %d points with separation %.2f in %.0fx%.0f bounds (placed %d, gave up after %d attempts)",
		e.Count, e.MinSeparation, e.Bounds.Width, e.Bounds.Height, e.Placed, e.Attempts)
}

// Option configures a Generator
type Option func(*Generator)

// WithMaxAttempts caps the consecutive draws spent on one position.
// Values below 1 are ignored.
func WithMaxAttempts(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.maxAttempts = n
		}
	}
}

// Generator produces PlacementSets from an injected random source
type Generator struct {
	rng         *rand.Rand
	maxAttempts int
}

// NewGenerator creates a Generator drawing from rng
func NewGenerator(rng *rand.Rand, opts ...Option) *Generator {
	g := &Generator{
		rng:         rng,
		maxAttempts: DefaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// MaxAttempts returns the per-position draw cap
func (g *Generator) MaxAttempts() int {
	return g.maxAttempts
}

// Generate returns count positions inside bounds with every pairwise distance
// at least minSeparation. It fails with *PlacementError when the request is
// malformed or when a position cannot be found within the attempt cap.
func (g *Generator) Generate(count int, bounds Bounds, minSeparation float64) ([]Position, error) {
	if err := validate(count, bounds, minSeparation); err != nil {
		return nil, err
	}

	positions := make([]Position, 0, count)
	if count == 0 {
		return positions, nil
	}

	minSq := minSeparation * minSeparation
	for len(positions) < count {
		accepted := false
		attempts := 0
		for attempts < g.maxAttempts {
			attempts++
			candidate := Position{
				X: g.rng.Float64() * bounds.Width,
				Y: g.rng.Float64() * bounds.Height,
			}
			if farFromAll(candidate, positions, minSq) {
				positions = append(positions, candidate)
				accepted = true
				break
			}
		}
		if !accepted {
			return nil, &PlacementError{
				Count:         count,
				Placed:        len(positions),
				Bounds:        bounds,
				MinSeparation: minSeparation,
				Attempts:      attempts,
			}
		}
	}

	return positions, nil
}

// GeneratePlacements is Generate with default options
func GeneratePlacements(rng *rand.Rand, count int, bounds Bounds, minSeparation float64) ([]Position, error) {
	return NewGenerator(rng).Generate(count, bounds, minSeparation)
}

func farFromAll(candidate Position, accepted []Position, minSq float64) bool {
	for _, p := range accepted {
		if candidate.DistanceSq(p) < minSq {
			return false
		}
	}
	return true
}

func validate(count int, bounds Bounds, minSeparation float64) error {
	reason := ""
	switch {
	case count < 0:
		reason = fmt.Sprintf("negative count %d", count)
	case !(bounds.Width > 0) || !(bounds.Height > 0) || math.IsInf(bounds.Width, 0) || math.IsInf(bounds.Height, 0):
		reason = fmt.Sprintf("bounds %vx%v must be positive and finite", bounds.Width, bounds.Height)
	case !(minSeparation >= 0) || math.IsInf(minSeparation, 0):
		reason = fmt.Sprintf("separation %v must be a finite non-negative number", minSeparation)
	}
	if reason == "" {
		return nil
	}
	return &PlacementError{
		Count:         count,
		Bounds:        bounds,
		MinSeparation: minSeparation,
		Reason:        reason,
	}
}
