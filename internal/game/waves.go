package game

import (
	"errors"
	"fmt"

	"github.com/solarlune/resolv"

	"chosenoffset.com/skirmish/internal/spawn"
)

// updateWaves starts the next wave once the field is clear.
func (g *Game) updateWaves() {
	if !g.Config.Waves.Enabled || g.wavesStalled {
		return
	}
	if len(g.ActiveEnemies()) > 0 {
		return
	}

	next := g.Wave + 1
	if g.Config.WaveSize(next) == 0 {
		g.wavesStalled = true
		g.Logger.Warn("next wave is empty, waves stopped", "wave", next)
		return
	}

	// A wave that never had enemies was not cleared
	if len(g.Enemies) > 0 {
		g.Stats.WavesCleared++
	}
	if err := g.spawnWave(next); err != nil {
		g.wavesStalled = true
		g.Logger.Error("could not spawn wave, field stays empty", "wave", next, "error", err)
	}
}

// spawnWave replaces the enemy field with a freshly placed wave. When the
// placement is infeasible the separation is relaxed and retried.
func (g *Game) spawnWave(wave int) error {
	count := g.Config.WaveSize(wave)
	positions, err := g.placeEnemies(count)
	if err != nil {
		return err
	}

	for _, e := range g.Enemies {
		if e.Active {
			g.space.Remove(e.body)
		}
	}

	g.Enemies = make([]*Enemy, 0, len(positions))
	for _, pos := range positions {
		g.addEnemy(pos)
	}

	g.Wave = wave
	if wave > 1 {
		g.Logger.Info("wave spawned", "wave", wave, "enemies", len(g.Enemies))
	}
	return nil
}

// addEnemy puts a full-health enemy at pos and registers its collision body
func (g *Game) addEnemy(pos spawn.Position) *Enemy {
	radius := g.Sprites.EnemyRadius()
	e := &Enemy{
		Pos:    pos,
		Health: g.Config.Enemies.Health,
		Active: true,
		Radius: radius,
	}
	e.body = resolv.NewObject(pos.X-radius, pos.Y-radius, radius*2, radius*2, tagEnemy)
	e.body.Data = e
	g.space.Add(e.body)
	g.Enemies = append(g.Enemies, e)
	return e
}

func (g *Game) placeEnemies(count int) ([]spawn.Position, error) {
	separation := g.Config.Enemies.MinSeparation
	retries := g.Config.Waves.RelaxRetries

	for attempt := 0; ; attempt++ {
		positions, err := g.spawner.Generate(count, g.Bounds, separation)
		if err == nil {
			return positions, nil
		}

		var placementErr *spawn.PlacementError
		if !errors.As(err, &placementErr) || placementErr.Reason != "" || attempt >= retries {
			return nil, err
		}

		relaxed := separation * g.Config.Waves.RelaxFactor
		g.Logger.Warn("relaxing enemy separation", "count", count,
			"from", fmt.Sprintf("%.1f", separation), "to", fmt.Sprintf("%.1f", relaxed))
		separation = relaxed
	}
}
