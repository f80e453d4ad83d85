package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 160.0, cfg.Player.Speed)
	assert.Equal(t, 100, cfg.Player.Health)
	assert.Equal(t, 10, cfg.Bullets.PoolSize)
	assert.Equal(t, 600.0, cfg.Bullets.Speed)
	assert.Equal(t, 10, cfg.Enemies.Count)
	assert.Equal(t, 50.0, cfg.Enemies.MinSeparation)
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(defaultYAML)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestBrokenEmbeddedDefaultsReported(t *testing.T) {
	_, err := loadEmbedded([]byte("enemies: [not, a, map]"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "embedded defaults")

	cfg, err := loadEmbedded(defaultYAML)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestParseOverlaysDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
enemies:
  count: 25
  min_separation: 30
bullets:
  pool_size: 4
`))
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.Enemies.Count)
	assert.Equal(t, 30.0, cfg.Enemies.MinSeparation)
	assert.Equal(t, 4, cfg.Bullets.PoolSize)

	// Untouched keys keep their defaults
	assert.Equal(t, 50, cfg.Enemies.Health)
	assert.Equal(t, 600.0, cfg.Bullets.Speed)
	assert.Equal(t, -16.0, cfg.Enemies.HealthBar.OffsetX)
}

func TestParseEmptyDocument(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("player:\n  sped: 10\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sped")
}

func TestParseRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero pool", "bullets:\n  pool_size: 0\n"},
		{"negative separation", "enemies:\n  min_separation: -1\n"},
		{"negative speed", "player:\n  speed: -5\n"},
		{"relax factor of one", "waves:\n  relax_factor: 1\n"},
		{"zero width", "window:\n  width: 0\n"},
		{"empty sprite name", "assets:\n  enemy: \"\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid configuration")
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window:\n  title: Arena\n"), 0o644))

	cfg, used, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, "Arena", cfg.Window.Title)

	_, _, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestWaveSize(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enemies.Count = 10
	cfg.Waves.Growth = 5
	cfg.Waves.MaxCount = 22

	assert.Equal(t, 10, cfg.WaveSize(0))
	assert.Equal(t, 10, cfg.WaveSize(1))
	assert.Equal(t, 15, cfg.WaveSize(2))
	assert.Equal(t, 20, cfg.WaveSize(3))
	assert.Equal(t, 22, cfg.WaveSize(4))

	cfg.Waves.MaxCount = 0
	assert.Equal(t, 30, cfg.WaveSize(5))
}
