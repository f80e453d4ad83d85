// Package config provides the tunable rules of the game. Values start from
// DefaultConfig and are overlaid by a YAML file, then validated against an
// embedded JSON Schema.
package config

// Config holds all game rules
type Config struct {
	Window  WindowConfig `yaml:"window" json:"window"`
	Player  PlayerConfig `yaml:"player" json:"player"`
	Bullets BulletConfig `yaml:"bullets" json:"bullets"`
	Enemies EnemyConfig  `yaml:"enemies" json:"enemies"`
	Waves   WaveConfig   `yaml:"waves" json:"waves"`
	Assets  AssetConfig  `yaml:"assets" json:"assets"`
}

// WindowConfig defines the window and the logical play field
type WindowConfig struct {
	Width     int    `yaml:"width" json:"width"`
	Height    int    `yaml:"height" json:"height"`
	Title     string `yaml:"title" json:"title"`
	TPS       int    `yaml:"tps" json:"tps"` // Updates per second
	Resizable bool   `yaml:"resizable" json:"resizable"`
}

// HealthBarConfig places a health bar relative to its owner's position.
// The bar is health/2 pixels wide.
type HealthBarConfig struct {
	OffsetX float64 `yaml:"offset_x" json:"offset_x"`
	OffsetY float64 `yaml:"offset_y" json:"offset_y"`
	Height  float64 `yaml:"height" json:"height"`
}

// PlayerConfig defines the player ship
type PlayerConfig struct {
	Speed     float64         `yaml:"speed" json:"speed"` // Pixels per second on each axis
	Health    int             `yaml:"health" json:"health"`
	Scale     float64         `yaml:"scale" json:"scale"`
	HealthBar HealthBarConfig `yaml:"health_bar" json:"health_bar"`
}

// BulletConfig defines the bullet pool
type BulletConfig struct {
	Speed    float64 `yaml:"speed" json:"speed"` // Pixels per second
	PoolSize int     `yaml:"pool_size" json:"pool_size"`
	Damage   int     `yaml:"damage" json:"damage"`
}

// EnemyConfig defines the initial enemy field
type EnemyConfig struct {
	Count         int             `yaml:"count" json:"count"`
	Health        int             `yaml:"health" json:"health"`
	MinSeparation float64         `yaml:"min_separation" json:"min_separation"`
	MaxAttempts   int             `yaml:"max_attempts" json:"max_attempts"` // Draws per position before giving up
	HealthBar     HealthBarConfig `yaml:"health_bar" json:"health_bar"`
}

// WaveConfig defines what happens once the field is cleared
type WaveConfig struct {
	Enabled      bool    `yaml:"enabled" json:"enabled"`
	Growth       int     `yaml:"growth" json:"growth"`       // Extra enemies per cleared wave
	MaxCount     int     `yaml:"max_count" json:"max_count"` // Upper bound on wave size
	RelaxFactor  float64 `yaml:"relax_factor" json:"relax_factor"`
	RelaxRetries int     `yaml:"relax_retries" json:"relax_retries"`
}

// AssetConfig locates the sprite files
type AssetConfig struct {
	Dir    string `yaml:"dir" json:"dir"`
	Player string `yaml:"player" json:"player"`
	Enemy  string `yaml:"enemy" json:"enemy"`
	Bullet string `yaml:"bullet" json:"bullet"`
}

// DefaultConfig returns the rules of the original prototype
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:     1280,
			Height:    800,
			Title:     "Skirmish",
			TPS:       60,
			Resizable: false,
		},
		Player: PlayerConfig{
			Speed:  160,
			Health: 100,
			Scale:  1.5,
			HealthBar: HealthBarConfig{
				OffsetX: -32,
				OffsetY: -50,
				Height:  5,
			},
		},
		Bullets: BulletConfig{
			Speed:    600,
			PoolSize: 10,
			Damage:   10,
		},
		Enemies: EnemyConfig{
			Count:         10,
			Health:        50,
			MinSeparation: 50,
			MaxAttempts:   1000,
			HealthBar: HealthBarConfig{
				OffsetX: -16,
				OffsetY: -50,
				Height:  5,
			},
		},
		Waves: WaveConfig{
			Enabled:      true,
			Growth:       2,
			MaxCount:     40,
			RelaxFactor:  0.5,
			RelaxRetries: 3,
		},
		Assets: AssetConfig{
			Dir:    "assets",
			Player: "player.png",
			Enemy:  "enemy.png",
			Bullet: "bullet.png",
		},
	}
}

// WaveSize returns the number of enemies in the given wave (1-based)
func (c *Config) WaveSize(wave int) int {
	if wave < 1 {
		wave = 1
	}
	size := c.Enemies.Count + c.Waves.Growth*(wave-1)
	if c.Waves.MaxCount > 0 && size > c.Waves.MaxCount {
		size = c.Waves.MaxCount
	}
	return size
}
