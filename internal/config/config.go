// Package config provides YAML-based game configuration loading and
// difficulty management for Fat Runner.
package config

// FatRunnerConfig contains all configuration for the Fat Runner game.
type FatRunnerConfig struct {
	Lanes      int              `yaml:"lanes"`
	Viewport   ViewportConfig   `yaml:"viewport"`
	Player     PlayerConfig     `yaml:"player"`
	Objects    ObjectsConfig    `yaml:"objects"`
	Health     HealthConfig     `yaml:"health"`
	Score      ScoreConfig      `yaml:"score"`
	Spawner    SpawnerConfig    `yaml:"spawner"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ViewportConfig maps terminal cells onto the pixel playfield.
type ViewportConfig struct {
	CellWidth  int `yaml:"cell_width"`  // Pixels per terminal column
	CellHeight int `yaml:"cell_height"` // Pixels per terminal row
	HUDRows    int `yaml:"hud_rows"`    // Rows reserved above the playfield
}

// PlayerConfig defines the player sprite.
type PlayerConfig struct {
	SizeRatio    float64 `yaml:"size_ratio"`    // Sprite size as a fraction of lane width
	YRatio       float64 `yaml:"y_ratio"`       // Sprite centre as a fraction of playfield height
	Hitbox       float64 `yaml:"hitbox"`        // Inset factor for collisions
	StartLane    int     `yaml:"start_lane"`    // -1 = middle lane
	SlideMS      int     `yaml:"slide_ms"`      // Cosmetic lane change animation
	TapThreshold float64 `yaml:"tap_threshold"` // Dead zone around the player centre, pixels
}

// ObjectsConfig defines falling food.
type ObjectsConfig struct {
	Hitbox        float64      `yaml:"hitbox"`         // Inset factor for collisions
	FallSpeed     float64      `yaml:"fall_speed"`     // Pixels per tick at difficulty 1
	DespawnMargin float64      `yaml:"despawn_margin"` // Pixels below the playfield before removal
	DefaultHeal   float64      `yaml:"default_heal"`   // Heal for kinds missing from Kinds
	Kinds         []KindConfig `yaml:"kinds"`
}

// KindConfig is one entry of the food table.
type KindConfig struct {
	Name string  `yaml:"name"`
	Heal float64 `yaml:"heal"`
}

// HealthConfig defines the health meter.
type HealthConfig struct {
	Initial      float64 `yaml:"initial"`
	Max          float64 `yaml:"max"`
	DecayPerTick float64 `yaml:"decay_per_tick"`
}

// ScoreConfig defines passive scoring.
type ScoreConfig struct {
	TicksPerPoint int `yaml:"ticks_per_point"`
}

// SpawnerConfig defines wave cadence in milliseconds.
type SpawnerConfig struct {
	BaseIntervalMS int `yaml:"base_interval_ms"`
	RampMS         int `yaml:"ramp_ms"` // Interval reduction per unit of difficulty
	MinIntervalMS  int `yaml:"min_interval_ms"`
}

// DifficultyConfig defines the stepwise difficulty multiplier.
type DifficultyConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Initial    float64 `yaml:"initial"`
	Step       float64 `yaml:"step"`
	EveryTicks int     `yaml:"every_ticks"`
	Max        float64 `yaml:"max"`
}

// HealTable returns kind name to heal amount.
func (o ObjectsConfig) HealTable() map[string]float64 {
	table := make(map[string]float64, len(o.Kinds))
	for _, k := range o.Kinds {
		table[k.Name] = k.Heal
	}
	return table
}

// KindNames returns the kind names in configured order.
func (o ObjectsConfig) KindNames() []string {
	names := make([]string, len(o.Kinds))
	for i, k := range o.Kinds {
		names[i] = k.Name
	}
	return names
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset maps a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *FatRunnerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.Initial = 1.0
		cfg.Difficulty.Max = 2.0
		cfg.Health.DecayPerTick = 0.08
	case DifficultyNormal:
		cfg.Difficulty.Enabled = true
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.Initial = 1.6
		cfg.Health.DecayPerTick = 0.12
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	}
}
