package config

import (
	_ "embed"
)

//go:embed defaults/fatrunner.yaml
var defaultFatRunnerYAML []byte

// DefaultFatRunnerConfig returns the built-in Fat Runner configuration.
// It mirrors defaults/fatrunner.yaml and is used when the embedded file
// cannot be decoded.
func DefaultFatRunnerConfig() FatRunnerConfig {
	return FatRunnerConfig{
		Lanes: 5,
		Viewport: ViewportConfig{
			CellWidth:  8,
			CellHeight: 16,
			HUDRows:    1,
		},
		Player: PlayerConfig{
			SizeRatio:    0.9,
			YRatio:       0.8,
			Hitbox:       0.65,
			StartLane:    -1,
			SlideMS:      180,
			TapThreshold: 10,
		},
		Objects: ObjectsConfig{
			Hitbox:        0.9,
			FallSpeed:     3,
			DespawnMargin: 100,
			DefaultHeal:   10,
			Kinds: []KindConfig{
				{Name: "coxinha", Heal: 20},
				{Name: "pizza", Heal: 15},
				{Name: "refri", Heal: 10},
				{Name: "batata", Heal: 25},
			},
		},
		Health: HealthConfig{
			Initial:      30,
			Max:          100,
			DecayPerTick: 0.1,
		},
		Score: ScoreConfig{
			TicksPerPoint: 10,
		},
		Spawner: SpawnerConfig{
			BaseIntervalMS: 1500,
			RampMS:         100,
			MinIntervalMS:  1000,
		},
		Difficulty: DifficultyConfig{
			Enabled:    true,
			Initial:    1.0,
			Step:       0.2,
			EveryTicks: 600,
			Max:        3.0,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFatRunnerYAML
}
