package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// Validate rejects configurations the simulation cannot run with.
func (c FatRunnerConfig) Validate() error {
	if c.Lanes < 2 {
		return invalid("lanes must be at least 2, got %d", c.Lanes)
	}
	if c.Viewport.CellWidth <= 0 || c.Viewport.CellHeight <= 0 {
		return invalid("viewport cell size must be positive")
	}
	if c.Viewport.HUDRows < 0 {
		return invalid("viewport.hud_rows cannot be negative")
	}
	if c.Player.SizeRatio <= 0 || c.Player.SizeRatio > 1 {
		return invalid("player.size_ratio must be in (0, 1], got %g", c.Player.SizeRatio)
	}
	if c.Player.YRatio <= 0 || c.Player.YRatio >= 1 {
		return invalid("player.y_ratio must be in (0, 1), got %g", c.Player.YRatio)
	}
	if c.Player.Hitbox <= 0 || c.Player.Hitbox > 1 {
		return invalid("player.hitbox must be in (0, 1], got %g", c.Player.Hitbox)
	}
	if c.Player.StartLane >= c.Lanes {
		return invalid("player.start_lane %d is outside %d lanes", c.Player.StartLane, c.Lanes)
	}
	if c.Objects.Hitbox <= 0 || c.Objects.Hitbox > 1 {
		return invalid("objects.hitbox must be in (0, 1], got %g", c.Objects.Hitbox)
	}
	if c.Objects.FallSpeed <= 0 {
		return invalid("objects.fall_speed must be positive")
	}
	if len(c.Objects.Kinds) == 0 {
		return invalid("objects.kinds cannot be empty")
	}
	seen := make(map[string]bool, len(c.Objects.Kinds))
	for _, k := range c.Objects.Kinds {
		if k.Name == "" {
			return invalid("objects.kinds entry without a name")
		}
		if seen[k.Name] {
			return invalid("duplicate kind %q", k.Name)
		}
		seen[k.Name] = true
	}
	if c.Health.Max <= 0 {
		return invalid("health.max must be positive")
	}
	if c.Health.Initial < 0 || c.Health.Initial >= c.Health.Max {
		return invalid("health.initial must be in [0, max), got %g", c.Health.Initial)
	}
	if c.Health.DecayPerTick < 0 {
		return invalid("health.decay_per_tick cannot be negative")
	}
	if c.Score.TicksPerPoint <= 0 {
		return invalid("score.ticks_per_point must be positive")
	}
	if c.Spawner.BaseIntervalMS <= 0 || c.Spawner.MinIntervalMS <= 0 {
		return invalid("spawner intervals must be positive")
	}
	if c.Spawner.MinIntervalMS > c.Spawner.BaseIntervalMS {
		return invalid("spawner.min_interval_ms exceeds base_interval_ms")
	}
	if c.Difficulty.Initial <= 0 {
		return invalid("difficulty.initial must be positive")
	}
	if c.Difficulty.Max < c.Difficulty.Initial {
		return invalid("difficulty.max %g is below initial %g", c.Difficulty.Max, c.Difficulty.Initial)
	}
	if c.Difficulty.Enabled && (c.Difficulty.EveryTicks <= 0 || c.Difficulty.Step < 0) {
		return invalid("difficulty needs every_ticks > 0 and step >= 0")
	}
	return nil
}
