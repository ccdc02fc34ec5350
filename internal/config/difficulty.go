package config

import "time"

// DifficultyManager computes the stepwise difficulty multiplier and the
// spawn cadence it drives.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Step > 0 && d.cfg.EveryTicks > 0
}

// Initial returns the multiplier a session starts with.
func (d *DifficultyManager) Initial() float64 {
	return d.cfg.Initial
}

// Max returns the multiplier cap.
func (d *DifficultyManager) Max() float64 {
	return d.cfg.Max
}

// Next returns the multiplier after the given tick: one step higher on every
// EveryTicks-th tick, never above Max and never below current. The stepped
// value is computed from the tick count, so no rounding error accumulates.
func (d *DifficultyManager) Next(current float64, tick int) float64 {
	if !d.IsEnabled() || tick <= 0 || tick%d.cfg.EveryTicks != 0 {
		return current
	}
	return max(current, d.Level(tick))
}

// Level returns the multiplier reached after tick ticks from a fresh start.
func (d *DifficultyManager) Level(tick int) float64 {
	if !d.IsEnabled() || tick <= 0 {
		return d.cfg.Initial
	}
	steps := tick / d.cfg.EveryTicks
	return min(d.cfg.Initial+float64(steps)*d.cfg.Step, d.cfg.Max)
}

// SpawnInterval returns the wave interval for a difficulty level:
// base - level*ramp, floored at minimum.
func SpawnInterval(s SpawnerConfig, level float64) time.Duration {
	base := time.Duration(s.BaseIntervalMS) * time.Millisecond
	ramp := time.Duration(float64(s.RampMS) * level * float64(time.Millisecond))
	floor := time.Duration(s.MinIntervalMS) * time.Millisecond
	return max(base-ramp, floor)
}
