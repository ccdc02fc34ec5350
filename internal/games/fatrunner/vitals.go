package fatrunner

import "github.com/vovakirdan/fat-runner/internal/config"

// Vitals tracks health, score and difficulty for a session.
type Vitals struct {
	Health     float64
	Max        float64
	Score      int
	Difficulty float64

	decay         float64
	ticksPerPoint int
	difficulty    *config.DifficultyManager
}

// NewVitals returns vitals at their initial values.
func NewVitals(cfg config.FatRunnerConfig, dm *config.DifficultyManager) Vitals {
	return Vitals{
		Health:        cfg.Health.Initial,
		Max:           cfg.Health.Max,
		Difficulty:    dm.Initial(),
		decay:         cfg.Health.DecayPerTick,
		ticksPerPoint: cfg.Score.TicksPerPoint,
		difficulty:    dm,
	}
}

// Decay drains health by the per-tick amount, stopping at zero.
// Zero health has no further effect.
func (v *Vitals) Decay() {
	v.Health = max(0, v.Health-v.decay)
}

// Heal adds amount, clamped at Max, and reports whether Max was reached.
func (v *Vitals) Heal(amount float64) (full bool) {
	v.Health = min(v.Max, v.Health+amount)
	return v.Health >= v.Max
}

// Bookkeep applies the passive score and difficulty steps for the given
// tick number and reports whether the score changed.
func (v *Vitals) Bookkeep(tick int) (scored bool) {
	if tick > 0 && tick%v.ticksPerPoint == 0 {
		v.Score++
		scored = true
	}
	v.Difficulty = v.difficulty.Next(v.Difficulty, tick)
	return scored
}
