package fatrunner

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/fat-runner/internal/config"
	"github.com/vovakirdan/fat-runner/internal/core"
)

// Run configures a headless session.
type Run struct {
	Config    config.FatRunnerConfig
	View      Viewport
	Seed      int64
	Step      time.Duration
	MaxTicks  int
	Autopilot *Autopilot // Nil leaves the player in the start lane
}

// Report summarises a headless session.
type Report struct {
	Ticks      int
	Phase      core.Phase
	Score      int
	Health     float64
	Difficulty float64
	Waves      uint64
	Eaten      map[Kind]int
	Healed     float64
}

// Simulate plays one session without a terminal until game over or
// MaxTicks, whichever comes first.
func Simulate(r Run) Report {
	sim := NewSim(r.Config, r.View, rand.New(rand.NewSource(r.Seed)), r.Step)

	rep := Report{Eaten: make(map[Kind]int)}
	sim.SetHooks(core.Hooks{
		OnCollect: func(kind string, heal float64) {
			rep.Eaten[Kind(kind)]++
			rep.Healed += heal
		},
	})

	sim.Start()
	for sim.Ticks() < r.MaxTicks && sim.Phase() == core.PhasePlaying {
		if r.Autopilot != nil {
			r.Autopilot.Drive(sim)
		}
		sim.Tick()
	}

	snap := sim.Snapshot()
	rep.Ticks = snap.Tick
	rep.Phase = snap.Phase
	rep.Score = snap.Score
	if snap.Phase == core.PhaseGameOver {
		rep.Score = snap.FinalScore
	}
	rep.Health = snap.Health
	rep.Difficulty = snap.Difficulty
	rep.Waves = sim.st.NextWave
	return rep
}
