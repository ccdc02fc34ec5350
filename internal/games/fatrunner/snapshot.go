package fatrunner

import (
	"slices"

	"github.com/vovakirdan/fat-runner/internal/core"
)

// Snapshot is a read-only copy of the session for renderers and tests.
type Snapshot struct {
	Phase      core.Phase
	Health     float64
	MaxHealth  float64
	Score      int
	HighScore  int
	FinalScore int
	Difficulty float64
	Tick       int
	Lane       int
	LaneX      []float64
	LaneWidth  float64
	Player     core.RectF
	Objects    []FallingObject
	Viewport   Viewport
}

// Snapshot returns a deep copy of the current state.
func (s *Sim) Snapshot() Snapshot {
	return Snapshot{
		Phase:      s.st.Phase,
		Health:     s.st.Vitals.Health,
		MaxHealth:  s.st.Vitals.Max,
		Score:      s.st.Vitals.Score,
		HighScore:  s.highScore,
		FinalScore: s.st.FinalScore,
		Difficulty: s.st.Vitals.Difficulty,
		Tick:       s.st.Tick,
		Lane:       s.st.Lane,
		LaneX:      s.lanes.Positions(),
		LaneWidth:  s.lanes.Width(),
		Player:     s.PlayerBox(),
		Objects:    slices.Clone(s.st.Objects),
		Viewport:   s.view,
	}
}
