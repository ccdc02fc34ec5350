package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickDuration is the fixed simulation timestep.
func (c RuntimeConfig) TickDuration() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}

// Phase is the lifecycle position of a game session.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "NotStarted"
	case PhasePlaying:
		return "Playing"
	case PhasePaused:
		return "Paused"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Phase         Phase
	Score         int  // Current score
	GameOver      bool // Whether the game has ended
	Paused        bool // Whether the game is paused
	ExitRequested bool // Player asked to leave the game screen
}

// Running reports whether the platform should keep ticking.
func (s GameState) Running() bool {
	return s.Phase == PhasePlaying && !s.ExitRequested
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// Hooks are lifecycle callbacks a game fires toward the platform.
// Nil fields are skipped.
type Hooks struct {
	OnGameOver       func(finalScore int)
	OnScoreChange    func(newScore int)
	OnPauseRequested func()
	OnCollect        func(kind string, heal float64)
}

// GameOver invokes OnGameOver if set.
func (h Hooks) GameOver(finalScore int) {
	if h.OnGameOver != nil {
		h.OnGameOver(finalScore)
	}
}

// ScoreChange invokes OnScoreChange if set.
func (h Hooks) ScoreChange(newScore int) {
	if h.OnScoreChange != nil {
		h.OnScoreChange(newScore)
	}
}

// PauseRequested invokes OnPauseRequested if set.
func (h Hooks) PauseRequested() {
	if h.OnPauseRequested != nil {
		h.OnPauseRequested()
	}
}

// Collect invokes OnCollect if set.
func (h Hooks) Collect(kind string, heal float64) {
	if h.OnCollect != nil {
		h.OnCollect(kind, heal)
	}
}
