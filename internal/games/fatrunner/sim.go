package fatrunner

import (
	"time"

	"github.com/vovakirdan/fat-runner/internal/config"
	"github.com/vovakirdan/fat-runner/internal/core"
)

// Viewport is the playfield size in pixels.
type Viewport struct {
	Width  float64
	Height float64
}

// State is the complete mutable record of one session.
type State struct {
	Phase      core.Phase
	Lane       int
	Vitals     Vitals
	Tick       int
	Elapsed    time.Duration // Simulated time since the session started
	LastSpawn  time.Duration
	Objects    []FallingObject
	NextID     ObjectID
	NextWave   uint64
	FinalScore int
}

// Sim owns the gameplay state and advances it one tick at a time.
// It is not safe for concurrent use.
type Sim struct {
	cfg        config.FatRunnerConfig
	view       Viewport
	step       time.Duration
	lanes      LaneModel
	spawner    *Spawner
	collider   Collider
	heal       HealTable
	difficulty *config.DifficultyManager
	hooks      core.Hooks

	st            State
	highScore     int
	exitRequested bool
}

// NewSim creates a session in the NotStarted phase. step is the simulated
// time each tick advances the clock by.
func NewSim(cfg config.FatRunnerConfig, view Viewport, rng Rand, step time.Duration) *Sim {
	lanes := NewLaneModel(cfg.Lanes, view.Width)
	s := &Sim{
		cfg:        cfg,
		view:       view,
		step:       step,
		lanes:      lanes,
		spawner:    NewSpawner(rng, kindsFrom(cfg.Objects), cfg.Spawner),
		heal:       NewHealTable(cfg.Objects),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		collider: Collider{
			PlayerHitbox: cfg.Player.Hitbox,
			ObjectHitbox: cfg.Objects.Hitbox,
			FallSpeed:    cfg.Objects.FallSpeed,
			DespawnY:     view.Height + cfg.Objects.DespawnMargin,
		},
	}
	s.reset()
	s.st.Phase = core.PhaseNotStarted
	return s
}

// SetHooks replaces the lifecycle callbacks.
func (s *Sim) SetHooks(h core.Hooks) {
	s.hooks = h
}

// Lanes returns the lane model.
func (s *Sim) Lanes() LaneModel {
	return s.lanes
}

// Phase returns the current lifecycle phase.
func (s *Sim) Phase() core.Phase {
	return s.st.Phase
}

// HighScore returns the best final score of this process.
func (s *Sim) HighScore() int {
	return s.highScore
}

// Ticks returns the number of ticks played this session.
func (s *Sim) Ticks() int {
	return s.st.Tick
}

// ExitRequested reports whether Exit was called.
func (s *Sim) ExitRequested() bool {
	return s.exitRequested
}

func (s *Sim) startLane() int {
	if s.cfg.Player.StartLane < 0 {
		return s.lanes.Middle()
	}
	return s.lanes.MoveLane(s.cfg.Player.StartLane, 0)
}

func (s *Sim) reset() {
	s.st = State{
		Lane:   s.startLane(),
		Vitals: NewVitals(s.cfg, s.difficulty),
	}
}

// Start begins play from the start screen.
func (s *Sim) Start() {
	if s.st.Phase == core.PhaseNotStarted {
		s.st.Phase = core.PhasePlaying
	}
}

// Pause freezes a running session.
func (s *Sim) Pause() {
	if s.st.Phase == core.PhasePlaying {
		s.st.Phase = core.PhasePaused
	}
}

// Resume continues a paused session.
func (s *Sim) Resume() {
	if s.st.Phase == core.PhasePaused {
		s.st.Phase = core.PhasePlaying
	}
}

// RequestPause handles the back signal: a running session notifies
// OnPauseRequested and pauses. Other phases ignore it.
func (s *Sim) RequestPause() {
	if s.st.Phase != core.PhasePlaying {
		return
	}
	s.hooks.PauseRequested()
	s.Pause()
}

// Restart returns every session value to its initial state and starts
// playing. The high score survives.
func (s *Sim) Restart() {
	s.reset()
	s.exitRequested = false
	s.st.Phase = core.PhasePlaying
}

// Exit asks the host to leave the game screen.
func (s *Sim) Exit() {
	s.exitRequested = true
}

// MoveLane shifts the player by delta lanes while playing.
func (s *Sim) MoveLane(delta int) {
	if s.st.Phase != core.PhasePlaying {
		return
	}
	s.st.Lane = s.lanes.MoveLane(s.st.Lane, delta)
}

// MoveLeft moves the player one lane left.
func (s *Sim) MoveLeft() { s.MoveLane(-1) }

// MoveRight moves the player one lane right.
func (s *Sim) MoveRight() { s.MoveLane(1) }

// Tap moves the player toward a tap at pixel x. Taps within the threshold
// of the player centre are ignored.
func (s *Sim) Tap(x float64) {
	center := s.PlayerBox().CenterX()
	switch {
	case x > center+s.cfg.Player.TapThreshold:
		s.MoveRight()
	case x < center-s.cfg.Player.TapThreshold:
		s.MoveLeft()
	}
}

// PlayerSize returns the player sprite size in pixels.
func (s *Sim) PlayerSize() float64 {
	return s.lanes.Width() * s.cfg.Player.SizeRatio
}

// PlayerX returns the player's left edge for a lane.
func (s *Sim) PlayerX(lane int) float64 {
	return s.lanes.LaneToX(lane) + (s.lanes.Width()-s.PlayerSize())/2
}

// PlayerBox returns the authoritative player bounding box.
func (s *Sim) PlayerBox() core.RectF {
	size := s.PlayerSize()
	y := s.view.Height*s.cfg.Player.YRatio - size/2
	return core.Square(s.PlayerX(s.st.Lane), y, size)
}

// Tick advances one frame: clock, decay, spawning, movement and collisions,
// then score and difficulty. It does nothing unless the session is playing.
func (s *Sim) Tick() core.GameState {
	if s.st.Phase != core.PhasePlaying || s.exitRequested {
		return s.State()
	}

	s.st.Tick++
	s.st.Elapsed += s.step

	s.st.Vitals.Decay()

	if s.spawner.ShouldSpawn(s.st.Elapsed, s.st.LastSpawn, s.st.Vitals.Difficulty) {
		s.st.NextWave++
		wave, _ := s.spawner.Wave(s.lanes, s.st.NextWave, &s.st.NextID)
		s.st.Objects = append(s.st.Objects, wave...)
		s.st.LastSpawn = s.st.Elapsed
	}

	res := s.collider.Advance(s.st.Objects, s.PlayerBox(), s.st.Vitals.Difficulty)
	s.st.Objects = res.Remaining
	for _, hit := range res.Hits {
		amount := s.heal.Heal(hit.Kind)
		full := s.st.Vitals.Heal(amount)
		s.hooks.Collect(string(hit.Kind), amount)
		if full && s.st.Phase == core.PhasePlaying {
			s.gameOver()
		}
	}
	if s.st.Phase != core.PhasePlaying {
		return s.State()
	}

	if s.st.Vitals.Bookkeep(s.st.Tick) {
		s.hooks.ScoreChange(s.st.Vitals.Score)
	}
	return s.State()
}

func (s *Sim) gameOver() {
	s.st.Phase = core.PhaseGameOver
	s.st.FinalScore = s.st.Vitals.Score
	s.highScore = max(s.highScore, s.st.FinalScore)
	s.hooks.GameOver(s.st.FinalScore)
}

// State summarises the session for the platform.
func (s *Sim) State() core.GameState {
	return core.GameState{
		Phase:         s.st.Phase,
		Score:         s.st.Vitals.Score,
		GameOver:      s.st.Phase == core.PhaseGameOver,
		Paused:        s.st.Phase == core.PhasePaused,
		ExitRequested: s.exitRequested,
	}
}

// SetViewport rescales the playfield. Objects keep their lane and their
// relative height.
func (s *Sim) SetViewport(view Viewport) {
	if view.Width <= 0 || view.Height <= 0 || view == s.view {
		return
	}
	sy := view.Height / s.view.Height

	s.lanes = NewLaneModel(s.cfg.Lanes, view.Width)
	for i := range s.st.Objects {
		o := &s.st.Objects[i]
		o.X = s.lanes.LaneToX(o.Lane)
		o.Size = s.lanes.Width()
		o.Y *= sy
	}
	s.view = view
	s.collider.DespawnY = view.Height + s.cfg.Objects.DespawnMargin
}
