package fatrunner

import (
	"math"
	"math/rand"
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/fat-runner/internal/config"
	"github.com/vovakirdan/fat-runner/internal/core"
)

func newTestSim(seed int64) *Sim {
	return NewSim(config.DefaultFatRunnerConfig(), Viewport{Width: 640, Height: 368},
		rand.New(rand.NewSource(seed)), time.Second/60)
}

// drop places an object directly into the session.
func drop(s *Sim, kind Kind, lane int, y float64) {
	s.st.NextID++
	s.st.Objects = append(s.st.Objects, FallingObject{
		ID:   s.st.NextID,
		Kind: kind,
		Lane: lane,
		X:    s.lanes.LaneToX(lane),
		Y:    y,
		Size: s.lanes.Width(),
	})
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSimStartsOnStartScreen(t *testing.T) {
	s := newTestSim(1)
	snap := s.Snapshot()

	if snap.Phase != core.PhaseNotStarted {
		t.Errorf("phase = %v, want NotStarted", snap.Phase)
	}
	if snap.Lane != 2 || snap.Health != 30 || snap.Score != 0 || snap.Difficulty != 1.0 {
		t.Errorf("initial snapshot = %+v", snap)
	}

	s.Tick()
	if s.Snapshot().Tick != 0 {
		t.Error("tick advanced before start")
	}
}

func TestPlayerPlacement(t *testing.T) {
	s := newTestSim(1)
	box := s.PlayerBox()

	if !approx(box.W, 115.2) {
		t.Errorf("player size = %v, want 115.2", box.W)
	}
	if !approx(box.CenterX(), 320) {
		t.Errorf("player centre x = %v, want 320", box.CenterX())
	}
	if !approx(box.Y+box.H/2, 368*0.8) {
		t.Errorf("player centre y = %v, want %v", box.Y+box.H/2, 368*0.8)
	}
}

func TestCollectCoxinha(t *testing.T) {
	s := newTestSim(1)
	var collected []string
	var gameOvers int
	s.SetHooks(core.Hooks{
		OnCollect:  func(kind string, heal float64) { collected = append(collected, kind) },
		OnGameOver: func(int) { gameOvers++ },
	})
	s.Start()

	drop(s, "coxinha", 2, 200)
	s.Tick()

	snap := s.Snapshot()
	// One tick of decay, then the heal.
	if !approx(snap.Health, 49.9) {
		t.Errorf("health = %v, want 49.9", snap.Health)
	}
	if len(snap.Objects) != 0 {
		t.Errorf("objects = %d, want 0", len(snap.Objects))
	}
	if len(collected) != 1 || collected[0] != "coxinha" {
		t.Errorf("collected = %v, want [coxinha]", collected)
	}
	if gameOvers != 0 || snap.Phase != core.PhasePlaying {
		t.Errorf("unexpected game over: phase %v", snap.Phase)
	}

	s.Tick()
	if len(collected) != 1 {
		t.Errorf("object healed twice: %v", collected)
	}
}

func TestFullHealthEndsGame(t *testing.T) {
	s := newTestSim(1)
	var finals []int
	s.SetHooks(core.Hooks{OnGameOver: func(score int) { finals = append(finals, score) }})
	s.Start()

	s.st.Vitals.Score = 7
	s.st.Tick = 9 // The next tick would score
	drop(s, "batata", 2, 200)
	drop(s, "batata", 2, 190)
	drop(s, "batata", 2, 180)

	state := s.Tick()

	if !state.GameOver || state.Phase != core.PhaseGameOver {
		t.Fatalf("state = %+v, want game over", state)
	}
	if len(finals) != 1 || finals[0] != 7 {
		t.Errorf("OnGameOver calls = %v, want [7]", finals)
	}
	snap := s.Snapshot()
	if snap.Health != 100 {
		t.Errorf("health = %v, want 100", snap.Health)
	}
	if snap.Score != 7 || snap.FinalScore != 7 {
		t.Errorf("score = %d final = %d, want 7", snap.Score, snap.FinalScore)
	}
	if snap.HighScore != 7 {
		t.Errorf("high score = %d, want 7", snap.HighScore)
	}

	s.Tick()
	if s.Snapshot().Tick != 10 {
		t.Error("tick advanced after game over")
	}
}

func TestDifficultyAfter3000Ticks(t *testing.T) {
	s := newTestSim(3)
	s.Start()
	for i := 0; i < 3000; i++ {
		s.st.Objects = s.st.Objects[:0]
		s.Tick()
	}

	snap := s.Snapshot()
	if snap.Phase != core.PhasePlaying {
		t.Fatalf("phase = %v, want Playing", snap.Phase)
	}
	if snap.Difficulty != 2.0 {
		t.Errorf("difficulty = %v, want 2.0", snap.Difficulty)
	}
	if snap.Score != 300 {
		t.Errorf("score = %d, want 300", snap.Score)
	}
	if snap.Health != 0 {
		t.Errorf("health = %v, want 0 with nothing eaten", snap.Health)
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	s := newTestSim(1)
	s.Start()
	s.st.Vitals.Score = 12
	s.MoveRight()
	drop(s, "batata", 3, 200)
	drop(s, "batata", 3, 190)
	drop(s, "batata", 3, 180)
	drop(s, "pizza", 0, 0)
	s.Tick()
	if s.Phase() != core.PhaseGameOver {
		t.Fatalf("phase = %v, want GameOver", s.Phase())
	}

	s.Restart()
	snap := s.Snapshot()

	if snap.Phase != core.PhasePlaying {
		t.Errorf("phase = %v, want Playing", snap.Phase)
	}
	if snap.Health != 30 || snap.Score != 0 || snap.Difficulty != 1.0 {
		t.Errorf("health=%v score=%d difficulty=%v, want 30/0/1.0", snap.Health, snap.Score, snap.Difficulty)
	}
	if len(snap.Objects) != 0 {
		t.Errorf("objects = %d, want 0", len(snap.Objects))
	}
	if snap.Lane != 2 || snap.Tick != 0 {
		t.Errorf("lane=%d tick=%d, want 2/0", snap.Lane, snap.Tick)
	}
	if snap.HighScore != 12 {
		t.Errorf("high score = %d, want 12 kept across restart", snap.HighScore)
	}
}

func TestPauseHaltsTicks(t *testing.T) {
	s := newTestSim(1)
	s.Start()
	for i := 0; i < 5; i++ {
		s.Tick()
	}
	s.Pause()
	for i := 0; i < 10; i++ {
		s.Tick()
	}
	if got := s.Snapshot().Tick; got != 5 {
		t.Fatalf("tick = %d while paused, want 5", got)
	}

	s.MoveLeft()
	if s.Snapshot().Lane != 2 {
		t.Error("lane changed while paused")
	}

	s.Resume()
	s.Tick()
	if got := s.Snapshot().Tick; got != 6 {
		t.Errorf("tick = %d after resume, want 6", got)
	}
}

func TestLifecycleCommandsIdempotent(t *testing.T) {
	s := newTestSim(1)
	pauses := 0
	s.SetHooks(core.Hooks{OnPauseRequested: func() { pauses++ }})

	s.Resume()
	s.Pause()
	if s.Phase() != core.PhaseNotStarted {
		t.Fatalf("phase = %v, want NotStarted", s.Phase())
	}

	s.Start()
	s.Start()
	if s.Phase() != core.PhasePlaying {
		t.Fatalf("phase = %v, want Playing", s.Phase())
	}

	s.RequestPause()
	s.RequestPause()
	s.Pause()
	if s.Phase() != core.PhasePaused || pauses != 1 {
		t.Errorf("phase = %v pauses = %d, want Paused/1", s.Phase(), pauses)
	}

	s.Resume()
	s.Resume()
	if s.Phase() != core.PhasePlaying {
		t.Errorf("phase = %v, want Playing", s.Phase())
	}

	s.Exit()
	s.Exit()
	if !s.State().ExitRequested {
		t.Error("exit not requested")
	}
	s.Tick()
	if s.Snapshot().Tick != 0 {
		t.Error("tick advanced after exit")
	}
}

func TestTapMovesTowardPointer(t *testing.T) {
	s := newTestSim(1)
	s.Start()

	tests := []struct {
		x    float64
		want int
	}{
		{400, 3}, // Right of centre 320
		{445, 3}, // Within 10px of the new centre 448
		{455, 3},
		{459, 4},
		{100, 3},
		{0, 2},
	}
	for _, tt := range tests {
		s.Tap(tt.x)
		if got := s.Snapshot().Lane; got != tt.want {
			t.Errorf("Tap(%v) -> lane %d, want %d", tt.x, got, tt.want)
		}
	}
}

func TestSimDeterminism(t *testing.T) {
	run := func() Snapshot {
		s := newTestSim(99)
		s.Start()
		for i := 1; i <= 4000; i++ {
			switch {
			case i%37 == 0:
				s.MoveRight()
			case i%53 == 0:
				s.MoveLeft()
			}
			s.Tick()
		}
		return s.Snapshot()
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("runs differ:\n%+v\n%+v", a, b)
	}
}

func TestObjectIDsNeverRepeat(t *testing.T) {
	s := newTestSim(5)
	s.Start()

	seen := make(map[ObjectID]int) // id -> lane
	var maxID ObjectID
	for i := 0; i < 5000 && s.Phase() == core.PhasePlaying; i++ {
		s.Tick()
		var prev ObjectID
		for _, o := range s.Snapshot().Objects {
			if o.ID <= prev {
				t.Fatalf("tick %d: ids out of spawn order", i)
			}
			prev = o.ID
			if lane, ok := seen[o.ID]; ok {
				if lane != o.Lane {
					t.Fatalf("id %d reused for lane %d", o.ID, o.Lane)
				}
				continue
			}
			if o.ID <= maxID {
				t.Fatalf("new id %d not above %d", o.ID, maxID)
			}
			seen[o.ID] = o.Lane
			maxID = o.ID
		}
	}
	if len(seen) == 0 {
		t.Fatal("no objects spawned")
	}
}

func TestSetViewportKeepsSession(t *testing.T) {
	s := newTestSim(1)
	s.Start()
	drop(s, "pizza", 1, 184)

	s.SetViewport(Viewport{Width: 800, Height: 736})
	snap := s.Snapshot()

	if snap.LaneWidth != 160 {
		t.Errorf("lane width = %v, want 160", snap.LaneWidth)
	}
	o := snap.Objects[0]
	if o.X != 160 || o.Size != 160 || o.Y != 368 {
		t.Errorf("object = %+v, want x=160 size=160 y=368", o)
	}
	if snap.Phase != core.PhasePlaying || snap.Lane != 2 {
		t.Errorf("phase=%v lane=%d, want Playing/2", snap.Phase, snap.Lane)
	}
}
