package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/fat-runner/internal/core"
	"github.com/vovakirdan/fat-runner/internal/storage"
)

// fakeGame is a scripted game: Confirm starts, Back pauses or exits,
// Restart restarts, and the run ends after overAt ticks.
type fakeGame struct {
	phase   core.Phase
	exit    bool
	ticks   int
	overAt  int
	hooks   core.Hooks
	applies int
	taps    []core.Pointer
	resets  int
	resized [2]int
	preset  string
}

func (g *fakeGame) ID() string { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }
func (g *fakeGame) Render(dst *core.Screen) { dst.Clear() }
func (g *fakeGame) SetHooks(h core.Hooks) { g.hooks = h }
func (g *fakeGame) Ticks() int { return g.ticks }
func (g *fakeGame) SetDifficulty(preset string) { g.preset = preset }
func (g *fakeGame) Resize(w, h int) { g.resized = [2]int{w, h} }

func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.phase = core.PhaseNotStarted
}

func (g *fakeGame) State() core.GameState {
	return core.GameState{
		Phase:         g.phase,
		Score:         g.ticks / 10,
		GameOver:      g.phase == core.PhaseGameOver,
		Paused:        g.phase == core.PhasePaused,
		ExitRequested: g.exit,
	}
}

func (g *fakeGame) Apply(in core.InputFrame) core.GameState {
	g.applies++
	if in.Has(core.ActionTap) {
		g.taps = append(g.taps, in.Pointer)
	}
	switch {
	case in.Has(core.ActionExit):
		g.exit = true
	case in.Has(core.ActionRestart) && g.phase != core.PhasePlaying:
		g.phase, g.ticks = core.PhasePlaying, 0
	case in.Has(core.ActionBack):
		if g.phase == core.PhasePlaying {
			g.hooks.PauseRequested()
			g.phase = core.PhasePaused
		} else {
			g.exit = true
		}
	case in.Has(core.ActionConfirm), in.Has(core.ActionTap):
		if g.phase == core.PhaseNotStarted || g.phase == core.PhasePaused {
			g.phase = core.PhasePlaying
		}
	}
	return g.State()
}

func (g *fakeGame) Step() core.StepResult {
	if g.phase == core.PhasePlaying && !g.exit {
		g.ticks++
		if g.ticks == g.overAt {
			g.phase = core.PhaseGameOver
			g.hooks.GameOver(g.ticks / 10)
		}
	}
	return core.StepResult{State: g.State()}
}

type fakeSound struct {
	eats, overs int
}

func (s *fakeSound) PlayEat(string, float64) { s.eats++ }
func (s *fakeSound) PlayGameOver() { s.overs++ }

var testCfg = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}

func update(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm, cmd
}

func keyMsg(s string) tea.Msg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func currentTick(m GameModel) TickMsg {
	return TickMsg{Gen: m.loop.gen}
}

func TestGameModelTicksOnlyWhilePlaying(t *testing.T) {
	g := &fakeGame{overAt: -1}
	m := NewGameModel(g, nil, testCfg, Options{})

	if m.Ticking() {
		t.Fatal("loop running on the start screen")
	}

	m, cmd := update(t, m, keyMsg("enter"))
	if !m.Ticking() || cmd == nil {
		t.Fatal("confirm did not start the loop")
	}

	m, cmd = update(t, m, currentTick(m))
	if g.ticks != 1 || cmd == nil {
		t.Fatalf("ticks = %d, cmd nil = %v; want 1 and a next tick", g.ticks, cmd == nil)
	}

	inFlight := currentTick(m)
	m, _ = update(t, m, keyMsg("esc"))
	if m.State().Phase != core.PhasePaused || m.Ticking() {
		t.Fatalf("phase = %v ticking = %v, want paused and stopped", m.State().Phase, m.Ticking())
	}

	m, cmd = update(t, m, inFlight)
	if g.ticks != 1 || cmd != nil {
		t.Error("a tick scheduled before pause advanced the game")
	}

	m, cmd = update(t, m, keyMsg("enter"))
	if !m.Ticking() || cmd == nil {
		t.Error("resume did not restart the loop")
	}
	if m.loop.Accept(inFlight) {
		t.Error("stale tick accepted after resume")
	}
}

func TestGameModelGameOverSavesOnce(t *testing.T) {
	store, err := storage.Open()
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	g := &fakeGame{overAt: 25}
	sound := &fakeSound{}
	m := NewGameModel(g, store, testCfg, Options{Player: "ana", Difficulty: "hard", Sound: sound})
	if g.preset != "hard" {
		t.Errorf("preset = %q, want hard", g.preset)
	}

	m, _ = update(t, m, keyMsg("enter"))
	for i := 0; i < 40 && m.Ticking(); i++ {
		m, _ = update(t, m, currentTick(m))
	}

	if m.State().Phase != core.PhaseGameOver || m.Ticking() {
		t.Fatalf("phase = %v ticking = %v, want game over and stopped", m.State().Phase, m.Ticking())
	}
	if sound.overs != 1 {
		t.Errorf("game over sound played %d times, want 1", sound.overs)
	}

	scores, err := store.TopScores("fake", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d scores, want 1", len(scores))
	}
	got := scores[0]
	if got.Score != 2 || got.Player != "ana" || got.Difficulty != "hard" || got.Ticks != 25 {
		t.Errorf("saved %+v", got)
	}

	m, cmd := update(t, m, keyMsg("r"))
	if m.State().Phase != core.PhasePlaying || cmd == nil {
		t.Error("restart did not resume ticking")
	}
}

func TestGameModelExit(t *testing.T) {
	g := &fakeGame{overAt: -1}
	m := NewGameModel(g, nil, testCfg, Options{})
	m, _ = update(t, m, keyMsg("enter"))

	m, cmd := update(t, m, keyMsg("x"))
	if !m.BackToMenu() || m.IsQuitting() || cmd == nil {
		t.Fatal("standalone exit should end the program as a return to the menu")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("exit command is not tea.Quit")
	}
	if m.View() != "" {
		t.Error("view not empty after exit")
	}

	g = &fakeGame{overAt: -1}
	m = NewGameModel(g, nil, testCfg, Options{Embedded: true})
	m, _ = update(t, m, keyMsg("enter"))
	m, _ = update(t, m, keyMsg("esc"))
	m, cmd = update(t, m, keyMsg("esc"))
	if !m.BackToMenu() || m.IsQuitting() || cmd != nil {
		t.Errorf("embedded exit: back=%v quitting=%v", m.BackToMenu(), m.IsQuitting())
	}
	if m.Ticking() {
		t.Error("loop still running after exit")
	}
}

func TestGameModelQuitKey(t *testing.T) {
	m := NewGameModel(&fakeGame{}, nil, testCfg, Options{})
	m, cmd := update(t, m, keyMsg("q"))
	if !m.IsQuitting() || cmd == nil {
		t.Error("q did not quit")
	}
	if m.View() != "" {
		t.Error("view not empty after quit")
	}
}

func TestGameModelMouseTap(t *testing.T) {
	g := &fakeGame{}
	m := NewGameModel(g, nil, testCfg, Options{})

	m, _ = update(t, m, tea.MouseMsg{X: 30, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if g.applies != 1 || len(g.taps) != 1 {
		t.Fatalf("applied %d frames with %d taps, want 1 tap", g.applies, len(g.taps))
	}
	if g.taps[0] != (core.Pointer{X: 30, Y: 5}) {
		t.Errorf("tap at %+v, want 30,5", g.taps[0])
	}
	if !m.Ticking() {
		t.Error("tap on the start screen did not start the loop")
	}

	update(t, m, tea.MouseMsg{X: 30, Y: 5, Action: tea.MouseActionMotion})
	if g.applies != 1 {
		t.Error("mouse motion reached the game")
	}
}

func TestGameModelResize(t *testing.T) {
	g := &fakeGame{}
	m := NewGameModel(g, nil, testCfg, Options{})
	update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if g.resized != [2]int{100, 30} {
		t.Errorf("resized = %v, want 100x30", g.resized)
	}
	if g.resets != 1 {
		t.Errorf("resets = %d, want only the initial reset", g.resets)
	}
}

func TestGameModelInputKeepsOneTickChain(t *testing.T) {
	g := &fakeGame{overAt: -1}
	m := NewGameModel(g, nil, testCfg, Options{})

	m, cmd := update(t, m, keyMsg("enter"))
	if cmd == nil {
		t.Fatal("confirm did not start the loop")
	}

	inputs := []tea.Msg{
		tea.KeyMsg{Type: tea.KeyLeft},
		tea.KeyMsg{Type: tea.KeyRight},
		keyMsg("a"),
		tea.MouseMsg{X: 30, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
	}
	for _, in := range inputs {
		m, cmd = update(t, m, in)
		if cmd != nil {
			t.Errorf("input %v scheduled a tick while playing", in)
		}
	}
	if g.applies != 5 {
		t.Fatalf("applied %d frames, want 5", g.applies)
	}

	m, cmd = update(t, m, currentTick(m))
	if g.ticks != 1 || cmd == nil {
		t.Fatalf("ticks = %d after one frame, want 1 and a next tick", g.ticks)
	}
	m, _ = update(t, m, keyMsg("d"))
	if g.ticks != 1 || !m.Ticking() {
		t.Errorf("ticks = %d ticking = %v after a lane change", g.ticks, m.Ticking())
	}
}
