// Package fatrunner implements Fat Runner, a five-lane runner where food
// falls toward the player. Eating heals, health drains every tick, and
// filling the health bar ends the run, so the goal is to dodge.
package fatrunner

import (
	"math/rand"

	"github.com/vovakirdan/fat-runner/internal/config"
	"github.com/vovakirdan/fat-runner/internal/core"
	"github.com/vovakirdan/fat-runner/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names fall back
// to the config file's own difficulty.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game adapts a Sim to the registry.Game interface and the terminal.
type Game struct {
	sim     *Sim
	runtime core.RuntimeConfig
	cfg     config.FatRunnerConfig
	hooks   core.Hooks
	preset  config.DifficultyPreset // Overrides difficultyPreset when set

	drawX     float64 // Animated player x, presentation only
	slideStep float64 // Pixels the animated x moves per tick
}

// New creates a new Fat Runner game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "fatrunner"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Fat Runner"
}

// Reset loads the config and starts a fresh session on the start screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.DefaultFatRunnerConfig()
	}
	config.ApplyPreset(&cfg, g.Difficulty())
	g.ResetWith(runtime, cfg, rand.New(rand.NewSource(runtime.Seed)))
}

// SetDifficulty selects a preset for this instance only, so concurrent
// sessions can play at different levels. It applies from the next Reset.
func (g *Game) SetDifficulty(preset string) {
	g.preset = config.ParsePreset(preset)
}

// Difficulty returns the preset in effect for this instance.
func (g *Game) Difficulty() config.DifficultyPreset {
	if g.preset != "" {
		return g.preset
	}
	return difficultyPreset
}

// ResetWith starts a fresh session with an explicit config and randomness.
func (g *Game) ResetWith(runtime core.RuntimeConfig, cfg config.FatRunnerConfig, rng Rand) {
	g.runtime = runtime
	g.cfg = cfg
	g.sim = NewSim(cfg, ViewportFor(cfg.Viewport, runtime.ScreenW, runtime.ScreenH), rng, runtime.TickDuration())
	g.sim.SetHooks(g.hooks)
	g.updateSlide()
	g.snapPlayer()
}

// ViewportFor converts a terminal size in cells to the playfield in pixels.
func ViewportFor(vp config.ViewportConfig, cols, rows int) Viewport {
	rows -= vp.HUDRows
	return Viewport{
		Width:  float64(max(cols, 1) * vp.CellWidth),
		Height: float64(max(rows, 1) * vp.CellHeight),
	}
}

// Resize adapts the playfield to a new terminal size mid-session.
func (g *Game) Resize(screenW, screenH int) {
	g.runtime.ScreenW = screenW
	g.runtime.ScreenH = screenH
	if g.sim == nil {
		return
	}
	g.sim.SetViewport(ViewportFor(g.cfg.Viewport, screenW, screenH))
	g.updateSlide()
	g.snapPlayer()
}

// SetHooks installs lifecycle callbacks.
func (g *Game) SetHooks(h core.Hooks) {
	g.hooks = h
	if g.sim != nil {
		g.sim.SetHooks(h)
	}
}

// Sim exposes the underlying simulation.
func (g *Game) Sim() *Sim {
	return g.sim
}

// Apply executes the discrete commands in the frame without ticking.
func (g *Game) Apply(in core.InputFrame) core.GameState {
	phase := g.sim.Phase()

	switch {
	case in.Has(core.ActionExit):
		g.sim.Exit()
	case in.Has(core.ActionRestart):
		if phase == core.PhasePaused || phase == core.PhaseGameOver {
			g.restart()
		}
	case in.Has(core.ActionBack):
		if phase == core.PhasePlaying {
			g.sim.RequestPause()
		} else {
			g.sim.Exit()
		}
	case in.Has(core.ActionPause):
		switch phase {
		case core.PhasePlaying:
			g.sim.RequestPause()
		case core.PhasePaused:
			g.sim.Resume()
		}
	case in.Has(core.ActionConfirm):
		switch phase {
		case core.PhaseNotStarted:
			g.sim.Start()
		case core.PhasePaused:
			g.sim.Resume()
		case core.PhaseGameOver:
			g.restart()
		}
	}

	if in.Has(core.ActionLeft) {
		g.sim.MoveLeft()
	}
	if in.Has(core.ActionRight) {
		g.sim.MoveRight()
	}
	if in.Has(core.ActionTap) {
		switch g.sim.Phase() {
		case core.PhaseNotStarted:
			g.sim.Start()
		case core.PhasePlaying:
			g.sim.Tap(g.TapX(in.Pointer))
		}
	}

	return g.State()
}

// TapX converts a pointer cell to the pixel x at the centre of that cell.
func (g *Game) TapX(p core.Pointer) float64 {
	return (float64(p.X) + 0.5) * float64(g.cfg.Viewport.CellWidth)
}

func (g *Game) restart() {
	g.sim.Restart()
	g.snapPlayer()
}

// Step advances the simulation by one tick.
func (g *Game) Step() core.StepResult {
	state := g.sim.Tick()
	g.slide()
	return core.StepResult{State: state}
}

// updateSlide derives the per-tick slide distance from slide_ms.
func (g *Game) updateSlide() {
	ticks := float64(g.cfg.Player.SlideMS) * float64(max(g.runtime.TickRate, 1)) / 1000
	if ticks < 1 {
		g.slideStep = 0
		return
	}
	g.slideStep = g.sim.Lanes().Width() / ticks
}

func (g *Game) snapPlayer() {
	g.drawX = g.sim.PlayerBox().X
}

// slide eases the drawn player toward the authoritative lane.
func (g *Game) slide() {
	target := g.sim.PlayerBox().X
	if g.slideStep == 0 {
		g.drawX = target
		return
	}
	switch {
	case g.drawX < target:
		g.drawX = min(target, g.drawX+g.slideStep)
	case g.drawX > target:
		g.drawX = max(target, g.drawX-g.slideStep)
	}
}

// Ticks returns the number of ticks played since the last restart.
func (g *Game) Ticks() int {
	return g.sim.Ticks()
}

// DrawX returns the animated player x in pixels.
func (g *Game) DrawX() float64 {
	return g.drawX
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.sim.State()
}

// Register the game with the registry
func init() {
	registry.Register("fatrunner", func() registry.Game {
		return New()
	})
}
