package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/fat-runner/internal/core"
	"github.com/vovakirdan/fat-runner/internal/registry"
	"github.com/vovakirdan/fat-runner/internal/storage"
)

// SoundPlayer plays game sound effects. *audio.SoundManager implements it.
type SoundPlayer interface {
	PlayEat(kind string, heal float64)
	PlayGameOver()
}

// Options configures a game model beyond the runtime config.
type Options struct {
	Player     string      // Recorded with scores; "local" when empty
	Difficulty string      // Preset name; empty keeps the config default
	Logger     *log.Logger // Nil discards
	Sound      SoundPlayer // Nil is silent
	Embedded   bool        // Exiting returns to a menu instead of quitting
}

// difficultySetter is implemented by games with per-instance presets.
type difficultySetter interface {
	SetDifficulty(preset string)
}

// tickCounter is implemented by games that report their simulation tick.
type tickCounter interface {
	Ticks() int
}

// session holds the services the game hooks report into. It lives behind a
// pointer so hooks keep working across Bubble Tea's model copies.
type session struct {
	game       registry.Game
	player     string
	difficulty string
	store      *storage.Store
	logger     *log.Logger
	sound      SoundPlayer
}

func (s *session) ticks() int {
	if tc, ok := s.game.(tickCounter); ok {
		return tc.Ticks()
	}
	return 0
}

func (s *session) hooks() core.Hooks {
	return core.Hooks{
		OnGameOver: func(finalScore int) {
			s.logger.Info("game over", "score", finalScore, "ticks", s.ticks())
			if s.sound != nil {
				s.sound.PlayGameOver()
			}
			if s.store == nil {
				return
			}
			_, err := s.store.SaveResult(storage.Result{
				GameID:     s.game.ID(),
				Player:     s.player,
				Difficulty: s.difficulty,
				Score:      finalScore,
				Ticks:      s.ticks(),
			})
			if err != nil {
				s.logger.Warn("could not save score", "error", err)
			}
		},
		OnScoreChange: func(newScore int) {
			s.logger.Debug("score", "value", newScore)
		},
		OnPauseRequested: func() {
			s.logger.Info("pause requested", "ticks", s.ticks())
		},
		OnCollect: func(kind string, heal float64) {
			s.logger.Debug("collected", "kind", kind, "heal", heal)
			if s.sound != nil {
				s.sound.PlayEat(kind, heal)
			}
		},
	}
}

// GameModel is the Bubble Tea model for running a game.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	keyMapper  *KeyMapper
	loop       FrameLoop
	session    *session
	gameState  core.GameState
	embedded   bool // Part of a menu flow; exiting returns instead of quitting
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model for the given game and resets it onto its
// start screen.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	player := opts.Player
	if player == "" {
		player = "local"
	}

	sess := &session{
		game:       game,
		player:     player,
		difficulty: opts.Difficulty,
		store:      store,
		logger:     logger,
		sound:      opts.Sound,
	}

	if ds, ok := game.(difficultySetter); ok && opts.Difficulty != "" {
		ds.SetDifficulty(opts.Difficulty)
	}
	game.SetHooks(sess.hooks())
	game.Reset(cfg)
	logger.Info("game ready", "game", game.ID(), "difficulty", opts.Difficulty, "seed", cfg.Seed)

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		loop:       NewFrameLoop(cfg.TickRate),
		session:    sess,
		gameState:  game.State(),
		embedded:   opts.Embedded,
	}
}

// Init returns nothing: ticks only start once play begins.
func (m GameModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		if m.keyMapper.MapMouseToFrame(msg, &m.inputFrame) {
			return m.apply()
		}
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick(msg)
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.loop.Stop()
		m.quitting = true
		return m, tea.Quit
	}
	return m.apply()
}

// apply hands the pending input to the game and syncs the frame loop with
// the resulting phase.
func (m GameModel) apply() (tea.Model, tea.Cmd) {
	if m.inputFrame.Empty() {
		return m, nil
	}
	// A restart must not race a tick scheduled for the previous run.
	if m.inputFrame.Has(core.ActionRestart) || m.inputFrame.Has(core.ActionConfirm) {
		m.loop.Stop()
	}
	before := m.gameState.Phase

	state := m.game.Apply(m.inputFrame)
	m.inputFrame.Clear()

	switch {
	case before != core.PhasePlaying && state.Phase == core.PhasePlaying:
		m.session.logger.Info("playing", "from", before.String())
	case before != state.Phase:
		m.session.logger.Info("phase", "from", before.String(), "to", state.Phase.String())
	}
	cmd := m.sync(state)
	return m, cmd
}

// handleResize processes window resize events.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if m.gameState.Phase == core.PhaseNotStarted {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.loop.Accept(msg) {
		return m, nil
	}
	result := m.game.Step()
	if cmd := m.sync(result.State); cmd != nil {
		return m, cmd
	}
	// Only an accepted tick schedules the next one.
	return m, m.loop.Next()
}

// sync records the state and starts or stops the frame loop to match it.
// It never schedules a tick for a loop that is already running.
func (m *GameModel) sync(state core.GameState) tea.Cmd {
	m.gameState = state

	if state.ExitRequested {
		m.loop.Stop()
		m.session.logger.Info("exit", "score", state.Score)
		m.backToMenu = true
		if m.embedded {
			return nil
		}
		return tea.Quit
	}

	if !state.Running() {
		m.loop.Stop()
		return nil
	}
	return m.loop.Start()
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".fatrunner", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.session.logger.Warn("screenshot", "error", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	if err := os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600); err != nil {
		m.session.logger.Warn("screenshot", "error", err)
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last known game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// Ticking reports whether the frame loop is scheduling ticks.
func (m GameModel) Ticking() bool {
	return m.loop.Running()
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the player left the game screen rather than
// quitting the program.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a single game and blocks until the
// player quits or leaves the game screen. back reports the latter.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) (back bool, err error) {
	model := NewGameModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(GameModel)
	return ok && m.BackToMenu(), nil
}
