// Package tui provides the Bubble Tea integration for Fat Runner.
// It handles the terminal UI loop, input mapping, menus and SSH sessions.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Gen identifies the
// frame loop run that scheduled it.
type TickMsg struct {
	Gen  uint64
	Time time.Time
}

// FrameLoop schedules per-frame ticks. Stopping bumps the generation, so a
// tick that was already in flight is rejected by Accept and never
// reschedules itself.
type FrameLoop struct {
	rate    int
	gen     uint64
	running bool
}

// NewFrameLoop creates a stopped loop ticking rate times per second.
func NewFrameLoop(rate int) FrameLoop {
	if rate <= 0 {
		rate = 60
	}
	return FrameLoop{rate: rate}
}

// Running reports whether ticks are being scheduled.
func (l *FrameLoop) Running() bool {
	return l.running
}

// Start begins a new run and returns its first tick. It returns nil when
// the loop is already running.
func (l *FrameLoop) Start() tea.Cmd {
	if l.running {
		return nil
	}
	l.gen++
	l.running = true
	return l.schedule()
}

// Stop halts the loop. Calling it again has no effect.
func (l *FrameLoop) Stop() {
	if !l.running {
		return
	}
	l.running = false
	l.gen++
}

// Accept reports whether msg belongs to the current run.
func (l *FrameLoop) Accept(msg TickMsg) bool {
	return l.running && msg.Gen == l.gen
}

// Next schedules the following tick of the current run.
func (l *FrameLoop) Next() tea.Cmd {
	if !l.running {
		return nil
	}
	return l.schedule()
}

func (l *FrameLoop) schedule() tea.Cmd {
	gen := l.gen
	interval := time.Second / time.Duration(l.rate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}
