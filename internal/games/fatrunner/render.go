package fatrunner

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/fat-runner/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar  = '█'
	LaneChar    = '┊'
	BarFull     = '█'
	BarEmpty    = '░'
	UnknownFood = '●'
)

type foodStyle struct {
	glyph rune
	color core.Color
}

var foodStyles = map[Kind]foodStyle{
	"coxinha": {'▲', core.ColorOrange},
	"pizza":   {'◣', core.ColorYellow},
	"refri":   {'▮', core.ColorRed},
	"batata":  {'≡', core.ColorBrightYellow},
}

func styleFor(k Kind) foodStyle {
	if s, ok := foodStyles[k]; ok {
		return s
	}
	return foodStyle{UnknownFood, core.ColorWhite}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.sim.Snapshot()
	hud := g.cfg.Viewport.HUDRows

	g.drawLanes(dst, snap, hud)
	for _, obj := range snap.Objects {
		g.drawFood(dst, obj, hud)
	}
	g.drawPlayer(dst, snap, hud)
	g.drawHUD(dst, snap)

	switch snap.Phase {
	case core.PhaseNotStarted:
		g.drawCenteredMessage(dst, core.ColorBrightGreen, "FAT RUNNER", "TAP TO START",
			"←/→ or click to change lane", "Dodge the food!")
	case core.PhasePaused:
		g.drawCenteredMessage(dst, core.ColorYellow, "PAUSED",
			"Enter/P resume  R restart  Esc exit")
	case core.PhaseGameOver:
		g.drawCenteredMessage(dst, core.ColorBrightRed, "GAME OVER",
			fmt.Sprintf("Score: %d", snap.FinalScore),
			fmt.Sprintf("Best: %d", snap.HighScore),
			"Enter/R restart  Esc exit")
	}
}

// cellRect maps a pixel box onto terminal cells below the HUD.
func (g *Game) cellRect(box core.RectF, hud int) core.Rect {
	cw := float64(g.cfg.Viewport.CellWidth)
	ch := float64(g.cfg.Viewport.CellHeight)
	x := int(math.Floor(box.X / cw))
	y := int(math.Floor(box.Y/ch)) + hud
	w := max(1, int(math.Round(box.W/cw)))
	h := max(1, int(math.Round(box.H/ch)))
	return core.NewRect(x, y, w, h)
}

func (g *Game) drawLanes(dst *core.Screen, snap Snapshot, hud int) {
	cw := float64(g.cfg.Viewport.CellWidth)
	for i := 1; i < len(snap.LaneX); i++ {
		x := int(math.Round(snap.LaneX[i] / cw))
		for y := hud; y < dst.Height(); y++ {
			dst.SetColor(x, y, LaneChar, core.ColorGray)
		}
	}
}

func (g *Game) drawFood(dst *core.Screen, obj FallingObject, hud int) {
	r := g.cellRect(obj.Box(), hud)
	// Keep a one-cell margin so neighbouring lanes stay apart.
	if r.W > 2 {
		r.X++
		r.W -= 2
	}
	style := styleFor(obj.Kind)
	clipped := r
	if clipped.Y < hud {
		clipped.H -= hud - clipped.Y
		clipped.Y = hud
	}
	if clipped.H <= 0 {
		return
	}
	dst.DrawRect(clipped, style.glyph, style.color)

	label := string(obj.Kind)
	midY := r.Y + r.H/2
	if midY >= hud && len(label) <= r.W {
		dst.DrawTextColor(r.X+(r.W-len(label))/2, midY, label, core.ColorBrightWhite)
	}
}

func (g *Game) drawPlayer(dst *core.Screen, snap Snapshot, hud int) {
	box := snap.Player
	box.X = g.drawX
	r := g.cellRect(box, hud)

	face, color := "^_^", core.ColorBrightGreen
	if snap.Health/snap.MaxHealth > 0.75 {
		face, color = "@_@", core.ColorBrightRed
	}
	dst.DrawRect(r, PlayerChar, color)
	if r.W >= 3 && r.H >= 2 {
		dst.DrawTextColor(r.X+(r.W-3)/2, r.Y+r.H/3, face, core.ColorBrightWhite)
	}
}

// HealthBar renders health as a fixed-width bar, e.g. "███░░░".
func HealthBar(health, maxHealth float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := 0
	if maxHealth > 0 {
		filled = core.Clamp(int(math.Round(health/maxHealth*float64(width))), 0, width)
	}
	return strings.Repeat(string(BarFull), filled) + strings.Repeat(string(BarEmpty), width-filled)
}

func (g *Game) drawHUD(dst *core.Screen, snap Snapshot) {
	frac := 0.0
	if snap.MaxHealth > 0 {
		frac = snap.Health / snap.MaxHealth
	}
	barColor := core.ColorGreen
	switch {
	case frac > 0.8:
		barColor = core.ColorRed
	case frac > 0.5:
		barColor = core.ColorYellow
	}

	dst.DrawTextColor(1, 0, "HP ", core.ColorWhite)
	bar := HealthBar(snap.Health, snap.MaxHealth, 20)
	dst.DrawTextColor(4, 0, bar, barColor)
	dst.DrawText(25, 0, fmt.Sprintf("%3.0f/%.0f", snap.Health, snap.MaxHealth))

	right := fmt.Sprintf("Score: %d  Best: %d  x%.1f ", snap.Score, snap.HighScore, snap.Difficulty)
	dst.DrawText(dst.Width()-len(right), 0, right)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, titleColor core.Color, title string, lines ...string) {
	w := dst.Width()
	h := dst.Height()

	boxW := len([]rune(title))
	for _, l := range lines {
		boxW = max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines) + 4
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)

	dst.DrawTextColor(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, titleColor)
	for i, l := range lines {
		dst.DrawText(boxX+(boxW-len([]rune(l)))/2, boxY+3+i, l)
	}
}
