package shooter

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter/sim"
)

// Visual characters for rendering
const (
	PlayerChar       = '▲'
	PlayerBodyChar   = '█'
	EnemyChar        = '▼'
	EnemyBodyChar    = '▓'
	PlayerBulletChar = '│'
	EnemyBulletChar  = '┃'
	HealthChar       = '+'
	ShieldChar       = '◆'
	StarChar         = '·'
	BarFull          = '█'
	BarEmpty         = '░'
)

var (
	asteroidGlyphs  = []rune{'@', '●', '◉', '▒', '░'}
	explosionGlyphs = []rune{'*', '✶', '✷', '✸', '✹', '✺', '⁂', '※', '·'}
	starField       = makeStars(48)
)

// Render draws the current stage into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}
	g.layout = newLayout(dst.Width(), dst.Height(), g.cfg.Field.Width, g.cfg.Field.Height)
	if g.layout.tooSmall() {
		dst.DrawTextCentered(dst.Width()/2, dst.Height()/2, "Terminal too small", core.ColorBrightRed)
		return
	}

	g.drawBackdrop(dst)

	switch g.session.Stage() {
	case sim.StageMenu:
		g.drawTitle(dst, "SPACE SHOOTER", core.ColorBrightCyan)
		g.drawHint(dst, "space: start  m: sound  q: quit")
	case sim.StagePlay:
		g.drawWorld(dst)
		g.drawHUD(dst)
	case sim.StageGameOver:
		w := g.session.World()
		g.drawTitle(dst, "GAME OVER", core.ColorBrightRed)
		g.drawFieldText(dst, 200, fmt.Sprintf("Score: %d", w.Score), core.ColorWhite)
		g.drawFieldText(dst, 250, fmt.Sprintf("Level: %d", w.Level), core.ColorGray)
		g.drawHint(dst, "r: restart  ctrl+c: quit")
	}

	for _, b := range g.session.Buttons() {
		g.drawButton(dst, b)
	}
}

// drawBackdrop draws the frame around the field and the scrolling stars.
func (g *Game) drawBackdrop(dst *core.Screen) {
	l := g.layout
	fr := l.fieldRect()
	for y := fr.Y; y < fr.Bottom(); y++ {
		dst.SetColored(fr.X-1, y, '│', core.ColorDarkGray)
		dst.SetColored(fr.Right(), y, '│', core.ColorDarkGray)
	}

	scroll := g.session.World().Scroll
	h := g.cfg.Field.Height
	for _, s := range starField {
		p := core.Vec2{X: s.X * g.cfg.Field.Width, Y: math.Mod(s.Y*h+scroll, h)}
		x, y := l.toCell(p)
		dst.SetColored(x, y, StarChar, core.ColorDarkGray)
	}
}

func (g *Game) drawWorld(dst *core.Screen) {
	w := g.session.World()
	sizes := g.session.Sizes()

	for _, e := range w.Pickups {
		r := g.clip(g.layout.toRect(sizes.Box(e.Category, e.Pos)))
		if e.Category == sim.CategoryHealthPickup {
			dst.DrawRect(r, HealthChar, core.ColorBrightGreen)
		} else {
			dst.DrawRect(r, ShieldChar, core.ColorBrightBlue)
		}
	}
	for _, e := range w.Asteroids {
		r := g.clip(g.layout.toRect(sizes.Box(e.Category, e.Pos)))
		dst.DrawRect(r, asteroidGlyphs[e.Variant%len(asteroidGlyphs)], core.ColorGray)
	}
	for _, e := range w.Enemies {
		g.drawShip(dst, sizes.Box(e.Category, e.Pos), EnemyChar, EnemyBodyChar, core.ColorRed, false)
	}
	for _, e := range w.EnemyBullets {
		dst.DrawRect(g.clip(g.layout.toRect(sizes.Box(e.Category, e.Pos))), EnemyBulletChar, core.ColorBrightRed)
	}
	for _, e := range w.PlayerBullets {
		dst.DrawRect(g.clip(g.layout.toRect(sizes.Box(e.Category, e.Pos))), PlayerBulletChar, core.ColorBrightYellow)
	}

	if p := w.Player; p.Alive() {
		g.drawShip(dst, sizes.Box(sim.CategoryPlayer, p.Pos), PlayerChar, PlayerBodyChar, core.ColorBrightCyan, true)
	}

	for _, e := range w.Explosions {
		frame := int(e.Frame) % len(explosionGlyphs)
		color := core.ColorOrange
		if frame%2 == 1 {
			color = core.ColorBrightYellow
		}
		dst.DrawRect(g.clip(g.layout.toRect(sizes.Box(e.Category, e.Pos))), explosionGlyphs[frame], color)
	}
}

// drawShip fills a ship's box with its body glyph and marks the nose row.
func (g *Game) drawShip(dst *core.Screen, b core.Box, nose, body rune, c core.Color, up bool) {
	r := g.clip(g.layout.toRect(b))
	dst.DrawRect(r, body, c)
	if r.W == 0 || r.H == 0 {
		return
	}
	noseY := r.Bottom() - 1
	if up {
		noseY = r.Y
	}
	dst.SetColored(r.X+r.W/2, noseY, nose, c)
}

// clip restricts r to the field area so nothing is drawn over the HUD.
func (g *Game) clip(r core.Rect) core.Rect {
	fr := g.layout.fieldRect()
	x0 := core.Max(r.X, fr.X)
	y0 := core.Max(r.Y, fr.Y)
	x1 := core.Min(r.Right(), fr.Right())
	y1 := core.Min(r.Bottom(), fr.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return core.Rect{}
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// drawHUD draws the health and shield bars, score and level above the field.
func (g *Game) drawHUD(dst *core.Screen) {
	w := g.session.World()
	p := w.Player
	fr := g.layout.fieldRect()
	barW := core.Max(4, core.Min(20, fr.W/3))

	drawBar(dst, fr.X, 0, barW, "HP", p.HealthFraction(), int(p.Health), int(p.MaxHealth), core.ColorBrightRed)
	drawBar(dst, fr.X, 1, barW, "SH", p.ShieldFraction(), int(p.Shield), int(p.MaxShield), core.ColorBrightBlue)

	score := fmt.Sprintf("%d", w.Score)
	dst.DrawText(fr.Right()-len(score), 0, score, core.ColorWhite)
	level := fmt.Sprintf("LV %d", w.Level)
	dst.DrawText(fr.Right()-len(level), 1, level, core.ColorGray)
}

func drawBar(dst *core.Screen, x, y, width int, label string, frac float64, cur, maxV int, c core.Color) {
	filled := int(math.Round(frac * float64(width)))
	dst.DrawText(x, y, label+" ", core.ColorGray)
	bar := strings.Repeat(string(BarFull), filled) + strings.Repeat(string(BarEmpty), width-filled)
	dst.DrawText(x+len(label)+1, y, bar, c)
	dst.DrawText(x+len(label)+2+width, y, fmt.Sprintf("%d/%d", cur, maxV), core.ColorWhite)
}

func (g *Game) drawTitle(dst *core.Screen, text string, c core.Color) {
	g.drawFieldText(dst, 100, text, c)
}

// drawFieldText centres text on the field at field height y.
func (g *Game) drawFieldText(dst *core.Screen, y float64, text string, c core.Color) {
	cx, cy := g.layout.toCell(core.Vec2{X: g.cfg.Field.Width / 2, Y: y})
	dst.DrawTextCentered(cx, cy, text, c)
}

func (g *Game) drawHint(dst *core.Screen, text string) {
	fr := g.layout.fieldRect()
	dst.DrawTextCentered(fr.X+fr.W/2, fr.Bottom()-1, text, core.ColorDarkGray)
}

// buttonRect is the cell area a button is drawn in and clicked on. Buttons
// get a framed box when there is room for one, and a single row otherwise.
func (g *Game) buttonRect(b sim.Button) core.Rect {
	r := g.layout.toRect(b.Box)
	minW := len([]rune(b.Label)) + 4
	if r.W < minW {
		r.X -= (minW - r.W) / 2
		r.W = minW
	}
	if r.H >= 3 {
		return r
	}
	_, cy := g.layout.toCell(b.Box.Center)
	return core.NewRect(r.X, cy, r.W, 1)
}

func (g *Game) drawButton(dst *core.Screen, b sim.Button) {
	r := g.buttonRect(b)
	cx := r.X + r.W/2
	if r.H >= 3 {
		dst.DrawBox(r, core.ColorBlue)
		dst.DrawTextCentered(cx, r.Y+r.H/2, b.Label, core.ColorWhite)
		return
	}
	dst.DrawRect(r, ' ', core.ColorBlue)
	dst.DrawText(r.X, r.Y, "[", core.ColorBlue)
	dst.DrawText(r.Right()-1, r.Y, "]", core.ColorBlue)
	dst.DrawTextCentered(cx, r.Y, b.Label, core.ColorWhite)
}

// makeStars places n stars at fixed fractional positions using a small LCG,
// so every game shares the same sky.
func makeStars(n int) []core.Vec2 {
	stars := make([]core.Vec2, n)
	seed := uint32(2463534242)
	next := func() float64 {
		seed = seed*1664525 + 1013904223
		return float64(seed>>8) / float64(1<<24)
	}
	for i := range stars {
		stars[i] = core.Vec2{X: next(), Y: next()}
	}
	return stars
}
