package shooter

import (
	"math"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

const (
	hudRows     = 2   // rows reserved above the field
	cellAspect  = 2.0 // a terminal cell is about twice as tall as it is wide
	minFieldCol = 18
	minFieldRow = 12
)

// layout maps the logical field onto terminal cells, keeping the field's
// aspect ratio and centring it horizontally below the HUD.
type layout struct {
	originX, originY int
	cols, rows       int
	sx, sy           float64 // cells per field unit
}

func newLayout(screenW, screenH int, fieldW, fieldH float64) layout {
	rows := screenH - hudRows
	cols := int(math.Round(float64(rows) * cellAspect * fieldW / fieldH))
	if cols > screenW {
		cols = screenW
		rows = int(math.Round(float64(cols) * fieldH / (cellAspect * fieldW)))
	}
	if rows < 0 {
		rows = 0
	}
	l := layout{
		originX: (screenW - cols) / 2,
		originY: hudRows,
		cols:    cols,
		rows:    rows,
	}
	if fieldW > 0 && fieldH > 0 {
		l.sx = float64(cols) / fieldW
		l.sy = float64(rows) / fieldH
	}
	return l
}

func (l layout) tooSmall() bool {
	return l.cols < minFieldCol || l.rows < minFieldRow
}

// toCell maps a field position to the cell containing it.
func (l layout) toCell(p core.Vec2) (int, int) {
	return l.originX + int(math.Floor(p.X*l.sx)), l.originY + int(math.Floor(p.Y*l.sy))
}

// toRect maps a field box to cells. The result is at least one cell.
func (l layout) toRect(b core.Box) core.Rect {
	w := core.Max(1, int(math.Round(b.W*l.sx)))
	h := core.Max(1, int(math.Round(b.H*l.sy)))
	cx, cy := l.toCell(b.Center)
	return core.NewRect(cx-w/2, cy-h/2, w, h)
}

// toField maps the centre of a screen cell back to field coordinates.
func (l layout) toField(x, y float64) core.Vec2 {
	if l.sx == 0 || l.sy == 0 {
		return core.Vec2{X: -1, Y: -1}
	}
	return core.Vec2{
		X: (x + 0.5 - float64(l.originX)) / l.sx,
		Y: (y + 0.5 - float64(l.originY)) / l.sy,
	}
}

// fieldRect is the cell rectangle covered by the field.
func (l layout) fieldRect() core.Rect {
	return core.NewRect(l.originX, l.originY, l.cols, l.rows)
}

func inRect(r core.Rect, x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}
