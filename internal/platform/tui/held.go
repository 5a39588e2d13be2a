package tui

import (
	"time"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Terminals report key presses and auto-repeats but never releases, so a
// direction counts as held for a while after each press.
const (
	// firstHold covers the keyboard's delay before auto-repeat starts.
	firstHold = 450 * time.Millisecond
	// repeatHold bridges the gap between two auto-repeat events.
	repeatHold = 120 * time.Millisecond
)

// heldKeys tracks which directions count as held.
type heldKeys struct {
	until map[core.Action]time.Time
}

func newHeldKeys() *heldKeys {
	return &heldKeys{until: make(map[core.Action]time.Time)}
}

// press records a direction key event at now. Pressing a direction
// releases its opposite.
func (h *heldKeys) press(a core.Action, now time.Time) {
	if !a.IsDirection() {
		return
	}
	hold := firstHold
	if t, ok := h.until[a]; ok && now.Before(t) {
		hold = repeatHold
	}
	if next := now.Add(hold); next.After(h.until[a]) {
		h.until[a] = next
	}
	delete(h.until, opposite(a))
}

// apply sets every still-held direction on frame and forgets expired ones.
func (h *heldKeys) apply(frame *core.InputFrame, now time.Time) {
	for a, t := range h.until {
		if now.Before(t) {
			frame.Set(a)
		} else {
			delete(h.until, a)
		}
	}
}

// releaseAll forgets every held direction.
func (h *heldKeys) releaseAll() {
	clear(h.until)
}

func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionUp:
		return core.ActionDown
	case core.ActionDown:
		return core.ActionUp
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	}
	return core.ActionNone
}
