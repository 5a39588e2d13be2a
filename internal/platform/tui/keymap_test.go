package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

func TestKeyMapActions(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"w", keyMsg("w"), core.ActionUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"s", keyMsg("s"), core.ActionDown},
		{"a", keyMsg("a"), core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionConfirm},
		{"esc", keyMsg("esc"), core.ActionBack},
		{"r", keyMsg("r"), core.ActionRestart},
		{"m", keyMsg("m"), core.ActionMute},
		{"q", keyMsg("q"), core.ActionQuit},
		{"ctrl+c is platform only", keyMsg("ctrl+c"), core.ActionNone},
		{"unbound", keyMsg("x"), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.Action(tt.msg); got != tt.want {
				t.Errorf("Action(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestHeldKeysRepeat(t *testing.T) {
	h := newHeldKeys()
	now := time.Now()

	h.press(core.ActionLeft, now)
	// An auto-repeat late in the first hold must not shorten it.
	h.press(core.ActionLeft, now.Add(400*time.Millisecond))

	frame := core.NewInputFrame()
	h.apply(&frame, now.Add(449*time.Millisecond))
	if !frame.Has(core.ActionLeft) {
		t.Error("left should still be held inside the first hold")
	}

	// Repeats keep extending the hold.
	h.press(core.ActionLeft, now.Add(500*time.Millisecond))
	frame = core.NewInputFrame()
	h.apply(&frame, now.Add(500*time.Millisecond+repeatHold-time.Millisecond))
	if !frame.Has(core.ActionLeft) {
		t.Error("left should be held after a repeat")
	}
}

func TestHeldKeysOppositeReleases(t *testing.T) {
	h := newHeldKeys()
	now := time.Now()

	h.press(core.ActionLeft, now)
	h.press(core.ActionUp, now)
	h.press(core.ActionRight, now.Add(10*time.Millisecond))

	frame := core.NewInputFrame()
	h.apply(&frame, now.Add(20*time.Millisecond))
	if frame.Has(core.ActionLeft) {
		t.Error("pressing right should release left")
	}
	if !frame.Has(core.ActionRight) || !frame.Has(core.ActionUp) {
		t.Errorf("expected right and up held, got %v", frame.Actions)
	}
}

func TestHeldKeysIgnoresNonDirections(t *testing.T) {
	h := newHeldKeys()
	h.press(core.ActionConfirm, time.Now())

	if len(h.until) != 0 {
		t.Error("only directions can be held")
	}
}

func TestHeldKeysReleaseAll(t *testing.T) {
	h := newHeldKeys()
	now := time.Now()
	h.press(core.ActionDown, now)
	h.releaseAll()

	frame := core.NewInputFrame()
	h.apply(&frame, now)
	if frame.Has(core.ActionDown) {
		t.Error("releaseAll should drop every held direction")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawText(0, 0, "HP", core.ColorGray)
	s.DrawText(3, 0, "███", core.ColorBrightRed)
	s.DrawText(0, 1, "odd", core.Color(250))

	out := RenderScreen(s)
	for _, want := range []string{"HP", "███", "odd"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered screen missing %q", want)
		}
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 rows, got %q", out)
	}
}
