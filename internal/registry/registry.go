// Package registry maps game IDs to factories. Games register themselves in
// init(), so the CLI, the TUI and the SSH server can create them by name
// without importing game packages directly.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Game is the contract between a game and the platform.
// Games never import Bubble Tea: the platform turns terminal events into
// InputFrames, calls Step once per tick and asks the game to Render into a
// cell buffer.
type Game interface {
	// ID returns the identifier used on the command line and in the score table.
	ID() string

	// Title returns a human-readable name.
	Title() string

	// Reset builds fresh game state. Called once before the first Step.
	// The RuntimeConfig carries screen size, tick rate and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the game by one logical step.
	// in.Elapsed is the wall-clock time since the previous step.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst. It must not change game state.
	Render(dst *core.Screen)

	// State returns score, level and the game over / quit flags.
	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game instance.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
)

// Register adds a game factory under id.
// Panics if id is already taken, since that can only be a programming error.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// Title returns the display title for id, or id itself if it is unknown.
func Title(id string) string {
	mu.RLock()
	defer mu.RUnlock()

	if t, ok := titles[id]; ok {
		return t
	}
	return id
}
