// Package registry maps game IDs to constructors. A game package registers
// itself from init(), and the platform creates instances by ID, so the TUI
// and SSH layers never import a game directly.
package registry

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/termtris/internal/core"
)

// Game is driven by the platform one fixed tick at a time. Implementations
// hold pure simulation state and never import Bubble Tea.
type Game interface {
	// ID is the stable key used by the CLI and the play history.
	ID() string

	// Title is the display name.
	Title() string

	// Reset starts a new game for the given screen size, tick rate and seed.
	Reset(cfg core.RuntimeConfig)

	// Step applies one frame of input and advances the simulation.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst.
	Render(dst *core.Screen)

	// State reports the counters and the paused/game-over flags.
	State() core.GameState
}

// Resizer is implemented by games that can follow a terminal resize without
// restarting. The platform resets games that do not implement it.
type Resizer interface {
	Resize(width, height int)
}

// Factory builds a fresh game instance.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
)

// Register adds a factory under id. Registering the same id twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := factories[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
}

// Create returns a new instance of the game registered under id.
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
