// Package registry lets game packages publish themselves to the platform.
// A game calls Register from init(); the TUI and CLI look games up by ID and
// never import a game package's types directly.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Game is a fixed-step simulation driven by the platform.
// Implementations keep their logic free of terminal and Bubble Tea concerns.
type Game interface {
	// ID returns the identifier used on the command line (e.g. "invaders").
	ID() string

	// Title returns the display name.
	Title() string

	// Reset starts a fresh run. RuntimeConfig carries screen size, tick rate and seed.
	Reset(cfg core.RuntimeConfig)

	// Step applies the frame's actions and advances the simulation by one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the game into a pre-cleared screen buffer.
	Render(dst *core.Screen)

	// State returns score, game over and pause flags.
	State() core.GameState
}

// ActionHandler is implemented by games that apply input the moment it arrives
// instead of waiting for the next Step.
type ActionHandler interface {
	HandleAction(a core.Action) bool
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game instance.
type Factory func() Game

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

type entry struct {
	factory Factory
	title   string
}

// Register adds a game factory. It panics on a duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{factory: f, title: f().Title()}
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		result = append(result, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return result
}

// Create instantiates a game by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether a game ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
