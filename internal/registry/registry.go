// Package registry maps board variant IDs to game factories.
// Variants register themselves in init(), so the terminal frontend and the
// CLI can list and build them without importing each one by name.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-crossroad/internal/core"
)

// DefaultID is the variant started when none is named.
const DefaultID = "crossroad"

// Game is what the frontend drives: fixed ticks in, a screen buffer out.
// Implementations are pure simulation. They must not import Bubble Tea or
// touch the terminal; key mapping, tick timing, sound and run history all
// live in the frontend.
type Game interface {
	// ID returns the variant identifier (e.g. "crossroad_classic").
	// It names the variant on the command line and keys its run records.
	ID() string

	// Title returns a human-readable name for menus and the exit summary.
	Title() string

	// Reset builds a fresh session on the home screen.
	// The frontend calls it once before the first tick; later runs are
	// started from inside the game. cfg carries the seed, tick rate and
	// screen size.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	// in holds the actions pressed since the previous tick. It is a copy,
	// so the game may keep it.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame into dst.
	// The frontend clears dst before every call.
	Render(dst *core.Screen)

	// State returns the current score and screen flags.
	State() core.GameState
}

// GameInfo contains metadata about a registered variant.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a variant.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a factory under id.
// Panics if the id is already taken.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered variants sorted by ID.
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

// Create instantiates the variant registered under id.
// An empty id selects DefaultID.
func Create(id string) (Game, error) {
	if id == "" {
		id = DefaultID
	}

	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown variant %q", id)
	}
	return f(), nil
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
