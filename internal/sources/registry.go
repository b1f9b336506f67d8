// Package sources provides a global registry of named piece-source
// factories. Randomizers register themselves in init() functions, allowing
// callers to instantiate them by name without hardcoded dependencies.
package sources

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tetris-engine/internal/tetris"
)

// Factory is a function that creates a piece source from a seed.
type Factory func(seed int64) tetris.PieceSource

// Info contains metadata about a registered source.
type Info struct {
	Name        string
	Description string
}

var (
	factories    = make(map[string]Factory)
	descriptions = make(map[string]string)
	mu           sync.RWMutex
)

// Register adds a source factory to the registry.
// Typically called from an init() function.
// Panics if a source with the same name is already registered.
func Register(name, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("sources: source %q already registered", name))
	}

	factories[name] = f
	descriptions[name] = description
}

// New instantiates a source by name.
// Returns an error if the name is not registered.
func New(name string, seed int64) (tetris.PieceSource, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("sources: unknown source %q", name)
	}

	return f(seed), nil
}

// List returns information about all registered sources, sorted by name.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for name := range factories {
		result = append(result, Info{
			Name:        name,
			Description: descriptions[name],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Exists checks if a source with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
