// Package notation resolves textual-notation formatters by name.
//
// It is a thin registry in front of the graph.Formatter protocol. The
// DOT-like notation from pkg/dot is registered under "dot" by default;
// applications can add their own notations with [Register].
package notation

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/lkarlsson/dotgraph/pkg/dot"
	"github.com/lkarlsson/dotgraph/pkg/graph"
)

// ErrUnknownNotation is returned by [Lookup] for unregistered names.
var ErrUnknownNotation = errors.New("notation: unknown notation")

var (
	mu       sync.RWMutex
	registry = map[string]graph.Formatter{
		"dot": dot.New(),
	}
)

// Register makes a formatter available under the given name, replacing any
// previous registration.
func Register(name string, f graph.Formatter) {
	mu.Lock()
	defer mu.Unlock()
	registry[name] = f
}

// Lookup resolves a notation name to its formatter.
func Lookup(name string) (graph.Formatter, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNotation, name)
	}
	return f, nil
}

// Names returns the registered notation names in sorted order.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
