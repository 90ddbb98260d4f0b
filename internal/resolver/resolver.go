// Package resolver computes the dependency closure of a component
// selection. Dependencies always precede their dependents in the
// returned order; the queue package applies priorities afterwards.
package resolver

import (
	"fmt"
	"strings"

	"github.com/alpforge/alpforge/internal/catalog"
)

// CycleError reports a circular dependency. Path starts and ends with
// the same component id.
type CycleError struct {
	Path []string
}

func (e *CycleError) Error() string {
	return "circular dependency: " + strings.Join(e.Path, " -> ")
}

// UnknownIDError reports a requested or referenced id that is not in
// the catalog.
type UnknownIDError struct {
	ID string
}

func (e *UnknownIDError) Error() string {
	return fmt.Sprintf("unknown component id %q", e.ID)
}

// Resolve returns the transitive dependency closure of the requested
// ids. Each id appears exactly once, in post-order: a dependency never
// follows a component that needs it. The first cycle or unknown id
// aborts the whole call with no partial result.
func Resolve(cat *catalog.Catalog, requested []string) ([]string, error) {
	r := &resolution{
		cat:      cat,
		visiting: make(map[string]bool),
		resolved: make(map[string]bool),
	}

	for _, id := range requested {
		if err := r.visit(id); err != nil {
			return nil, err
		}
	}

	return r.order, nil
}

type resolution struct {
	cat      *catalog.Catalog
	visiting map[string]bool // current DFS path
	path     []string        // same path, in order, for diagnostics
	resolved map[string]bool
	order    []string
}

func (r *resolution) visit(id string) error {
	if r.resolved[id] {
		return nil
	}
	if r.visiting[id] {
		return &CycleError{Path: r.cyclePath(id)}
	}

	comp, ok := r.cat.Get(id)
	if !ok {
		return &UnknownIDError{ID: id}
	}

	r.visiting[id] = true
	r.path = append(r.path, id)

	for _, dep := range comp.Dependencies {
		if err := r.visit(dep); err != nil {
			return err
		}
	}

	r.path = r.path[:len(r.path)-1]
	delete(r.visiting, id)

	r.resolved[id] = true
	r.order = append(r.order, id)
	return nil
}

// cyclePath trims the DFS path to the loop and closes it, so the error
// reads a -> b -> c -> a.
func (r *resolution) cyclePath(id string) []string {
	start := 0
	for i, p := range r.path {
		if p == id {
			start = i
			break
		}
	}
	cycle := append([]string{}, r.path[start:]...)
	return append(cycle, id)
}
