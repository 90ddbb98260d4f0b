// Package queue orders a resolved component set into the final
// installation sequence.
package queue

import (
	"sort"

	"github.com/alpforge/alpforge/internal/catalog"
	"github.com/alpforge/alpforge/internal/consts"
)

// Order sorts the ids by ascending priority. The sort is stable, so
// equal priorities keep the resolver's dependency-respecting order.
// Priority wins across dependency edges; the shipped catalog gives
// dependencies strictly lower numbers than their dependents, so the
// two orders coincide in practice.
func Order(cat *catalog.Catalog, ids []string) []string {
	ordered := make([]string, len(ids))
	copy(ordered, ids)

	sort.SliceStable(ordered, func(i, j int) bool {
		return priority(cat, ordered[i]) < priority(cat, ordered[j])
	})

	return ordered
}

func priority(cat *catalog.Catalog, id string) int {
	if comp, ok := cat.Get(id); ok {
		return comp.Priority
	}
	return consts.DefaultPriority
}
