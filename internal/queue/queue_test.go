package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alpforge/alpforge/internal/catalog"
)

func TestOrderByPriority(t *testing.T) {
	cat, err := catalog.New([]catalog.Component{
		{ID: "a", Priority: 5},
		{ID: "b", Priority: 1},
		{ID: "c", Priority: 5},
	})
	require.NoError(t, err)

	// Resolver order: a, b, c. B has the lowest number and moves to
	// the front; a keeps its place before c (stable tie-break).
	got := Order(cat, []string{"a", "b", "c"})
	assert.Equal(t, []string{"b", "a", "c"}, got)
}

func TestOrderKeepsResolverOrderOnTies(t *testing.T) {
	cat, err := catalog.New([]catalog.Component{
		{ID: "x", Priority: 7},
		{ID: "y", Priority: 7},
		{ID: "z", Priority: 7},
	})
	require.NoError(t, err)

	got := Order(cat, []string{"z", "x", "y"})
	assert.Equal(t, []string{"z", "x", "y"}, got)
}

func TestOrderDoesNotMutateInput(t *testing.T) {
	cat, err := catalog.New([]catalog.Component{
		{ID: "a", Priority: 2},
		{ID: "b", Priority: 1},
	})
	require.NoError(t, err)

	in := []string{"a", "b"}
	_ = Order(cat, in)
	assert.Equal(t, []string{"a", "b"}, in)
}

func TestOrderIdempotent(t *testing.T) {
	cat, err := catalog.New([]catalog.Component{
		{ID: "a", Priority: 3},
		{ID: "b", Priority: 1},
		{ID: "c", Priority: 2},
	})
	require.NoError(t, err)

	first := Order(cat, []string{"a", "b", "c"})
	second := Order(cat, first)
	assert.Equal(t, first, second)
}
