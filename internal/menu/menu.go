// Package menu holds the multi-select state machine feeding the
// resolver its initial request, plus the interactive and
// non-interactive drivers around it.
package menu

import (
	"errors"

	"github.com/alpforge/alpforge/internal/catalog"
)

// ErrEmptySelection is returned by Confirm while nothing is selected.
var ErrEmptySelection = errors.New("nothing selected")

// ErrCancelled means the user left the menu without confirming.
var ErrCancelled = errors.New("selection cancelled")

// Model is the selection state: cursor position and selected set over
// a fixed item list. It never invokes installation logic itself.
type Model struct {
	items    []string // component ids in display order
	cursor   int
	selected map[string]bool
}

// NewModel builds a menu over the catalog's components, ascending by id.
func NewModel(cat *catalog.Catalog) *Model {
	return NewModelItems(cat.IDs())
}

// NewModelItems builds a menu over an explicit item list.
func NewModelItems(items []string) *Model {
	return &Model{
		items:    items,
		selected: make(map[string]bool),
	}
}

// Cursor returns the current cursor index.
func (m *Model) Cursor() int { return m.cursor }

// Items returns the display-order item list.
func (m *Model) Items() []string { return m.items }

// Up moves the cursor up, wrapping at the top.
func (m *Model) Up() {
	if len(m.items) == 0 {
		return
	}
	m.cursor--
	if m.cursor < 0 {
		m.cursor = len(m.items) - 1
	}
}

// Down moves the cursor down, wrapping at the bottom.
func (m *Model) Down() {
	if len(m.items) == 0 {
		return
	}
	m.cursor = (m.cursor + 1) % len(m.items)
}

// Toggle flips the membership of the item under the cursor.
func (m *Model) Toggle() {
	if len(m.items) == 0 {
		return
	}
	id := m.items[m.cursor]
	if m.selected[id] {
		delete(m.selected, id)
	} else {
		m.selected[id] = true
	}
}

// SelectAll marks every item.
func (m *Model) SelectAll() {
	for _, id := range m.items {
		m.selected[id] = true
	}
}

// ClearAll unmarks every item.
func (m *Model) ClearAll() {
	m.selected = make(map[string]bool)
}

// Select marks an item by id, independent of the cursor. Unknown ids
// are ignored.
func (m *Model) Select(id string) {
	for _, item := range m.items {
		if item == id {
			m.selected[id] = true
			return
		}
	}
}

// IsSelected reports whether an item is marked.
func (m *Model) IsSelected(id string) bool { return m.selected[id] }

// Selection returns the marked items in display order.
func (m *Model) Selection() []string {
	var out []string
	for _, id := range m.items {
		if m.selected[id] {
			out = append(out, id)
		}
	}
	return out
}

// Confirm hands over the selection. An empty selection is rejected so
// the caller can re-prompt.
func (m *Model) Confirm() ([]string, error) {
	sel := m.Selection()
	if len(sel) == 0 {
		return nil, ErrEmptySelection
	}
	return sel, nil
}
