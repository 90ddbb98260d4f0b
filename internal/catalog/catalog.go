package catalog

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/alpforge/alpforge/internal/consts"
	"github.com/alpforge/alpforge/internal/core"
)

// Component is one installable unit of the catalog. Loaded once at
// startup, read-only afterwards.
type Component struct {
	ID           string   `yaml:"id" json:"id"`
	Name         string   `yaml:"name" json:"name"`
	Description  string   `yaml:"description,omitempty" json:"description,omitempty"`
	Category     string   `yaml:"category,omitempty" json:"category,omitempty"`
	Priority     int      `yaml:"priority" json:"priority"`
	Dependencies []string `yaml:"depends_on,omitempty" json:"depends_on,omitempty"`

	// Packages and Services drive the generic package-backed installer.
	Packages []string `yaml:"packages,omitempty" json:"packages,omitempty"`
	Services []string `yaml:"services,omitempty" json:"services,omitempty"`

	// When is an optional boolean expression gating installation.
	When string `yaml:"when,omitempty" json:"when,omitempty"`
}

// ConfigError is a fatal catalog problem: duplicate id or a dependency
// reference that does not resolve to a catalog entry.
type ConfigError struct {
	ID     string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("catalog: component %q: %s", e.ID, e.Reason)
	}
	return "catalog: " + e.Reason
}

// Warning is a non-fatal parse problem. The offending entry is skipped.
type Warning struct {
	Line   int
	Reason string
}

func (w Warning) String() string {
	if w.Line > 0 {
		return fmt.Sprintf("line %d: %s", w.Line, w.Reason)
	}
	return w.Reason
}

// Catalog is the full set of known components. Constructed once and
// passed explicitly to the resolver, queue and engine.
type Catalog struct {
	components map[string]Component
	order      []string // load order of ids
}

type document struct {
	Components []yaml.Node `yaml:"components"`
}

// rawComponent mirrors Component but keeps Priority as a pointer so an
// absent field falls back to the default constant.
type rawComponent struct {
	ID           string   `yaml:"id"`
	Name         string   `yaml:"name"`
	Description  string   `yaml:"description"`
	Category     string   `yaml:"category"`
	Priority     *int     `yaml:"priority"`
	Dependencies []string `yaml:"depends_on"`
	Packages     []string `yaml:"packages"`
	Services     []string `yaml:"services"`
	When         string   `yaml:"when"`
}

// Parse reads a catalog document. Malformed entries are skipped with a
// warning; duplicate ids and unknown dependency references are hard
// errors and no catalog is returned.
func Parse(data []byte) (*Catalog, []Warning, error) {
	comps, warnings, err := parseEntries(data)
	if err != nil {
		return nil, warnings, err
	}

	cat, err := New(comps)
	if err != nil {
		return nil, warnings, err
	}
	return cat, warnings, nil
}

// ParseRelaxed builds a catalog without enforcing the hard load errors:
// duplicate ids are skipped with a warning and unknown dependency
// references are kept. The validate command uses it so every entry gets
// a verdict.
func ParseRelaxed(data []byte) (*Catalog, []Warning, error) {
	comps, warnings, err := parseEntries(data)
	if err != nil {
		return nil, warnings, err
	}

	cat := &Catalog{components: make(map[string]Component)}
	for _, c := range comps {
		if _, dup := cat.components[c.ID]; dup {
			warnings = append(warnings, Warning{Reason: fmt.Sprintf("duplicate component id %q, entry skipped", c.ID)})
			continue
		}
		cat.components[c.ID] = c
		cat.order = append(cat.order, c.ID)
	}
	return cat, warnings, nil
}

func parseEntries(data []byte) ([]Component, []Warning, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, &ConfigError{Reason: "yaml parse failed: " + err.Error()}
	}

	var warnings []Warning
	var comps []Component
	for _, node := range doc.Components {
		var raw rawComponent
		if err := node.Decode(&raw); err != nil {
			warnings = append(warnings, Warning{Line: node.Line, Reason: "malformed entry skipped: " + err.Error()})
			continue
		}
		if raw.ID == "" {
			warnings = append(warnings, Warning{Line: node.Line, Reason: "entry without id skipped"})
			continue
		}

		priority := consts.DefaultPriority
		if raw.Priority != nil {
			priority = *raw.Priority
		}

		comps = append(comps, Component{
			ID:           raw.ID,
			Name:         raw.Name,
			Description:  raw.Description,
			Category:     raw.Category,
			Priority:     priority,
			Dependencies: raw.Dependencies,
			Packages:     raw.Packages,
			Services:     raw.Services,
			When:         raw.When,
		})
	}

	return comps, warnings, nil
}

// New builds a catalog from components, enforcing unique ids and that
// every dependency resolves to a catalog entry.
func New(comps []Component) (*Catalog, error) {
	cat := &Catalog{components: make(map[string]Component, len(comps))}

	for _, c := range comps {
		if _, dup := cat.components[c.ID]; dup {
			return nil, &ConfigError{ID: c.ID, Reason: "duplicate component id"}
		}
		cat.components[c.ID] = c
		cat.order = append(cat.order, c.ID)
	}

	for _, c := range comps {
		for _, dep := range c.Dependencies {
			if _, ok := cat.components[dep]; !ok {
				return nil, &ConfigError{ID: c.ID, Reason: fmt.Sprintf("depends on unknown component %q", dep)}
			}
		}
	}

	return cat, nil
}

// Load reads and parses a catalog file.
func Load(path string) (*Catalog, []Warning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, &ConfigError{Reason: "catalog file: " + err.Error()}
	}
	return Parse(data)
}

// Get looks up a component by id.
func (c *Catalog) Get(id string) (Component, bool) {
	comp, ok := c.components[id]
	return comp, ok
}

// Len returns the number of components.
func (c *Catalog) Len() int {
	return len(c.components)
}

// IDs returns all component ids, ascending.
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.components))
	for id := range c.components {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// All returns every component, ascending by id.
func (c *Catalog) All() []Component {
	comps := make([]Component, 0, len(c.components))
	for _, id := range c.IDs() {
		comps = append(comps, c.components[id])
	}
	return comps
}

// ByCategory returns the components of one category, ascending by id.
func (c *Catalog) ByCategory(category string) []Component {
	var comps []Component
	for _, comp := range c.All() {
		if comp.Category == category {
			comps = append(comps, comp)
		}
	}
	return comps
}

// Categories returns the distinct category labels, sorted.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var cats []string
	for _, comp := range c.components {
		if !seen[comp.Category] {
			seen[comp.Category] = true
			cats = append(cats, comp.Category)
		}
	}
	sort.Strings(cats)
	return cats
}

// Render expands templates in the display fields against the given
// data, usually the system context. Ids and the dependency graph are
// never templated.
func (c *Catalog) Render(data any) error {
	for id, comp := range c.components {
		name, err := core.ExecuteTemplate(comp.Name, data)
		if err != nil {
			return &ConfigError{ID: id, Reason: "name template: " + err.Error()}
		}
		desc, err := core.ExecuteTemplate(comp.Description, data)
		if err != nil {
			return &ConfigError{ID: id, Reason: "description template: " + err.Error()}
		}
		comp.Name = name
		comp.Description = desc
		c.components[id] = comp
	}
	return nil
}
