package menu

import (
	"fmt"
	"os"
	"strings"

	"github.com/alpforge/alpforge/internal/catalog"
)

// ParseSelection turns a comma-separated id list (the --select flag)
// into a selection. Unknown ids are rejected here so the resolver
// never sees a typo from the command line.
func ParseSelection(cat *catalog.Catalog, value string) ([]string, error) {
	var ids []string
	for _, part := range strings.Split(value, ",") {
		id := strings.TrimSpace(part)
		if id == "" {
			continue
		}
		if _, ok := cat.Get(id); !ok {
			return nil, fmt.Errorf("unknown component id %q", id)
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, ErrEmptySelection
	}
	return ids, nil
}

// LoadSelectionFile reads a selection file: one id per line, blank
// lines and #-comments ignored.
func LoadSelectionFile(cat *catalog.Catalog, path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("selection file: %w", err)
	}

	var ids []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if _, ok := cat.Get(line); !ok {
			return nil, fmt.Errorf("selection file: unknown component id %q", line)
		}
		ids = append(ids, line)
	}
	if len(ids) == 0 {
		return nil, ErrEmptySelection
	}
	return ids, nil
}
