package catalog

import _ "embed"

//go:embed catalog.yaml
var defaultCatalog []byte

// Default parses the catalog shipped inside the binary.
func Default() (*Catalog, []Warning, error) {
	return Parse(defaultCatalog)
}
