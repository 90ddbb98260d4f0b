package catalog

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
)

type exportDoc struct {
	Components []Component `json:"components"`
}

// ExportJSON serializes the catalog to JSON. The document shape matches
// the YAML catalog, so feeding the output back through Parse yields an
// identical catalog.
func ExportJSON(c *Catalog) ([]byte, error) {
	doc := exportDoc{Components: c.All()}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// ExportEnv serializes the catalog to flat key=value lines. This format
// is lossy (descriptions and conditions are dropped); it exists for
// shell scripts that only need ids, priorities and dependency lists.
func ExportEnv(c *Catalog) (string, error) {
	vars := make(map[string]string)

	var ids []string
	for _, comp := range c.All() {
		ids = append(ids, comp.ID)
		prefix := "ALPFORGE_" + envKey(comp.ID)
		vars[prefix+"_NAME"] = comp.Name
		vars[prefix+"_CATEGORY"] = comp.Category
		vars[prefix+"_PRIORITY"] = fmt.Sprintf("%d", comp.Priority)
		vars[prefix+"_DEPENDS"] = strings.Join(comp.Dependencies, ",")
		if len(comp.Packages) > 0 {
			vars[prefix+"_PACKAGES"] = strings.Join(comp.Packages, ",")
		}
	}
	vars["ALPFORGE_COMPONENTS"] = strings.Join(ids, ",")

	out, err := godotenv.Marshal(vars)
	if err != nil {
		return "", err
	}
	return out + "\n", nil
}

func envKey(id string) string {
	return strings.ToUpper(strings.NewReplacer("-", "_", ".", "_").Replace(id))
}
