package cmd

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/alpforge/alpforge/internal/catalog"
	"github.com/alpforge/alpforge/internal/consts"
	"github.com/alpforge/alpforge/internal/resolver"
	"github.com/alpforge/alpforge/internal/system"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check catalog consistency per component",
	Long:  `Runs the catalog consistency checks (unknown dependency ids, circular dependencies) over every entry and reports pass or fail per id.`,
	Run: func(cmd *cobra.Command, args []string) {
		cat, warnings, err := readCatalogRelaxed(cmd)
		if err != nil {
			pterm.Error.Println(err)
			os.Exit(1)
		}
		for _, w := range warnings {
			pterm.Warning.Println("catalog: " + w.String())
		}

		failed := 0
		for _, id := range cat.IDs() {
			if issue := checkComponent(cat, id); issue != "" {
				pterm.Error.Printf("FAIL %s: %s\n", id, issue)
				failed++
				continue
			}
			pterm.Success.Println("PASS " + id)
		}

		if failed > 0 {
			pterm.Error.Printf("%d of %d components failed validation.\n", failed, cat.Len())
			os.Exit(1)
		}
		pterm.Success.Printf("All %d components are consistent.\n", cat.Len())
	},
}

// checkComponent verifies one entry: every dependency must resolve and
// the closure must be acyclic.
func checkComponent(cat *catalog.Catalog, id string) string {
	comp, _ := cat.Get(id)
	for _, dep := range comp.Dependencies {
		if _, ok := cat.Get(dep); !ok {
			return fmt.Sprintf("depends on unknown component %q", dep)
		}
	}

	if _, err := resolver.Resolve(cat, []string{id}); err != nil {
		return err.Error()
	}
	return ""
}

// readCatalogRelaxed mirrors readCatalog but keeps entries that would
// be load-fatal, so every id gets a verdict.
func readCatalogRelaxed(cmd *cobra.Command) (*catalog.Catalog, []catalog.Warning, error) {
	if url, _ := cmd.Flags().GetString("catalog-url"); url != "" {
		data, err := system.Fetch(url)
		if err != nil {
			return nil, nil, fmt.Errorf("fetch catalog: %w", err)
		}
		return catalog.ParseRelaxed(data)
	}

	path, _ := cmd.Flags().GetString("catalog")
	if path == "" {
		if _, err := os.Stat(consts.DefaultCatalogFile); err == nil {
			path = consts.DefaultCatalogFile
		}
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, nil, fmt.Errorf("catalog file: %w", err)
		}
		return catalog.ParseRelaxed(data)
	}

	return catalog.Default()
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
