package cmd

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/alpforge/alpforge/internal/catalog"
)

var exportCmd = &cobra.Command{
	Use:       "export <json|env>",
	Short:     "Serialize the catalog to stdout",
	Long:      `Writes the catalog in the requested format. JSON is lossless and can be fed back as a catalog; env is a flat key=value digest for shell scripts.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "env"},
	Run: func(cmd *cobra.Command, args []string) {
		ctx := newContext(cmd, false)

		cat, err := loadCatalog(cmd, ctx)
		if err != nil {
			pterm.Error.Println(err)
			os.Exit(1)
		}

		switch args[0] {
		case "json":
			data, err := catalog.ExportJSON(cat)
			if err != nil {
				pterm.Error.Println(err)
				os.Exit(1)
			}
			os.Stdout.Write(data)
		case "env":
			out, err := catalog.ExportEnv(cat)
			if err != nil {
				pterm.Error.Println(err)
				os.Exit(1)
			}
			fmt.Print(out)
		default:
			pterm.Error.Printf("Unknown export format %q (want json or env).\n", args[0])
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
