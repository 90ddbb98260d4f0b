package cmd

import (
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/alpforge/alpforge/internal/backend"
	"github.com/alpforge/alpforge/internal/components"
	"github.com/alpforge/alpforge/internal/core"
	"github.com/alpforge/alpforge/internal/record"
)

var uninstallCmd = &cobra.Command{
	Use:   "uninstall <id>",
	Short: "Remove an installed component and its record",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := args[0]
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		ctx := newContext(cmd, dryRun)

		cat, err := loadCatalog(cmd, ctx)
		if err != nil {
			pterm.Error.Println(err)
			os.Exit(1)
		}

		recordDir, _ := cmd.Flags().GetString("record-dir")
		store := record.NewStore(recordDir)

		if !store.Exists(id) {
			pterm.Error.Printf("Component %q has no installed record.\n", id)
			os.Exit(1)
		}

		runner := core.ExecRunner{}
		registry := components.Build(cat, backend.NewApk(runner), backend.NewOpenRC(runner))

		installer, ok := registry.Get(id)
		if !ok {
			pterm.Error.Printf("Component %q is not in the catalog.\n", id)
			os.Exit(1)
		}

		if err := installer.Uninstall(ctx); err != nil {
			pterm.Error.Println(err)
			os.Exit(1)
		}

		if !ctx.DryRun {
			if err := store.Remove(id); err != nil {
				pterm.Error.Println(err)
				os.Exit(1)
			}
		}

		pterm.Success.Printf("Component %q uninstalled.\n", id)
	},
}

func init() {
	rootCmd.AddCommand(uninstallCmd)
	uninstallCmd.Flags().Bool("dry-run", false, "show what would happen without changing anything")
}
