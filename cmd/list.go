package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/alpforge/alpforge/internal/record"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog components grouped by category",
	Long:  `Enumerates every catalog component per category, annotated with its installed status from the record store.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := newContext(cmd, false)

		cat, err := loadCatalog(cmd, ctx)
		if err != nil {
			pterm.Error.Println(err)
			os.Exit(1)
		}

		recordDir, _ := cmd.Flags().GetString("record-dir")
		store := record.NewStore(recordDir)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		for _, category := range cat.Categories() {
			pterm.DefaultSection.WithWriter(os.Stdout).Println(category)
			fmt.Fprintln(w, "ID\tNAME\tPRIORITY\tSTATUS\tDESCRIPTION")

			for _, comp := range cat.ByCategory(category) {
				status := "not installed"
				if store.Exists(comp.ID) {
					status = "installed"
				}
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
					comp.ID, comp.Name, comp.Priority, status, comp.Description)
			}
			w.Flush()
			fmt.Fprintln(os.Stdout)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
