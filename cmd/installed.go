package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/alpforge/alpforge/internal/record"
)

var installedCmd = &cobra.Command{
	Use:   "installed",
	Short: "Show the persisted installed records",
	Run: func(cmd *cobra.Command, args []string) {
		recordDir, _ := cmd.Flags().GetString("record-dir")
		store := record.NewStore(recordDir)

		recs, err := store.List()
		if err != nil {
			pterm.Error.Println(err)
			os.Exit(1)
		}

		if len(recs) == 0 {
			pterm.Info.Println("No components installed yet.")
			return
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tINSTALLED AT\tENVIRONMENT")
		for _, rec := range recs {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				rec.ID, rec.Name, rec.Category,
				rec.InstalledAt.Format("2006-01-02 15:04:05"),
				rec.Fingerprint)
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(installedCmd)
}
