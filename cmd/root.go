package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/alpforge/alpforge/internal/backend"
	"github.com/alpforge/alpforge/internal/catalog"
	"github.com/alpforge/alpforge/internal/components"
	"github.com/alpforge/alpforge/internal/consts"
	"github.com/alpforge/alpforge/internal/core"
	"github.com/alpforge/alpforge/internal/engine"
	"github.com/alpforge/alpforge/internal/menu"
	"github.com/alpforge/alpforge/internal/record"
	"github.com/alpforge/alpforge/internal/system"
)

var rootCmd = &cobra.Command{
	Use:   "alpforge",
	Short: "Interactive installer for a curated set of Alpine Linux components",
	Long: `Alpforge presents a checklist of Alpine components (edge repositories,
shell, editor, SSH daemon), resolves their dependencies into a
priority-ordered queue and installs them, keeping one installed record
per component so repeated runs are idempotent.`,
	Run: runInstall,
}

var verboseCount int

// timeUnit rounds durations in user-facing summaries.
const timeUnit = time.Millisecond

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// PTerm output to stderr, keeping stdout clean for piping.
	pterm.SetDefaultOutput(os.Stderr)
	pterm.Success.Writer = os.Stderr
	pterm.Info.Writer = os.Stderr
	pterm.Error.Writer = os.Stderr
	pterm.Warning.Writer = os.Stderr
	pterm.DefaultHeader.Writer = os.Stderr

	rootCmd.PersistentFlags().StringP("catalog", "c", "", "catalog file path (default: "+consts.DefaultCatalogFile+", falling back to the embedded catalog)")
	rootCmd.PersistentFlags().String("catalog-url", "", "fetch the catalog from a URL instead of a local file")
	rootCmd.PersistentFlags().String("record-dir", consts.RecordDirName, "directory holding installed records")
	rootCmd.PersistentFlags().CountVarP(&verboseCount, "verbose", "v", "increase verbosity (-v, -vv)")

	rootCmd.Flags().Bool("dry-run", false, "show what would happen without changing anything")
	rootCmd.Flags().BoolP("yes", "y", false, "never prompt: continue past failures")
	rootCmd.Flags().String("select", "", "comma-separated component ids, skips the interactive menu")
	rootCmd.Flags().String("select-file", "", "file with one component id per line, skips the interactive menu")
}

func runInstall(cmd *cobra.Command, args []string) {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	yes, _ := cmd.Flags().GetBool("yes")

	ctx := newContext(cmd, dryRun)

	cat, err := loadCatalog(cmd, ctx)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	selection, err := pickSelection(cmd, cat)
	if err != nil {
		if errors.Is(err, menu.ErrCancelled) {
			pterm.Info.Println("Cancelled, nothing installed.")
			return
		}
		pterm.Error.Println(err)
		os.Exit(1)
	}

	runner := core.ExecRunner{}
	apk := backend.NewApk(runner)
	openrc := backend.NewOpenRC(runner)
	registry := components.Build(cat, apk, openrc)

	recordDir, _ := cmd.Flags().GetString("record-dir")
	store := record.NewStore(recordDir)

	var prompter engine.Prompter = engine.ConfirmPrompter{}
	if yes {
		prompter = engine.AutoContinue{}
	}

	eng := engine.New(cat, registry, store, system.DefaultPrereqs(), prompter)

	outcome, err := eng.Run(ctx, selection)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	printOutcome(outcome)
	if !outcome.OK() {
		os.Exit(1)
	}
}

// newContext detects the host and wires the logger for the requested
// verbosity.
func newContext(cmd *cobra.Command, dryRun bool) *core.SystemContext {
	ctx := system.Detect(dryRun)

	level := core.LevelInfo
	if verboseCount > 0 {
		level = core.LevelDebug
	}
	ctx.Logger = core.NewDefaultLogger(os.Stderr, level)

	if dryRun {
		pterm.Info.Println("Dry run: no changes will be made.")
	}
	return ctx
}

// loadCatalog resolves the catalog source: explicit URL, explicit
// file, the well-known system path, then the embedded default.
func loadCatalog(cmd *cobra.Command, ctx *core.SystemContext) (*catalog.Catalog, error) {
	cat, warnings, err := readCatalog(cmd)
	if err != nil {
		return nil, err
	}
	for _, w := range warnings {
		pterm.Warning.Println("catalog: " + w.String())
	}

	if err := cat.Render(ctx); err != nil {
		return nil, err
	}
	return cat, nil
}

func readCatalog(cmd *cobra.Command) (*catalog.Catalog, []catalog.Warning, error) {
	if url, _ := cmd.Flags().GetString("catalog-url"); url != "" {
		data, err := system.Fetch(url)
		if err != nil {
			return nil, nil, fmt.Errorf("fetch catalog: %w", err)
		}
		return catalog.Parse(data)
	}

	if path, _ := cmd.Flags().GetString("catalog"); path != "" {
		return catalog.Load(path)
	}

	if _, err := os.Stat(consts.DefaultCatalogFile); err == nil {
		return catalog.Load(consts.DefaultCatalogFile)
	}

	return catalog.Default()
}

// pickSelection prefers the non-interactive sources over the menu.
func pickSelection(cmd *cobra.Command, cat *catalog.Catalog) ([]string, error) {
	if value, _ := cmd.Flags().GetString("select"); value != "" {
		return menu.ParseSelection(cat, value)
	}
	if path, _ := cmd.Flags().GetString("select-file"); path != "" {
		return menu.LoadSelectionFile(cat, path)
	}
	return menu.RunInteractive(cat)
}

func printOutcome(outcome *engine.Outcome) {
	pterm.Println()
	pterm.DefaultSection.Println("Run summary")

	data := pterm.TableData{{"RESULT", "COMPONENTS"}}
	data = append(data, []string{"succeeded", joinOrDash(outcome.Succeeded)})
	data = append(data, []string{"skipped", joinOrDash(outcome.Skipped)})
	data = append(data, []string{"failed", joinOrDash(outcome.Failed)})
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()

	if outcome.Aborted {
		pterm.Warning.Println("Run aborted before the queue finished.")
	}

	switch {
	case !outcome.OK():
		pterm.Error.Printf("Run %s finished with failures (%s)\n", outcome.RunID, outcome.Duration.Round(timeUnit))
	case len(outcome.Succeeded) == 0:
		pterm.Info.Printf("Run %s: nothing to do (%s)\n", outcome.RunID, outcome.Duration.Round(timeUnit))
	default:
		pterm.Success.Printf("Run %s completed (%s)\n", outcome.RunID, outcome.Duration.Round(timeUnit))
	}
}

func joinOrDash(ids []string) string {
	if len(ids) == 0 {
		return "-"
	}
	out := ids[0]
	for _, id := range ids[1:] {
		out += ", " + id
	}
	return out
}
