package cmd

import (
	"fmt"

	"icon-data/feature/icons"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// combineCmd represents the combine command
var combineCmd = &cobra.Command{
	Use:   "combine",
	Short: "Combine icon snapshots into one document",
	Long: `Reads every <major>.<minor>.<patch>.json snapshot in the icon data directory,
merges them with the Lucide catalog and the manual alternatives, and writes the
consolidated icons.json. Nothing is written if any input is invalid.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := setup()
		if err != nil {
			return err
		}
		defer logg.Sync()

		applyIconFlags(cmd, &cfg.Icons)
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		svc := icons.NewService(afero.NewOsFs(), cfg.Icons, logg, nil, cfg.Storage)

		logg.Info("Combining icon data...", zap.String("dir", cfg.Icons.Dir))
		report, err := svc.Combine(cmd.Context(), icons.CombineOptions{DryRun: dryRun})
		if err != nil {
			return fmt.Errorf("combine failed: %w", err)
		}

		printReport(cmd, report)
		logReport(logg, report)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(combineCmd)

	combineCmd.Flags().String("dir", "", "Icon data directory (overrides ICONS_DIR)")
	combineCmd.Flags().String("output", "", "Output file (overrides ICONS_OUTPUT)")
	combineCmd.Flags().Bool("dry-run", false, "Compute the document without writing it")
}

// applyIconFlags overrides configuration with explicitly set flags.
func applyIconFlags(cmd *cobra.Command, cfg *icons.Config) {
	if cmd.Flags().Changed("dir") {
		cfg.Dir, _ = cmd.Flags().GetString("dir")
	}
	if cmd.Flags().Changed("output") {
		cfg.Output, _ = cmd.Flags().GetString("output")
	}
}

func printReport(cmd *cobra.Command, r *icons.Report) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "\n=== Icon Data Metrics ===")
	fmt.Fprintf(out, "Icons: %d\n", r.Icons)
	fmt.Fprintf(out, "Versions: %d (latest %s)\n", r.Versions, r.Latest)
	fmt.Fprintf(out, "Deprecated: %d\n", r.Deprecated)
	fmt.Fprintf(out, "New: %d\n", r.New)
	fmt.Fprintf(out, "Catalog Matches: %d\n", r.Matched)
	fmt.Fprintf(out, "With Alternatives: %d\n", r.WithAlternatives)
	fmt.Fprintf(out, "Tags: %d, Categories: %d\n", r.Tags, r.Categories)
	fmt.Fprintf(out, "Execution Time: %s\n", r.ExecutionTime)
	if r.Written {
		fmt.Fprintf(out, "\nWritten to: %s\n", r.Output)
	} else {
		fmt.Fprintln(out, "\nDry run: nothing written")
	}
}

func logReport(l *zap.Logger, r *icons.Report) {
	l.Info("Icon data combined",
		zap.String("output", r.Output),
		zap.Bool("written", r.Written),
		zap.Int("icons", r.Icons),
		zap.Int("versions", r.Versions),
		zap.String("latest", r.Latest),
		zap.Int("deprecated", r.Deprecated),
		zap.Int("new", r.New),
		zap.Int("duplicate_groups", r.DuplicateGroups),
		zap.Duration("execution_time", r.ExecutionTime),
	)
}
