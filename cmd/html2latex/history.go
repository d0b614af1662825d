package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/html2latex/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded conversion runs",
	Long: `History reads the run database written by convert and lists the most
recent runs, newest first: archive, outcome, failing stage, page count and
either the PDF path or the error. Use --yaml for machine-readable output.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().String("archive", "", "only show runs of this archive (base name)")
	historyCmd.Flags().Int("limit", 20, "maximum number of runs to show")
	historyCmd.Flags().Bool("yaml", false, "print runs as YAML")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig()
	archiveID, _ := cmd.Flags().GetString("archive")
	limit, _ := cmd.Flags().GetInt("limit")
	asYAML, _ := cmd.Flags().GetBool("yaml")

	if _, err := os.Stat(cfg.HistoryDB); os.IsNotExist(err) {
		fmt.Fprintf(cmd.OutOrStdout(), "No history recorded yet (%s).\n", cfg.HistoryDB)
		return nil
	}

	store, err := history.Open(cfg.HistoryDB)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.List(cmd.Context(), history.QueryOptions{ArchiveID: archiveID, Limit: limit})
	if err != nil {
		return err
	}

	if asYAML {
		return history.ExportYAML(cmd.OutOrStdout(), runs)
	}
	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No matching runs.")
		return nil
	}
	return history.PrintTable(cmd.OutOrStdout(), runs)
}
