package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/html2latex/internal/convert"
	"github.com/pdiddy/html2latex/internal/history"
	"github.com/pdiddy/html2latex/internal/latex"
	"github.com/pdiddy/html2latex/internal/markdown"
	"github.com/pdiddy/html2latex/internal/pdf"
	"github.com/pdiddy/html2latex/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert [archives...]",
	Short: "Convert zipped HTML documents to PDF",
	Long: `Convert processes every *.zip file in the input folder, or only the
archives given as arguments. Each archive is converted in its own folder
under the output root: <name>.tex and <name>.pdf stay there, the extracted
HTML and generated Markdown are moved into the debug subfolder.

A failing archive is reported and skipped; the remaining archives are still
converted. If the input folder does not exist it is created and nothing is
converted.

pandoc and pdflatex are located before the first archive is touched: when
either is missing the command exits with an error and converts nothing.
Interrupting the command (Ctrl-C) finishes no further archives.`,
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().Bool("strict", false, "exit with an error when any archive fails")
	convertCmd.Flags().Bool("no-history", false, "do not record runs in the history database")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig()
	out := cmd.OutOrStdout()
	strict, _ := cmd.Flags().GetBool("strict")
	noHistory, _ := cmd.Flags().GetBool("no-history")

	var archives []types.Archive
	if len(args) == 0 {
		created, err := convert.EnsureInputDir(cfg.InputDir)
		if err != nil {
			return err
		}
		if created {
			fmt.Fprintf(out, "Created input folder: %s\n", cfg.InputDir)
			fmt.Fprintln(out, "Please place your zip files in this folder and run the command again.")
			return nil
		}
		archives, err = convert.DiscoverArchives(cfg.InputDir, cfg.OutputDir)
		if err != nil {
			return err
		}
	} else {
		archives = convert.ArchivesFromPaths(args, cfg.OutputDir)
	}

	if len(archives) == 0 {
		fmt.Fprintf(out, "No zip files found in %s.\n", cfg.InputDir)
		return nil
	}

	pandoc, err := resolvePandoc(cfg)
	if err != nil {
		return fmt.Errorf("%w (run 'html2latex doctor' for details)", err)
	}
	pdflatex, err := resolvePDFLaTeX(cfg)
	if err != nil {
		return fmt.Errorf("%w (set --pdflatex or run 'html2latex doctor')", err)
	}

	p := &convert.Pipeline{
		Markdown:  markdown.NewConverter(),
		LaTeX:     latex.NewPandoc(pandoc),
		PDF:       pdf.NewCompiler(pdflatex),
		PageCount: pdf.PageCount,
		DebugDir:  cfg.DebugDir,
	}

	if !noHistory {
		store, err := history.Open(cfg.HistoryDB)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: run history disabled: %v\n", err)
		} else {
			defer store.Close()
			p.History = store
		}
	}

	result := p.ConvertBatch(cmd.Context(), archives, out)
	if result.Interrupted() {
		return fmt.Errorf("conversion interrupted: %w", cmd.Context().Err())
	}
	if strict && result.HasFailures() {
		return fmt.Errorf("%d archive(s) failed conversion", result.Failed)
	}
	return nil
}
