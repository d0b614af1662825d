package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/html2latex/internal/convert"
	"github.com/pdiddy/html2latex/internal/runner"
	"github.com/pdiddy/html2latex/pkg/types"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that pandoc and pdflatex can be found",
	Long: `Doctor resolves the external tools the same way convert does, prints
where each was found and its version, and reports how many archives are
waiting in the input folder. It exits with an error if a tool is missing.`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig()
	w := cmd.OutOrStdout()

	missing := 0
	for _, check := range []struct {
		name    string
		resolve func(types.PipelineConfig) (*runner.Tool, error)
	}{
		{types.DefaultPandoc, resolvePandoc},
		{types.DefaultPDFLaTeX, resolvePDFLaTeX},
	} {
		tool, err := check.resolve(cfg)
		if err != nil {
			fmt.Fprintf(w, "%-9s missing: %v\n", check.name, err)
			missing++
			continue
		}
		reportTool(cmd.Context(), w, tool)
	}

	reportInput(w, cfg)

	if missing > 0 {
		return fmt.Errorf("%d required tool(s) missing", missing)
	}
	fmt.Fprintln(w, "ready")
	return nil
}

func reportTool(ctx context.Context, w io.Writer, tool *runner.Tool) {
	v, err := tool.Version(ctx)
	if err != nil {
		fmt.Fprintf(w, "%-9s %s (version unknown: %v)\n", tool.Name(), tool.Path(), err)
		return
	}
	fmt.Fprintf(w, "%-9s %s (%s)\n", tool.Name(), tool.Path(), v)
}

func reportInput(w io.Writer, cfg types.PipelineConfig) {
	if _, err := os.Stat(cfg.InputDir); err != nil {
		fmt.Fprintf(w, "input     %s does not exist yet\n", cfg.InputDir)
		return
	}
	archives, err := convert.DiscoverArchives(cfg.InputDir, cfg.OutputDir)
	if err != nil {
		fmt.Fprintf(w, "input     %v\n", err)
		return
	}
	fmt.Fprintf(w, "input     %s (%d zip file(s))\n", cfg.InputDir, len(archives))
}
