package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/html2latex/pkg/types"
)

const defaultConfigFile = "html2latex.yaml"

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the input and output folders and a starter config file",
	Long: `Init creates the input and output folders and writes html2latex.yaml
with the current effective settings, so the compiler path and folder names
can be edited in one place. An existing config file is kept unless --force
is given.`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().Bool("force", false, "overwrite an existing config file")

	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig()
	force, _ := cmd.Flags().GetBool("force")
	w := cmd.OutOrStdout()

	for _, dir := range []string{cfg.InputDir, cfg.OutputDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
		fmt.Fprintln(w, "  ", dir)
	}

	if _, err := os.Stat(defaultConfigFile); err == nil && !force {
		fmt.Fprintf(w, "%s already exists; use --force to overwrite\n", defaultConfigFile)
		return nil
	}

	if err := writeConfigFile(defaultConfigFile, cfg); err != nil {
		return err
	}
	fmt.Fprintf(w, "Wrote %s\n", defaultConfigFile)
	return nil
}

// writeConfigFile saves cfg as YAML using the same keys the CLI reads.
func writeConfigFile(path string, cfg types.PipelineConfig) error {
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
