// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the html2latex CLI, which converts
// zipped HTML documents to PDF through Markdown and LaTeX.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/html2latex/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// Configuration keys. Nested keys map to nested YAML in the config file
// and to HTML2LATEX_PANDOC_PATH style environment variables.
const (
	keyInputDir  = "input_dir"
	keyOutputDir = "output_dir"
	keyDebugDir  = "debug_dir"
	keyPandoc    = "pandoc.path"
	keyPDFLaTeX  = "pdflatex.path"
	keyHistoryDB = "history_db"
)

// rootCmd is the base command for the html2latex CLI.
var rootCmd = &cobra.Command{
	Use:   "html2latex",
	Short: "Convert zipped HTML documents to PDF via Markdown and LaTeX",
	Long: `html2latex converts every zip archive in an input folder into a PDF.
For each archive it extracts the first HTML file, converts it to Markdown,
turns the Markdown into a standalone LaTeX document with pandoc and compiles
that with pdflatex. Each archive gets its own folder under the output root;
intermediate HTML and Markdown files are moved into a debug subfolder.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	def := types.DefaultPipelineConfig()
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: ./html2latex.yaml or ~/.config/html2latex/html2latex.yaml)")
	flags.String("input-dir", def.InputDir, "folder scanned for zip archives")
	flags.String("output-dir", def.OutputDir, "root folder for per-archive output")
	flags.String("debug-dir", def.DebugDir, "per-archive folder for intermediate files")
	flags.String("pandoc", def.Pandoc.Path, "pandoc binary name or path")
	flags.String("pdflatex", "", "pdflatex binary name or path (default: PATH, then common install locations)")
	flags.String("history-db", "", "run history database (default: <output-dir>/history.db)")

	for key, flag := range map[string]string{
		keyInputDir:  "input-dir",
		keyOutputDir: "output-dir",
		keyDebugDir:  "debug-dir",
		keyPandoc:    "pandoc",
		keyPDFLaTeX:  "pdflatex",
		keyHistoryDB: "history-db",
	} {
		_ = viper.BindPFlag(key, flags.Lookup(flag))
	}
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("html2latex")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "html2latex"))
		}
	}

	viper.SetEnvPrefix("HTML2LATEX")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// pipelineConfig assembles the effective configuration from flags,
// environment, config file and defaults, in that order of precedence.
func pipelineConfig() types.PipelineConfig {
	cfg := types.PipelineConfig{
		InputDir:  viper.GetString(keyInputDir),
		OutputDir: viper.GetString(keyOutputDir),
		DebugDir:  viper.GetString(keyDebugDir),
		Pandoc:    types.ToolConfig{Path: viper.GetString(keyPandoc)},
		PDFLaTeX:  types.ToolConfig{Path: viper.GetString(keyPDFLaTeX)},
		HistoryDB: viper.GetString(keyHistoryDB),
	}
	if cfg.HistoryDB == "" {
		cfg.HistoryDB = types.DefaultHistoryDB(cfg.OutputDir)
	}
	return cfg
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
