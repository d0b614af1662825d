package types

import "path/filepath"

const (
	DefaultInputDir  = "input"
	DefaultOutputDir = "output"
	DefaultDebugDir  = "debug"
	DefaultPandoc    = "pandoc"
	DefaultPDFLaTeX  = "pdflatex"
	historyFile      = "history.db"
)

// ToolConfig locates one external binary.
type ToolConfig struct {
	// Path is either a bare command name looked up on PATH ("pandoc") or a
	// filesystem path to the binary. Empty means discover.
	Path string `json:"path" yaml:"path"`
}

// PipelineConfig holds every setting of a conversion run.
type PipelineConfig struct {
	// InputDir is the folder scanned for *.zip archives.
	InputDir string `json:"input_dir" yaml:"input_dir"`

	// OutputDir is the root under which one folder per archive is created.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// DebugDir is the name of the per-archive folder that receives the
	// intermediate HTML and Markdown files.
	DebugDir string `json:"debug_dir" yaml:"debug_dir"`

	// Pandoc converts Markdown to LaTeX.
	Pandoc ToolConfig `json:"pandoc" yaml:"pandoc"`

	// PDFLaTeX compiles LaTeX to PDF.
	PDFLaTeX ToolConfig `json:"pdflatex" yaml:"pdflatex"`

	// HistoryDB is the SQLite file recording every run. Empty disables it.
	HistoryDB string `json:"history_db" yaml:"history_db"`
}

// DefaultPipelineConfig returns the settings used when no config file,
// environment variable or flag overrides them.
func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfig{
		InputDir:  DefaultInputDir,
		OutputDir: DefaultOutputDir,
		DebugDir:  DefaultDebugDir,
		Pandoc:    ToolConfig{Path: DefaultPandoc},
		HistoryDB: DefaultHistoryDB(DefaultOutputDir),
	}
}

// DefaultHistoryDB returns the history database path for an output root.
func DefaultHistoryDB(outputDir string) string {
	return filepath.Join(outputDir, historyFile)
}
