package main

import (
	"github.com/pdiddy/html2latex/internal/pdf"
	"github.com/pdiddy/html2latex/internal/runner"
	"github.com/pdiddy/html2latex/pkg/types"
)

func resolvePandoc(cfg types.PipelineConfig) (*runner.Tool, error) {
	return runner.Resolve(types.DefaultPandoc, cfg.Pandoc.Path, nil)
}

func resolvePDFLaTeX(cfg types.PipelineConfig) (*runner.Tool, error) {
	return runner.Resolve(types.DefaultPDFLaTeX, cfg.PDFLaTeX.Path, pdf.DefaultCompilerPaths())
}
