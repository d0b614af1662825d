// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert drives zipped HTML documents through the conversion
// pipeline: extract HTML, convert to Markdown, convert to LaTeX with
// pandoc, compile to PDF, then tidy intermediate files into a debug folder.
package convert

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/pdiddy/html2latex/internal/extract"
	"github.com/pdiddy/html2latex/pkg/types"
)

// MarkdownConverter turns HTML into Markdown and saves outDir/<base>.md.
type MarkdownConverter interface {
	Convert(html, outDir, base string, w io.Writer) (string, error)
}

// LaTeXConverter turns Markdown into a standalone LaTeX document saved as
// outDir/<base>.tex.
type LaTeXConverter interface {
	Convert(ctx context.Context, markdown, outDir, base string, w io.Writer) (string, error)
}

// PDFCompiler compiles LaTeX and returns the path of the produced PDF.
type PDFCompiler interface {
	Compile(ctx context.Context, latex, outDir, base string, w io.Writer) (string, error)
}

// Recorder persists the outcome of each archive.
type Recorder interface {
	Record(ctx context.Context, res types.Result) error
}

// Pipeline holds the stage implementations. Markdown, LaTeX and PDF are
// required; PageCount and History are optional.
type Pipeline struct {
	Markdown MarkdownConverter
	LaTeX    LaTeXConverter
	PDF      PDFCompiler

	// PageCount reads the page count of a produced PDF for reporting.
	PageCount func(path string) (int, error)

	// History records every result when set.
	History Recorder

	// DebugDir is the per-archive folder for intermediate files
	// (default "debug").
	DebugDir string

	now func() time.Time
}

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int
	Failed    int
	Results   []types.Result

	// Skipped counts archives never started because the context was
	// cancelled.
	Skipped int
}

// Interrupted reports whether the batch stopped before every archive was
// attempted.
func (r BatchResult) Interrupted() bool {
	return r.Skipped > 0
}

// Total returns the total number of archives processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Failed
}

// HasFailures reports whether any archive failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// ConvertArchive runs every stage for one archive in order and stops at
// the first failure. It never returns an error: a failure is printed to w
// together with its stack trace and reported in the Result.
func (p *Pipeline) ConvertArchive(ctx context.Context, a types.Archive, w io.Writer) types.Result {
	res := types.Result{Archive: a, StartedAt: p.clock()}

	pdfPath, stage, err := p.run(ctx, a, w)
	res.FinishedAt = p.clock()
	if err != nil {
		res.Status = types.ConversionFailed
		res.Stage = stage
		res.Err = err
		fmt.Fprintf(w, "an error occurred while processing %s: %v\n", a.ZipPath, err)
		fmt.Fprintf(w, "%+v\n", err)
		return res
	}

	res.Status = types.ConversionDone
	res.PDFPath = pdfPath
	if p.PageCount != nil {
		if n, err := p.PageCount(pdfPath); err != nil {
			fmt.Fprintf(w, "warning: %v\n", err)
		} else {
			res.Pages = n
		}
	}

	fmt.Fprintln(w, "conversion completed successfully")
	fmt.Fprintf(w, "LaTeX file: %s\n", a.Artifacts().TeXPath)
	fmt.Fprintf(w, "PDF file: %s\n", pdfPath)
	return res
}

func (p *Pipeline) run(ctx context.Context, a types.Archive, w io.Writer) (string, types.Stage, error) {
	html, err := extract.ExtractHTML(a.ZipPath, a.OutputDir, a.ID, w)
	if err != nil {
		return "", types.StageExtract, err
	}

	md, err := p.Markdown.Convert(html, a.OutputDir, a.ID, w)
	if err != nil {
		return "", types.StageMarkdown, err
	}

	latex, err := p.LaTeX.Convert(ctx, md, a.OutputDir, a.ID, w)
	if err != nil {
		return "", types.StageLaTeX, err
	}

	pdfPath, err := p.PDF.Compile(ctx, latex, a.OutputDir, a.ID, w)
	if err != nil {
		return "", types.StagePDF, err
	}
	return pdfPath, "", nil
}

// ConvertBatch processes archives one after another. For each it creates
// the output folder, runs ConvertArchive and then moves the intermediate
// files into the debug folder whatever the outcome. One archive's failure
// never stops the batch. Cancelling ctx stops it before the next archive;
// archives not yet started are counted as skipped and are not recorded.
func (p *Pipeline) ConvertBatch(ctx context.Context, archives []types.Archive, w io.Writer) BatchResult {
	var result BatchResult
	for i, a := range archives {
		if err := ctx.Err(); err != nil {
			result.Skipped = len(archives) - i
			fmt.Fprintf(w, "interrupted: %v, %d archive(s) not processed\n", err, result.Skipped)
			break
		}

		res := p.convertOne(ctx, a, w)

		if p.History != nil {
			// An archive interrupted mid-run is still recorded.
			if err := p.History.Record(context.WithoutCancel(ctx), res); err != nil {
				fmt.Fprintf(w, "warning: %v\n", err)
			}
		}

		if res.Failed() {
			result.Failed++
		} else {
			result.Converted++
		}
		result.Results = append(result.Results, res)

		fmt.Fprintf(w, "finished processing %s\n", a.ZipPath)
		fmt.Fprintln(w, strings.Repeat("-", 50))
	}

	if !result.Interrupted() {
		fmt.Fprintln(w, "All zip files processed.")
	}
	fmt.Fprintf(w, "\nBatch summary: %d converted, %d failed (total: %d)\n",
		result.Converted, result.Failed, result.Total())
	return result
}

func (p *Pipeline) convertOne(ctx context.Context, a types.Archive, w io.Writer) types.Result {
	if err := os.MkdirAll(a.OutputDir, 0o755); err != nil {
		err = errors.Wrapf(err, "creating output directory %s", a.OutputDir)
		fmt.Fprintf(w, "failed:  %s (%v)\n", a.ID, err)
		now := p.clock()
		return types.Result{
			Archive:    a,
			Status:     types.ConversionFailed,
			Stage:      types.StageSetup,
			Err:        err,
			StartedAt:  now,
			FinishedAt: now,
		}
	}

	fmt.Fprintf(w, "processing %s\n", a.ZipPath)
	res := p.ConvertArchive(ctx, a, w)

	if err := RelocateDebugFiles(a.OutputDir, a.ID, p.debugDir(), w); err != nil {
		fmt.Fprintf(w, "warning: %v\n", err)
	}
	return res
}

func (p *Pipeline) debugDir() string {
	if p.DebugDir == "" {
		return types.DefaultDebugDir
	}
	return p.DebugDir
}

func (p *Pipeline) clock() time.Time {
	if p.now != nil {
		return p.now()
	}
	return time.Now()
}
