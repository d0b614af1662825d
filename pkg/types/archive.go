// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the html2latex pipeline:
// the archive being converted, the artifacts derived from it, and the
// outcome of one conversion run.
package types

import (
	"path/filepath"
	"strings"
	"time"
)

// ConversionStatus indicates the outcome of converting one archive.
type ConversionStatus string

const (
	ConversionDone   ConversionStatus = "converted"
	ConversionFailed ConversionStatus = "failed"
)

// Stage names one step of the per-archive pipeline.
type Stage string

const (
	StageSetup    Stage = "setup"
	StageExtract  Stage = "extract"
	StageMarkdown Stage = "markdown"
	StageLaTeX    Stage = "latex"
	StagePDF      Stage = "pdf"
)

// Archive is one zip file queued for conversion.
type Archive struct {
	// ID is the base name: the archive file name without its extension
	// (e.g. "report" for "input/report.zip"). Every artifact is named after it.
	ID string `json:"id" yaml:"id"`

	// ZipPath is the filesystem path of the zip archive.
	ZipPath string `json:"zip_path" yaml:"zip_path"`

	// OutputDir is the per-archive output folder (<output root>/<ID>).
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}

// NewArchive builds an Archive for zipPath whose artifacts live in
// outputRoot/<base name>.
func NewArchive(zipPath, outputRoot string) Archive {
	id := BaseName(zipPath)
	return Archive{
		ID:        id,
		ZipPath:   zipPath,
		OutputDir: filepath.Join(outputRoot, id),
	}
}

// BaseName strips the directory and the final extension from path.
// A name that is only an extension (".zip") is returned unchanged.
func BaseName(path string) string {
	name := filepath.Base(path)
	base := strings.TrimSuffix(name, filepath.Ext(name))
	if base == "" {
		return name
	}
	return base
}

// Artifact file names derived from a base name.
func HTMLFile(base string) string          { return base + ".html" }
func MarkdownFile(base string) string      { return base + ".md" }
func InputMarkdownFile(base string) string { return base + "_input.md" }
func TeXFile(base string) string           { return base + ".tex" }
func PDFFile(base string) string           { return base + ".pdf" }

// DebugFiles lists the intermediate artifacts that are moved into the
// debug folder once an archive has been processed.
func DebugFiles(base string) []string {
	return []string{HTMLFile(base), MarkdownFile(base), InputMarkdownFile(base)}
}

// Artifacts holds the full paths of every file the pipeline may produce
// for an archive.
type Artifacts struct {
	HTMLPath          string
	MarkdownPath      string
	InputMarkdownPath string
	TeXPath           string
	PDFPath           string
}

// Artifacts returns the artifact paths inside the archive's output folder.
func (a Archive) Artifacts() Artifacts {
	return Artifacts{
		HTMLPath:          filepath.Join(a.OutputDir, HTMLFile(a.ID)),
		MarkdownPath:      filepath.Join(a.OutputDir, MarkdownFile(a.ID)),
		InputMarkdownPath: filepath.Join(a.OutputDir, InputMarkdownFile(a.ID)),
		TeXPath:           filepath.Join(a.OutputDir, TeXFile(a.ID)),
		PDFPath:           filepath.Join(a.OutputDir, PDFFile(a.ID)),
	}
}

// Result is the outcome of running the pipeline on one archive.
type Result struct {
	Archive Archive

	Status ConversionStatus

	// Stage is the stage that failed. Empty on success.
	Stage Stage

	// Err is the error that aborted the pipeline, with its stack trace.
	Err error

	// PDFPath is set when the compiler produced a PDF.
	PDFPath string

	// Pages is the page count of the PDF, or zero when it could not be read.
	Pages int

	StartedAt  time.Time
	FinishedAt time.Time
}

// Failed reports whether the archive did not produce a PDF. A Result with
// no status is never counted as converted.
func (r Result) Failed() bool {
	return r.Status != ConversionDone
}
