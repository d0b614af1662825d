// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdf compiles LaTeX documents to PDF with pdflatex and reads
// basic facts about the result.
package pdf

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/pdiddy/html2latex/internal/runner"
	"github.com/pdiddy/html2latex/pkg/types"
)

// Compiler runs a LaTeX engine over a .tex file. It depends on a
// runner.Runner injected at construction time.
type Compiler struct {
	runner runner.Runner
}

// NewCompiler creates a compiler that invokes r.
func NewCompiler(r runner.Runner) *Compiler {
	return &Compiler{runner: r}
}

// Args returns the engine arguments for compiling texPath into outDir
// without stopping for interactive error prompts.
func Args(texPath, outDir string) []string {
	return []string{"-interaction=nonstopmode", "-output-directory", outDir, texPath}
}

// Compile writes latex to outDir/<base>.tex, compiles it and returns the
// path of outDir/<base>.pdf. A non-zero exit fails with a wrapped
// *runner.ProcessError; a clean exit that leaves no PDF fails with
// ErrPDFNotFound.
func (c *Compiler) Compile(ctx context.Context, latex, outDir, base string, w io.Writer) (string, error) {
	fmt.Fprintln(w, "converting LaTeX to PDF")

	texPath := filepath.Join(outDir, types.TeXFile(base))
	if err := os.WriteFile(texPath, []byte(latex), 0o644); err != nil {
		return "", errors.Wrapf(err, "writing %s", texPath)
	}

	fmt.Fprintf(w, "running %s on %s\n", c.runner.Name(), texPath)
	out, err := c.runner.Run(ctx, Args(texPath, outDir)...)
	if err != nil {
		var pe *runner.ProcessError
		if errors.As(err, &pe) {
			printStreams(w, c.runner.Name(), pe.Stdout, pe.Stderr)
		}
		return "", errors.Wrapf(err, "running %s", c.runner.Name())
	}
	printStreams(w, c.runner.Name(), out.Stdout, out.Stderr)

	pdfPath := filepath.Join(outDir, types.PDFFile(base))
	info, err := os.Stat(pdfPath)
	if err != nil || info.IsDir() {
		return "", errors.Wrapf(ErrPDFNotFound, "%s", pdfPath)
	}
	fmt.Fprintf(w, "PDF generated successfully: %s\n", pdfPath)

	return pdfPath, nil
}

func printStreams(w io.Writer, tool, stdout, stderr string) {
	if s := strings.TrimSpace(stdout); s != "" {
		fmt.Fprintf(w, "%s stdout: %s\n", tool, s)
	}
	if s := strings.TrimSpace(stderr); s != "" {
		fmt.Fprintf(w, "%s stderr: %s\n", tool, s)
	}
}
