// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package latex converts Markdown into a standalone LaTeX document by
// running pandoc.
package latex

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/pdiddy/html2latex/internal/runner"
	"github.com/pdiddy/html2latex/pkg/types"
)

// Pandoc converts Markdown to LaTeX with the pandoc CLI. It depends on a
// runner.Runner injected at construction time.
type Pandoc struct {
	runner runner.Runner
}

// NewPandoc creates a converter that invokes r for every conversion.
func NewPandoc(r runner.Runner) *Pandoc {
	return &Pandoc{runner: r}
}

// Args returns the pandoc arguments that read Markdown from mdPath and
// write a standalone LaTeX document to texPath.
func Args(mdPath, texPath string) []string {
	return []string{"-f", "markdown", "-t", "latex", "--standalone", "-o", texPath, mdPath}
}

// Convert writes markdown to outDir/<base>_input.md, runs pandoc to produce
// outDir/<base>.tex and returns the LaTeX it wrote. When pandoc exits
// non-zero the returned error wraps a *runner.ProcessError holding both
// output streams.
func (p *Pandoc) Convert(ctx context.Context, markdown, outDir, base string, w io.Writer) (string, error) {
	fmt.Fprintln(w, "converting Markdown to LaTeX")

	mdPath := filepath.Join(outDir, types.InputMarkdownFile(base))
	if err := os.WriteFile(mdPath, []byte(markdown), 0o644); err != nil {
		return "", errors.Wrapf(err, "writing %s", mdPath)
	}
	fmt.Fprintf(w, "temporary Markdown file: %s\n", mdPath)

	texPath := filepath.Join(outDir, types.TeXFile(base))
	fmt.Fprintf(w, "running %s: %s -> %s\n", p.runner.Name(), mdPath, texPath)

	out, err := p.runner.Run(ctx, Args(mdPath, texPath)...)
	if err != nil {
		var pe *runner.ProcessError
		if errors.As(err, &pe) {
			printStreams(w, p.runner.Name(), pe.Stdout, pe.Stderr)
		}
		return "", errors.Wrapf(err, "running %s", p.runner.Name())
	}
	printStreams(w, p.runner.Name(), out.Stdout, out.Stderr)

	data, err := os.ReadFile(texPath)
	if err != nil {
		return "", errors.Wrapf(err, "reading %s output", p.runner.Name())
	}
	latex := string(data)
	fmt.Fprintf(w, "LaTeX content length: %d characters\n", utf8.RuneCountInString(latex))

	return latex, nil
}

// printStreams echoes non-empty process output, one labelled block each.
func printStreams(w io.Writer, tool, stdout, stderr string) {
	if s := strings.TrimSpace(stdout); s != "" {
		fmt.Fprintf(w, "%s stdout: %s\n", tool, s)
	}
	if s := strings.TrimSpace(stderr); s != "" {
		fmt.Fprintf(w, "%s stderr: %s\n", tool, s)
	}
}
