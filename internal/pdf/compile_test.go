// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdf

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/html2latex/internal/runner"
)

// fakeEngine implements runner.Runner for pdflatex. It optionally writes
// <texbase>.pdf into the -output-directory and can fail with an exit error.
type fakeEngine struct {
	writePDF bool
	fail     bool
	stdout   string
	args     []string
	texSeen  string
}

func (f *fakeEngine) Name() string { return "pdflatex" }

func (f *fakeEngine) Run(_ context.Context, args ...string) (runner.Output, error) {
	f.args = args
	texPath := args[len(args)-1]
	if data, err := os.ReadFile(texPath); err == nil {
		f.texSeen = string(data)
	}
	if f.fail {
		return runner.Output{Stdout: f.stdout}, &runner.ProcessError{
			Tool: "pdflatex", Args: args, Stdout: f.stdout, Err: errors.New("exit status 1"),
		}
	}
	if f.writePDF {
		var outDir string
		for i, a := range args {
			if a == "-output-directory" && i+1 < len(args) {
				outDir = args[i+1]
			}
		}
		base := filepath.Base(texPath)
		pdfName := base[:len(base)-len(filepath.Ext(base))] + ".pdf"
		if err := os.WriteFile(filepath.Join(outDir, pdfName), []byte("%PDF-1.5\n"), 0o644); err != nil {
			return runner.Output{}, err
		}
	}
	return runner.Output{Stdout: f.stdout}, nil
}

const doc = "\\documentclass{article}\n\\begin{document}\nHello\n\\end{document}\n"

func TestArgs(t *testing.T) {
	assert.Equal(t,
		[]string{"-interaction=nonstopmode", "-output-directory", "out/a", "out/a/a.tex"},
		Args("out/a/a.tex", "out/a"),
	)
}

func TestCompile(t *testing.T) {
	tests := []struct {
		name     string
		engine   *fakeEngine
		wantErr  error
		wantProc bool
		wantLog  string
	}{
		{
			name:    "pdf produced",
			engine:  &fakeEngine{writePDF: true, stdout: "Output written on doc.pdf (1 page)."},
			wantLog: "PDF generated successfully",
		},
		{
			name:    "clean exit without pdf",
			engine:  &fakeEngine{},
			wantErr: ErrPDFNotFound,
		},
		{
			name:     "engine exits non-zero",
			engine:   &fakeEngine{fail: true, stdout: "! Undefined control sequence."},
			wantProc: true,
			wantLog:  "pdflatex stdout: ! Undefined control sequence.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			// The converter already wrote a .tex; Compile rewrites it verbatim.
			require.NoError(t, os.WriteFile(filepath.Join(dir, "doc.tex"), []byte("stale"), 0o644))

			var log bytes.Buffer
			path, err := NewCompiler(tt.engine).Compile(context.Background(), doc, dir, "doc", &log)

			assert.Equal(t, doc, tt.engine.texSeen, "engine must see the rewritten LaTeX")
			assert.Equal(t, Args(filepath.Join(dir, "doc.tex"), dir), tt.engine.args)
			if tt.wantLog != "" {
				assert.Contains(t, log.String(), tt.wantLog)
			}

			switch {
			case tt.wantErr != nil:
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, path)
			case tt.wantProc:
				require.Error(t, err)
				var pe *runner.ProcessError
				assert.ErrorAs(t, err, &pe)
				assert.NotErrorIs(t, err, ErrPDFNotFound)
				assert.Empty(t, path)
			default:
				require.NoError(t, err)
				assert.Equal(t, filepath.Join(dir, "doc.pdf"), path)
			}
		})
	}
}

func TestCompilerPaths(t *testing.T) {
	assert.Contains(t, compilerPaths("windows"), `C:\Program Files\MiKTeX\miktex\bin\x64\pdflatex.exe`)
	assert.Contains(t, compilerPaths("darwin"), "/Library/TeX/texbin/pdflatex")
	assert.Contains(t, compilerPaths("linux"), "/usr/bin/pdflatex")
	assert.NotEmpty(t, DefaultCompilerPaths())
}

func TestPageCount_NotAPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.5\n"), 0o644))

	n, err := PageCount(path)
	require.Error(t, err)
	assert.Zero(t, n)
	assert.Contains(t, err.Error(), "reading page count")
}
