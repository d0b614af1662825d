// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package runner

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockExecutor records calls and returns configured responses.
type mockExecutor struct {
	onPath  map[string]string // file -> resolved path
	files   map[string]bool   // path -> exists
	runFunc func(name string, args []string) (string, string, error)
	calls   []string
}

func (m *mockExecutor) LookPath(file string) (string, error) {
	if p, ok := m.onPath[file]; ok {
		return p, nil
	}
	return "", errors.New("not found: " + file)
}

func (m *mockExecutor) Exists(path string) bool {
	return m.files[path]
}

func (m *mockExecutor) Run(_ context.Context, name string, args []string) (string, string, error) {
	m.calls = append(m.calls, name+" "+strings.Join(args, " "))
	if m.runFunc != nil {
		return m.runFunc(name, args)
	}
	return "", "", nil
}

func TestResolve(t *testing.T) {
	miktex := `C:\Program Files\MiKTeX\miktex\bin\x64\pdflatex.exe`

	tests := []struct {
		name       string
		exec       *mockExecutor
		explicit   string
		candidates []string
		wantPath   string
		wantErr    bool
	}{
		{
			name:     "found on PATH",
			exec:     &mockExecutor{onPath: map[string]string{"pdflatex": "/usr/bin/pdflatex"}},
			wantPath: "/usr/bin/pdflatex",
		},
		{
			name:       "PATH preferred over candidates",
			exec:       &mockExecutor{onPath: map[string]string{"pdflatex": "/usr/bin/pdflatex"}, files: map[string]bool{miktex: true}},
			candidates: []string{miktex},
			wantPath:   "/usr/bin/pdflatex",
		},
		{
			name:       "falls back to first existing candidate",
			exec:       &mockExecutor{files: map[string]bool{miktex: true, "/opt/tex/pdflatex": true}},
			candidates: []string{"/missing/pdflatex", miktex, "/opt/tex/pdflatex"},
			wantPath:   miktex,
		},
		{
			name:     "explicit path that exists",
			exec:     &mockExecutor{files: map[string]bool{"/opt/tex/pdflatex": true}},
			explicit: "/opt/tex/pdflatex",
			wantPath: "/opt/tex/pdflatex",
		},
		{
			name:     "explicit path missing is not rescued by PATH",
			exec:     &mockExecutor{onPath: map[string]string{"pdflatex": "/usr/bin/pdflatex"}},
			explicit: "/opt/tex/pdflatex",
			wantErr:  true,
		},
		{
			name:     "explicit bare name looked up on PATH",
			exec:     &mockExecutor{onPath: map[string]string{"lualatex": "/usr/bin/lualatex"}},
			explicit: "lualatex",
			wantPath: "/usr/bin/lualatex",
		},
		{
			name:       "nothing found",
			exec:       &mockExecutor{},
			candidates: []string{miktex},
			wantErr:    true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tool, err := resolve(tt.exec, "pdflatex", tt.explicit, tt.candidates)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrToolNotFound)
				assert.Contains(t, err.Error(), "pdflatex")
				assert.Contains(t, fmt.Sprintf("%+v", err), "runner.resolve", "error carries a stack trace")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "pdflatex", tool.Name())
			assert.Equal(t, tt.wantPath, tool.Path())
		})
	}
}

func TestToolRun(t *testing.T) {
	t.Run("success returns both streams", func(t *testing.T) {
		exec := &mockExecutor{runFunc: func(string, []string) (string, string, error) {
			return "out", "warn", nil
		}}
		tool := &Tool{name: "pandoc", path: "/usr/bin/pandoc", exec: exec}

		out, err := tool.Run(context.Background(), "-f", "markdown")
		require.NoError(t, err)
		assert.Equal(t, Output{Stdout: "out", Stderr: "warn"}, out)
		assert.Equal(t, []string{"/usr/bin/pandoc -f markdown"}, exec.calls)
	})

	t.Run("failure yields ProcessError with streams", func(t *testing.T) {
		exec := &mockExecutor{runFunc: func(string, []string) (string, string, error) {
			return "partial", "pandoc: unknown reader", errors.New("exit status 21")
		}}
		tool := &Tool{name: "pandoc", path: "pandoc", exec: exec}

		_, err := tool.Run(context.Background(), "-f", "bogus")
		require.Error(t, err)

		var pe *ProcessError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, "pandoc", pe.Tool)
		assert.Equal(t, []string{"-f", "bogus"}, pe.Args)
		assert.Equal(t, "partial", pe.Stdout)
		assert.Equal(t, "pandoc: unknown reader", pe.Stderr)
		assert.Equal(t, -1, pe.ExitCode())
		assert.Contains(t, err.Error(), "unknown reader")
	})
}

func TestToolVersion(t *testing.T) {
	exec := &mockExecutor{runFunc: func(_ string, args []string) (string, string, error) {
		if len(args) != 1 || args[0] != "--version" {
			return "", "", errors.New("unexpected args")
		}
		return "pandoc 3.1.11\nFeatures: +server +lua\n", "", nil
	}}
	tool := &Tool{name: "pandoc", path: "pandoc", exec: exec}

	v, err := tool.Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "pandoc 3.1.11", v)
}
