// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdf

import "runtime"

// DefaultCompilerPaths lists where pdflatex is commonly installed when it
// is not on PATH, for the running platform.
func DefaultCompilerPaths() []string {
	return compilerPaths(runtime.GOOS)
}

func compilerPaths(goos string) []string {
	switch goos {
	case "windows":
		return []string{
			`C:\Program Files\MiKTeX\miktex\bin\x64\pdflatex.exe`,
			`C:\Program Files (x86)\MiKTeX\miktex\bin\pdflatex.exe`,
			`C:\texlive\2025\bin\windows\pdflatex.exe`,
			`C:\texlive\2024\bin\windows\pdflatex.exe`,
		}
	case "darwin":
		return []string{
			"/Library/TeX/texbin/pdflatex",
			"/usr/local/texlive/2025/bin/universal-darwin/pdflatex",
			"/opt/homebrew/bin/pdflatex",
		}
	default:
		return []string{
			"/usr/bin/pdflatex",
			"/usr/local/bin/pdflatex",
			"/usr/local/texlive/2025/bin/x86_64-linux/pdflatex",
		}
	}
}
