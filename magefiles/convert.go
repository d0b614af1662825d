//go:build mage

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/magefile/mage/mg"
)

// Convert builds the CLI and converts every archive in input/.
func Convert() error {
	mg.Deps(Build)
	return runCLI("convert")
}

// Doctor builds the CLI and checks that pandoc and pdflatex are available.
func Doctor() error {
	mg.Deps(Build)
	return runCLI("doctor")
}

func runCLI(args ...string) error {
	bin := filepath.Join(binDir, binName)
	cmd := exec.Command(bin, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s %v: %w", bin, args, err)
	}
	return nil
}
