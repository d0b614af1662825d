// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/pdiddy/html2latex/pkg/types"
)

// RelocateDebugFiles moves <base>.html, <base>.md and <base>_input.md from
// outDir into outDir/debugDir, creating that folder if needed. Files that
// were never written are skipped.
func RelocateDebugFiles(outDir, base, debugDir string, w io.Writer) error {
	dst := filepath.Join(outDir, debugDir)
	if err := os.MkdirAll(dst, 0o755); err != nil {
		return errors.Wrapf(err, "creating debug directory %s", dst)
	}

	for _, name := range types.DebugFiles(base) {
		src := filepath.Join(outDir, name)
		if _, err := os.Stat(src); err != nil {
			continue
		}
		if err := os.Rename(src, filepath.Join(dst, name)); err != nil {
			return errors.Wrapf(err, "moving %s to debug folder", name)
		}
		fmt.Fprintf(w, "moved %s to debug folder\n", name)
	}
	return nil
}
