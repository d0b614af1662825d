// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract pulls the HTML document out of a zip archive.
package extract

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/unicode"

	"github.com/pdiddy/html2latex/pkg/types"
)

const htmlExt = ".html"

// ExtractHTML opens the archive at zipPath, takes the first member whose
// name ends in .html (in the archive's own listing order), decodes it as
// UTF-8 and writes it to outDir/<base>.html. It returns the decoded text.
// An archive without such a member fails with ErrNoHTML and writes nothing.
func ExtractHTML(zipPath, outDir, base string, w io.Writer) (string, error) {
	fmt.Fprintf(w, "extracting HTML from %s\n", zipPath)

	zr, err := zip.OpenReader(zipPath)
	if err != nil {
		return "", errors.Wrapf(err, "opening archive %s", zipPath)
	}
	defer zr.Close()

	member := FirstHTML(zr.File)
	if member == nil {
		return "", errors.Wrapf(ErrNoHTML, "%s", zipPath)
	}
	fmt.Fprintf(w, "found HTML file: %s\n", member.Name)

	raw, err := readMember(member)
	if err != nil {
		return "", err
	}
	content := DecodeUTF8(raw)
	fmt.Fprintf(w, "HTML content length: %d characters\n", utf8.RuneCountInString(content))

	path := filepath.Join(outDir, types.HTMLFile(base))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", errors.Wrapf(err, "writing %s", path)
	}
	fmt.Fprintf(w, "saved extracted HTML to: %s\n", path)

	return content, nil
}

// FirstHTML returns the first entry whose name ends in .html, or nil.
func FirstHTML(files []*zip.File) *zip.File {
	for _, f := range files {
		if strings.HasSuffix(f.Name, htmlExt) {
			return f
		}
	}
	return nil
}

func readMember(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, errors.Wrapf(err, "opening archive member %s", f.Name)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, errors.Wrapf(err, "reading archive member %s", f.Name)
	}
	return data, nil
}

// DecodeUTF8 decodes raw as UTF-8, replacing every invalid sequence with
// U+FFFD. A byte order mark is kept as-is. It never fails.
func DecodeUTF8(raw []byte) string {
	out, err := unicode.UTF8.NewDecoder().Bytes(raw)
	if err != nil {
		return strings.ToValidUTF8(string(raw), string(utf8.RuneError))
	}
	return string(out)
}
