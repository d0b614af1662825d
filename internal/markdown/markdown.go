// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package markdown converts extracted HTML into Markdown that keeps links,
// images and tables and never wraps lines.
package markdown

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/pkg/errors"

	"github.com/pdiddy/html2latex/pkg/types"
)

// Converter turns HTML into Markdown. The zero value is not usable; call
// NewConverter.
type Converter struct {
	conv *converter.Converter
}

// NewConverter builds a converter with the commonmark and table plugins.
// Commonmark keeps links and images; output is never wrapped.
func NewConverter() *Converter {
	return &Converter{
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				table.NewTablePlugin(),
			),
		),
	}
}

// ToMarkdown converts html without touching the filesystem.
func (c *Converter) ToMarkdown(html string) (string, error) {
	md, err := c.conv.ConvertString(html)
	if err != nil {
		return "", errors.Wrap(err, "converting HTML to Markdown")
	}
	return md, nil
}

// Convert converts html and writes the result to outDir/<base>.md.
func (c *Converter) Convert(html, outDir, base string, w io.Writer) (string, error) {
	fmt.Fprintln(w, "converting HTML to Markdown")

	md, err := c.ToMarkdown(html)
	if err != nil {
		return "", err
	}
	fmt.Fprintf(w, "Markdown content length: %d characters\n", utf8.RuneCountInString(md))

	path := filepath.Join(outDir, types.MarkdownFile(base))
	if err := os.WriteFile(path, []byte(md), 0o644); err != nil {
		return "", errors.Wrapf(err, "writing %s", path)
	}
	fmt.Fprintf(w, "saved Markdown to: %s\n", path)

	return md, nil
}
