// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/pkg/errors"
	"go.yaml.in/yaml/v3"
)

// ExportYAML writes runs to w as a YAML sequence.
func ExportYAML(w io.Writer, runs []Run) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(runs); err != nil {
		return errors.Wrap(err, "marshaling YAML")
	}
	return enc.Close()
}

// PrintTable writes one line per run in aligned columns.
func PrintTable(w io.Writer, runs []Run) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tARCHIVE\tSTATUS\tSTAGE\tPAGES\tFINISHED\tDETAIL")
	for _, r := range runs {
		detail := r.PDFPath
		if r.Error != "" {
			detail = r.Error
		}
		stage := r.Stage
		if stage == "" {
			stage = "-"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%s\t%s\n",
			r.ID, r.ArchiveID, r.Status, stage, r.Pages,
			r.FinishedAt.Local().Format(time.DateTime), detail)
	}
	return tw.Flush()
}
