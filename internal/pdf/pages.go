// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdf

import (
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pkg/errors"
)

func init() {
	// Keep pdfcpu from creating its config directory under the user's home.
	model.ConfigPath = "disable"
}

// PageCount returns the number of pages in the PDF at path.
func PageCount(path string) (int, error) {
	n, err := api.PageCountFile(path)
	if err != nil {
		return 0, errors.Wrapf(err, "reading page count of %s", path)
	}
	return n, nil
}
