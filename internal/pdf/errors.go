// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdf

import "errors"

// ErrPDFNotFound is returned when the compiler exits cleanly but the
// expected PDF does not exist.
var ErrPDFNotFound = errors.New("PDF file not found at expected location")
