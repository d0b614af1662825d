// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import "errors"

// ErrNoHTML is returned when an archive holds no member ending in .html.
var ErrNoHTML = errors.New("no HTML file found in the zip archive")
