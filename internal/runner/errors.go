// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package runner

import "errors"

// ErrToolNotFound is returned by Resolve when a binary cannot be located.
var ErrToolNotFound = errors.New("tool not found")
