// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package allocation

import "errors"

var (
	ErrEmptyLabel      = errors.New("range label is required")
	ErrDuplicateLabel  = errors.New("duplicate range label")
	ErrIndexOutOfRange = errors.New("range index out of range")
)
