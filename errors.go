// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tabstrip

import (
	"errors"
	"fmt"
)

// Sentinel errors for the tabstrip package.
var (
	// ErrInvalidRadius is returned when a corner radius below 1 is set.
	ErrInvalidRadius = errors.New("tabstrip: radius must be at least 1")

	// ErrInvalidOverlap is returned when a negative overlap is set.
	ErrInvalidOverlap = errors.New("tabstrip: overlap must not be negative")

	// ErrInvalidOpacity is returned when opacity falls outside [0, 1].
	ErrInvalidOpacity = errors.New("tabstrip: opacity must be between 0 and 1")

	// ErrTabNotFound is returned when a tab lookup by key or index fails.
	ErrTabNotFound = errors.New("tabstrip: tab not found")

	// ErrUnknownName is returned when parsing an unknown enum name.
	ErrUnknownName = errors.New("tabstrip: unknown name")
)

// unreachable reports a missing case in an exhaustive switch.
func unreachable(what string, v any) {
	panic(fmt.Sprintf("tabstrip: unhandled %s %v", what, v))
}
